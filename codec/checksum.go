package codec

// The save checksum: the least imaginative checksum it is possible to have.

import (
	"crysedit/types"
)

// Checksum sums every byte in [start, end] (inclusive), mod 65536.
// Pure addition, so reordering bytes inside the range goes undetected, and
// a pair of edits whose deltas cancel produce the same sum - that's how the
// format is, not a bug to fix here.
func Checksum(im *types.Image, start, end int) (uint16, error) {
	bs, err := im.Read_range(start, end-start+1)
	if err != nil {
		return 0, err
	}
	sum := uint16(0)
	for _, b := range bs {
		sum += uint16(b)
	}
	return sum, nil
}
