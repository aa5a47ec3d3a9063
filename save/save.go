// Package save is the edit session: wrap raw bytes, poke at pockets, the
// party and the player record through typed views, then re-encode with
// fresh checksums.  One Save owns one buffer for the duration of a session;
// nothing here is safe for concurrent use and nothing needs to be.
package save

import (
	"fmt"
	"io"

	"crysedit/codec"
	"crysedit/types"
)

type Save struct {
	Img    *types.Image
	Layout types.Layout
}

// Load wraps raw bytes in a Save.  A wrong-sized buffer still comes back
// usable, along with a wrapped Err_size_mismatch - plenty of real dumps have
// emulator padding on the end and refusing them outright would be obnoxious.
// The caller decides whether to warn or to care.
func Load(data []byte) (*Save, error) {
	s := &Save{Img: types.New_image(data), Layout: types.Crystal()}
	if len(data) != s.Layout.File_size {
		return s, fmt.Errorf("%w: %v bytes (expected %v)",
			types.Err_size_mismatch, len(data), s.Layout.File_size)
	}
	return s, nil
}

// Encode recomputes both bank checksums and returns the raw buffer.
// Both banks are always redone even when only one was touched - recomputing
// is idempotent and cheap, and a stale fallback checksum is exactly the kind
// of thing that eats save files three weeks later.
func (s *Save) Encode() ([]byte, error) {
	for _, bank := range s.Layout.Banks {
		cs := bank.Checksum
		sum, err := codec.Checksum(s.Img, cs.Start, cs.End)
		if err != nil {
			return nil, err
		}
		// Stored little-endian, unlike every other multi-byte field in here.
		if err := s.Img.Write_u8(cs.Store, uint8(sum&0xFF)); err != nil {
			return nil, err
		}
		if err := s.Img.Write_u8(cs.Store+1, uint8(sum>>8)); err != nil {
			return nil, err
		}
	}
	return s.Img.Bytes(), nil
}

func (s *Save) Write(w io.Writer) error {
	bs, err := s.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// Verify recomputes each bank's checksum and compares it against the stored
// value, without modifying anything.  Index order matches Layout.Banks:
// primary first.  The game trusts the primary and only falls back to the
// secondary when the primary fails, so [false, true] means "one crash away
// from a rollback" rather than "fine".
func (s *Save) Verify() ([]bool, error) {
	out := []bool{}
	for _, bank := range s.Layout.Banks {
		cs := bank.Checksum
		sum, err := codec.Checksum(s.Img, cs.Start, cs.End)
		if err != nil {
			return nil, err
		}
		lo, err := s.Img.Read_u8(cs.Store)
		if err != nil {
			return nil, err
		}
		hi, err := s.Img.Read_u8(cs.Store + 1)
		if err != nil {
			return nil, err
		}
		out = append(out, uint16(lo)|uint16(hi)<<8 == sum)
	}
	return out, nil
}

func (s *Save) Name() (string, error) {
	bs, err := s.Img.Read_range(s.Layout.Name_offset, s.Layout.Name_length)
	if err != nil {
		return "", err
	}
	return codec.Decode_text(bs), nil
}

// Set_name re-encodes the whole fixed field, terminator fill included.
func (s *Save) Set_name(name string) error {
	bs, err := codec.Encode_text(name, s.Layout.Name_length)
	if err != nil {
		return err
	}
	return s.Img.Write_range(s.Layout.Name_offset, bs)
}

func (s *Save) Trainer_id() (uint16, error) {
	return s.Img.Read_u16_be(s.Layout.Id_offset)
}

func (s *Save) Money() (int, error) {
	bs, err := s.Img.Read_range(s.Layout.Money_offset, s.Layout.Money_length)
	if err != nil {
		return 0, err
	}
	return codec.Bcd_to_int(bs), nil
}

// Set_money clamps to what the BCD field can hold (0..999999 for 3 bytes).
func (s *Save) Set_money(v int) error {
	return s.Img.Write_range(s.Layout.Money_offset, codec.Int_to_bcd(v, s.Layout.Money_length))
}
