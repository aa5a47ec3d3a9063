package codec

// Money (and nothing else we touch) is stored as binary-coded decimal:
// two digits per byte, tens in the high nibble, most significant byte first.

// Bcd_to_int decodes a BCD field.  Nibbles above 9 shouldn't occur, but a
// corrupt field just decodes to a silly number rather than failing - this is
// a display path.
func Bcd_to_int(bs []byte) int {
	value := 0
	for _, b := range bs {
		value = value*100 + int(b>>4)*10 + int(b&0x0F)
	}
	return value
}

// Int_to_bcd encodes value into length bytes.  Out-of-domain values clamp:
// negatives to 0, anything over the field's capacity (10^(2*length)-1) to
// that capacity.  999999 is all the money the game can hold anyway.
func Int_to_bcd(value, length int) []byte {
	if value < 0 {
		value = 0
	}
	max := 1
	for i := 0; i < 2*length; i += 1 {
		max *= 10
	}
	if value > max-1 {
		value = max - 1
	}

	out := make([]byte, length)
	for i := length - 1; i >= 0; i -= 1 {
		low := value % 10
		value /= 10
		high := value % 10
		value /= 10
		out[i] = uint8(high<<4 | low)
	}
	return out
}
