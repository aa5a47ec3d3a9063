package codec

import (
	"bytes"
	"errors"
	"testing"

	"crysedit/types"
)

func Test_bcd_known_values(t *testing.T) {
	cases := []struct {
		value int
		bytes []byte
	}{
		{0, []byte{0x00, 0x00, 0x00}},
		{1, []byte{0x00, 0x00, 0x01}},
		{123456, []byte{0x12, 0x34, 0x56}},
		{999999, []byte{0x99, 0x99, 0x99}},
		{3000, []byte{0x00, 0x30, 0x00}},
	}
	for _, c := range cases {
		got := Int_to_bcd(c.value, 3)
		if !bytes.Equal(got, c.bytes) {
			t.Errorf("Int_to_bcd(%v) = % X, wanted % X", c.value, got, c.bytes)
		}
		if back := Bcd_to_int(c.bytes); back != c.value {
			t.Errorf("Bcd_to_int(% X) = %v, wanted %v", c.bytes, back, c.value)
		}
	}
}

func Test_bcd_roundtrip(t *testing.T) {
	error_count := 0
	success_count := 0
	for v := 0; v <= 999999; v += 317 {
		back := Bcd_to_int(Int_to_bcd(v, 3))
		if back != v {
			t.Logf("%v -> %v", v, back)
			error_count++
			continue
		}
		success_count++
	}
	if error_count > 0 {
		t.Errorf("Errors! (%v errors, %v successes)", error_count, success_count)
	}
}

func Test_bcd_clamping(t *testing.T) {
	if got := Bcd_to_int(Int_to_bcd(-5, 3)); got != 0 {
		t.Errorf("negative clamped to %v", got)
	}
	if got := Bcd_to_int(Int_to_bcd(1000000, 3)); got != 999999 {
		t.Errorf("overflow clamped to %v", got)
	}
	if got := Bcd_to_int(Int_to_bcd(100, 1)); got != 99 {
		t.Errorf("single byte field clamped to %v", got)
	}
}

func Test_text_roundtrip(t *testing.T) {
	for _, name := range []string{"", "A", "GOLD", "Gold", "MR. X", "Mr-Mime", "abcxyz"} {
		encoded, err := Encode_text(name, 11)
		if err != nil {
			t.Errorf("Encode_text(%q): %v", name, err)
			continue
		}
		if len(encoded) != 11 {
			t.Errorf("Encode_text(%q) produced %v bytes", name, len(encoded))
			continue
		}
		if back := Decode_text(encoded); back != name {
			t.Errorf("%q -> %q", name, back)
		}
	}
}

func Test_text_fill(t *testing.T) {
	encoded, err := Encode_text("AB", 11)
	if err != nil {
		t.Fatal(err)
	}
	// Everything after the characters is terminator, so the field can't leak
	// the previous, longer name.
	for i := 2; i < 11; i += 1 {
		if encoded[i] != TEXT_TERMINATOR {
			t.Errorf("byte %v is %X, not terminator fill", i, encoded[i])
		}
	}
}

func Test_text_errors(t *testing.T) {
	// 10 characters fit in an 11-byte field, 11 don't (the terminator needs a byte)
	if _, err := Encode_text("ABCDEFGHIJ", 11); err != nil {
		t.Errorf("10 characters rejected: %v", err)
	}
	_, err := Encode_text("ABCDEFGHIJK", 11)
	if !errors.Is(err, types.Err_out_of_range) {
		t.Errorf("11 characters: %v", err)
	}
	if _, err := Encode_text("Gómez", 11); err == nil {
		t.Error("unencodable rune accepted")
	}
}

func Test_text_decode_junk(t *testing.T) {
	// Terminator stops the scan even with readable bytes after it
	if got := Decode_text([]byte{0x80, TEXT_TERMINATOR, 0x81}); got != "A" {
		t.Errorf("scan did not stop at terminator: %q", got)
	}
	// Unknown bytes render as '?', they don't fail
	if got := Decode_text([]byte{0x80, 0x01, 0x81}); got != "A?B" {
		t.Errorf("junk byte rendered as %q", got)
	}
}

func Test_checksum(t *testing.T) {
	im := types.New_image([]byte{1, 2, 3, 4, 5})

	sum, err := Checksum(im, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 9 {
		t.Errorf("sum of [2 3 4] = %v", sum)
	}

	// inclusive on both ends
	sum, _ = Checksum(im, 0, 4)
	if sum != 15 {
		t.Errorf("sum of the whole buffer = %v", sum)
	}

	// a single byte edit moves the sum by exactly its delta
	im.Write_u8(2, 10)
	sum2, _ := Checksum(im, 0, 4)
	if sum2 != sum+7 {
		t.Errorf("sum moved from %v to %v after a +7 edit", sum, sum2)
	}

	if _, err := Checksum(im, 3, 5); !errors.Is(err, types.Err_out_of_range) {
		t.Errorf("out-of-range checksum: %v", err)
	}
}

func Test_checksum_wraps(t *testing.T) {
	big := make([]byte, 300)
	for i := range big {
		big[i] = 0xFF
	}
	sum, err := Checksum(types.New_image(big), 0, 299)
	if err != nil {
		t.Fatal(err)
	}
	if sum != uint16(300*0xFF%0x10000) {
		t.Errorf("mod-65536 sum = %v", sum)
	}
}
