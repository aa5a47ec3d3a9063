package codec

// The in-game character set.  Not ASCII, not EBCDIC, just its own thing:
// letters from 0x80, lowercase from 0xA0, with punctuation scattered around.
// 0x50 terminates a string and also pads out the rest of a fixed field.

import (
	"fmt"

	"crysedit/types"
)

const TEXT_TERMINATOR = 0x50

var text_chars = map[byte]rune{
	0x80: 'A', 0x81: 'B', 0x82: 'C', 0x83: 'D', 0x84: 'E', 0x85: 'F',
	0x86: 'G', 0x87: 'H', 0x88: 'I', 0x89: 'J', 0x8A: 'K', 0x8B: 'L',
	0x8C: 'M', 0x8D: 'N', 0x8E: 'O', 0x8F: 'P', 0x90: 'Q', 0x91: 'R',
	0x92: 'S', 0x93: 'T', 0x94: 'U', 0x95: 'V', 0x96: 'W', 0x97: 'X',
	0x98: 'Y', 0x99: 'Z',
	0xA0: 'a', 0xA1: 'b', 0xA2: 'c', 0xA3: 'd', 0xA4: 'e', 0xA5: 'f',
	0xA6: 'g', 0xA7: 'h', 0xA8: 'i', 0xA9: 'j', 0xAA: 'k', 0xAB: 'l',
	0xAC: 'm', 0xAD: 'n', 0xAE: 'o', 0xAF: 'p', 0xB0: 'q', 0xB1: 'r',
	0xB2: 's', 0xB3: 't', 0xB4: 'u', 0xB5: 'v', 0xB6: 'w', 0xB7: 'x',
	0xB8: 'y', 0xB9: 'z',
	0x7F: ' ', 0xE3: '-', 0xE8: '.', 0xEF: '♂', 0xF5: '♀',
}

var text_bytes = func() map[rune]byte {
	out := map[rune]byte{}
	for b, r := range text_chars {
		out[r] = b
	}
	return out
}()

// Decode_text renders a text field as a string.  Scanning stops at the first
// terminator even if the field has more bytes after it.  Bytes we have no
// glyph for come out as '?' - old dumps contain all sorts of junk in name
// fields and refusing to display them helps nobody.
func Decode_text(bs []byte) string {
	out := []rune{}
	for _, b := range bs {
		if b == TEXT_TERMINATOR {
			break
		}
		r, ok := text_chars[b]
		if !ok {
			r = '?'
		}
		out = append(out, r)
	}
	return string(out)
}

// Encode_text is the exact inverse of Decode_text's table.  The result is
// always exactly length bytes: the encoded characters, then terminator fill.
// A rune with no encoding is an error - unlike decoding, writing garbage
// INTO a save is not something to be tolerant about.
func Encode_text(s string, length int) ([]byte, error) {
	runes := []rune(s)
	if len(runes) > length-1 {
		return nil, fmt.Errorf("%w: %q needs %v bytes, field holds %v plus terminator",
			types.Err_out_of_range, s, len(runes), length-1)
	}

	out := make([]byte, length)
	for i := range out {
		out[i] = TEXT_TERMINATOR
	}
	for i, r := range runes {
		b, ok := text_bytes[r]
		if !ok {
			return nil, fmt.Errorf("character %q cannot be encoded", r)
		}
		out[i] = b
	}
	return out, nil
}
