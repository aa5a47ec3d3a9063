package types

// Types and layout for the Crystal (US/EU) 32KB battery save.
//
// The file carries TWO copies of the mutable state region.  The bank in the
// 0x2000 range is what the game actually loads first; the 0x1200 range bank
// is the fallback it reaches for when the primary checksum doesn't add up.
// Yes, the backup lives at the LOWER address.  No, nobody knows why.

import (
	"errors"
	"fmt"
)

// Sentinel errors.  Wrapped with context where raised; match with errors.Is.
var (
	Err_out_of_range  = errors.New("out of range")
	Err_pocket_full   = errors.New("pocket full")
	Err_slot_empty    = errors.New("slot empty")
	Err_size_mismatch = errors.New("unexpected save size")
)

// Image is the raw save buffer.  All access is bounds-checked; an access past
// the end fails with Err_out_of_range instead of wrapping or truncating.
// The length is fixed at construction - this thing never grows.
type Image struct {
	data []byte
}

func New_image(data []byte) *Image {
	return &Image{data}
}

func (im *Image) Len() int {
	return len(im.data)
}

// Bytes returns the underlying buffer, not a copy.  The caller is usually
// about to hand it to os.WriteFile, and a 32KB copy per save would be
// pointless - but don't go squirrelling it away.
func (im *Image) Bytes() []byte {
	return im.data
}

// Check reports whether [offset, offset+length) lies inside the buffer.
// Multi-write edits call this up front so a failure can't leave a record
// half-written.
func (im *Image) Check(offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(im.data) {
		return fmt.Errorf("%w: %v byte(s) at offset %v (buffer is %v)",
			Err_out_of_range, length, offset, len(im.data))
	}
	return nil
}

func (im *Image) Read_u8(offset int) (uint8, error) {
	if err := im.Check(offset, 1); err != nil {
		return 0, err
	}
	return im.data[offset], nil
}

func (im *Image) Write_u8(offset int, v uint8) error {
	if err := im.Check(offset, 1); err != nil {
		return err
	}
	im.data[offset] = v
	return nil
}

// Multi-byte fields in the save are big-endian, except the stored checksums.
func (im *Image) Read_u16_be(offset int) (uint16, error) {
	if err := im.Check(offset, 2); err != nil {
		return 0, err
	}
	return uint16(im.data[offset])<<8 | uint16(im.data[offset+1]), nil
}

func (im *Image) Write_u16_be(offset int, v uint16) error {
	if err := im.Check(offset, 2); err != nil {
		return err
	}
	im.data[offset] = uint8(v >> 8)
	im.data[offset+1] = uint8(v & 0xFF)
	return nil
}

// Read_range returns a copy - callers poke at the result freely, and the
// buffer only changes through Write_* calls.
func (im *Image) Read_range(offset, length int) ([]byte, error) {
	if err := im.Check(offset, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, im.data[offset:offset+length])
	return out, nil
}

func (im *Image) Write_range(offset int, src []byte) error {
	if err := im.Check(offset, len(src)); err != nil {
		return err
	}
	copy(im.data[offset:], src)
	return nil
}

// Bank indices into Layout.Banks.
const (
	BANK_PRIMARY   = 0
	BANK_SECONDARY = 1
)

func Bank_name(bank int) string {
	return []string{"primary", "secondary"}[bank]
}

// Pocket_spec locates one inventory pocket: a count byte followed by
// Max_slots*2 bytes of (item id, quantity) pairs.
type Pocket_spec struct {
	Count_offset int
	Data_offset  int
	Max_slots    int
}

// Checksum_spec is one bank's checksum: the sum of every byte in
// [Start, End] (inclusive), mod 65536, stored little-endian at Store.
// Store is always outside the summed range, or saving would chase its
// own tail.
type Checksum_spec struct {
	Start int
	End   int
	Store int
}

// Bank_spec describes the per-bank parts of the layout.  Only pockets are
// mirrored byte-for-byte between banks; the player record and party live in
// the primary bank's range and are merely covered by its checksum.
type Bank_spec struct {
	Pockets  map[string]Pocket_spec
	Checksum Checksum_spec
}

// Layout is the whole schema as data.  Every offset the codec layer touches
// comes from here, so a schema variant is a new Layout value, not a hunt
// through the source for magic numbers.
type Layout struct {
	File_size int

	Banks []Bank_spec // [BANK_PRIMARY], [BANK_SECONDARY]

	Name_offset  int // fixed-length text field
	Name_length  int
	Id_offset    int // trainer id, u16 big-endian
	Money_offset int // BCD
	Money_length int

	Party_count_offset   int
	Party_species_offset int // Party_max bytes + terminator, kept in lock-step with the records
	Party_data_offset    int
	Party_record_size    int
	Party_max            int
}

// The mirrored region sits this much lower in the secondary bank.
const bank_delta = 0x0E00

// Crystal returns the layout for Crystal US/EU.
//
// The key-items and TM/HM pockets exist in the file too, but their offsets
// vary between dumps we've seen, so they are deliberately not modeled.
func Crystal() Layout {
	return Layout{
		File_size: 32768,

		Banks: []Bank_spec{
			{
				Pockets: map[string]Pocket_spec{
					"items": {Count_offset: 0x241A, Data_offset: 0x241B, Max_slots: 20},
					"balls": {Count_offset: 0x2465, Data_offset: 0x2466, Max_slots: 12},
				},
				Checksum: Checksum_spec{Start: 0x2009, End: 0x2D68, Store: 0x2D69},
			},
			{
				Pockets: map[string]Pocket_spec{
					"items": {Count_offset: 0x241A - bank_delta, Data_offset: 0x241B - bank_delta, Max_slots: 20},
					"balls": {Count_offset: 0x2465 - bank_delta, Data_offset: 0x2466 - bank_delta, Max_slots: 12},
				},
				Checksum: Checksum_spec{Start: 0x1209, End: 0x1D82, Store: 0x1F0D},
			},
		},

		Name_offset:  0x200B,
		Name_length:  11,
		Id_offset:    0x2009,
		Money_offset: 0x23DC,
		Money_length: 3,

		Party_count_offset:   0x2865,
		Party_species_offset: 0x2866,
		Party_data_offset:    0x286D,
		Party_record_size:    48,
		Party_max:            6,
	}
}
