package save

// The party roster: a count byte, a species list (one byte per slot plus a
// terminator) and then fixed 48-byte records.  The species byte is stored
// TWICE - once in the list, once in the record - and different parts of the
// game read different copies, so species edits must hit both or you get a
// mon that changes shape depending on which menu you open.

import (
	"fmt"

	"crysedit/types"
)

// Field offsets inside one 48-byte party record.
const (
	PKMN_SPECIES    = 0x00
	PKMN_ITEM       = 0x01
	PKMN_MOVES      = 0x02 // 4 move ids
	PKMN_OT_ID      = 0x06 // u16
	PKMN_EXP        = 0x08 // 24-bit big-endian
	PKMN_STAT_EXP   = 0x0B // 5 x u16: HP, Atk, Def, Spd, Spc
	PKMN_DVS        = 0x15 // u16 of packed nibbles, see Dvs
	PKMN_PP         = 0x17 // 4 PP counters
	PKMN_FRIENDSHIP = 0x1B
	PKMN_LEVEL      = 0x1F
	PKMN_STATUS     = 0x20
	PKMN_HP_CURRENT = 0x22 // u16
	PKMN_HP_MAX     = 0x24 // u16
	PKMN_STATS      = 0x26 // 5 x u16: Atk, Def, Spd, SpcAtk, SpcDef
)

const (
	MAX_LEVEL    = 100
	MAX_STAT_EXP = 65535 // u16 ceiling, the hard domain maximum
	MAX_DV       = 15    // nibble ceiling, ditto
	HEAL_PP      = 35    // flat PP refill; real max varies by move, this doesn't care
)

// Dvs are the four stored genetic nibbles.  HP's value is not stored
// anywhere - it's derived from the low bit of each of the other four.
type Dvs struct {
	Atk uint8
	Def uint8
	Spd uint8
	Spc uint8
}

// Pack_dvs packs the four nibbles as (Atk<<12)|(Def<<8)|(Spd<<4)|Spc.
// Values over 15 are masked; callers clamping at 15 is the expectation.
func Pack_dvs(d Dvs) uint16 {
	return uint16(d.Atk&0xF)<<12 | uint16(d.Def&0xF)<<8 | uint16(d.Spd&0xF)<<4 | uint16(d.Spc&0xF)
}

func Unpack_dvs(v uint16) Dvs {
	return Dvs{
		Atk: uint8(v >> 12 & 0xF),
		Def: uint8(v >> 8 & 0xF),
		Spd: uint8(v >> 4 & 0xF),
		Spc: uint8(v & 0xF),
	}
}

func (d Dvs) Hp() uint8 {
	return (d.Atk&1)<<3 | (d.Def&1)<<2 | (d.Spd&1)<<1 | d.Spc&1
}

// Shiny is the rare-variant test: Spd, Def and Spc locked at 10, Atk needs
// bit 1 set (i.e. one of 2,3,6,7,10,11,14,15).  Note that all-15s is NOT
// shiny, which surprises everyone exactly once.
func (d Dvs) Shiny() bool {
	return d.Spd == 10 && d.Def == 10 && d.Spc == 10 && d.Atk&2 != 0
}

// Shiny_dvs returns the shiny DV spread with the best stats (Atk 15 also
// derives HP 15).
func Shiny_dvs() Dvs {
	return Dvs{Atk: 15, Def: 10, Spd: 10, Spc: 10}
}

type Stat_exp struct {
	Hp  uint16
	Atk uint16
	Def uint16
	Spd uint16
	Spc uint16
}

// Creature is one decoded roster record.  It's a copy - mutations go through
// the Set_* operations so the buffer and the species list stay consistent.
type Creature struct {
	Slot    int
	Species uint8
	Item    uint8
	Moves   [4]uint8
	Ot_id   uint16
	Exp     uint32
	Stats   Stat_exp
	Dvs     Dvs

	Pp         [4]uint8
	Friendship uint8
	Level      uint8
	Status     uint8

	Hp      uint16
	Max_hp  uint16
	Atk     uint16
	Def     uint16
	Spd     uint16
	Spc_atk uint16
	Spc_def uint16
}

func (s *Save) Party_count() (int, error) {
	c, err := s.Img.Read_u8(s.Layout.Party_count_offset)
	return int(c), err
}

// record_base validates a 1-indexed slot against both the roster capacity
// and the stored count, then returns the record's base offset.
func (s *Save) record_base(slot int) (int, error) {
	if slot < 1 || slot > s.Layout.Party_max {
		return 0, fmt.Errorf("%w: slot %v (roster holds %v)",
			types.Err_slot_empty, slot, s.Layout.Party_max)
	}
	count, err := s.Party_count()
	if err != nil {
		return 0, err
	}
	if slot > count {
		return 0, fmt.Errorf("%w: slot %v (only %v in party)",
			types.Err_slot_empty, slot, count)
	}
	return s.Layout.Party_data_offset + (slot-1)*s.Layout.Party_record_size, nil
}

// Creature decodes the record in the given slot (1-indexed).
func (s *Save) Creature(slot int) (Creature, error) {
	base, err := s.record_base(slot)
	if err != nil {
		return Creature{}, err
	}
	bs, err := s.Img.Read_range(base, s.Layout.Party_record_size)
	if err != nil {
		return Creature{}, err
	}

	u16 := func(off int) uint16 {
		return uint16(bs[off])<<8 | uint16(bs[off+1])
	}

	out := Creature{
		Slot:    slot,
		Species: bs[PKMN_SPECIES],
		Item:    bs[PKMN_ITEM],
		Ot_id:   u16(PKMN_OT_ID),
		Exp:     uint32(bs[PKMN_EXP])<<16 | uint32(bs[PKMN_EXP+1])<<8 | uint32(bs[PKMN_EXP+2]),
		Stats: Stat_exp{
			Hp:  u16(PKMN_STAT_EXP),
			Atk: u16(PKMN_STAT_EXP + 2),
			Def: u16(PKMN_STAT_EXP + 4),
			Spd: u16(PKMN_STAT_EXP + 6),
			Spc: u16(PKMN_STAT_EXP + 8),
		},
		Dvs:        Unpack_dvs(u16(PKMN_DVS)),
		Friendship: bs[PKMN_FRIENDSHIP],
		Level:      bs[PKMN_LEVEL],
		Status:     bs[PKMN_STATUS],
		Hp:         u16(PKMN_HP_CURRENT),
		Max_hp:     u16(PKMN_HP_MAX),
		Atk:        u16(PKMN_STATS),
		Def:        u16(PKMN_STATS + 2),
		Spd:        u16(PKMN_STATS + 4),
		Spc_atk:    u16(PKMN_STATS + 6),
		Spc_def:    u16(PKMN_STATS + 8),
	}
	copy(out.Moves[:], bs[PKMN_MOVES:PKMN_MOVES+4])
	copy(out.Pp[:], bs[PKMN_PP:PKMN_PP+4])
	return out, nil
}

func (s *Save) Set_dvs(slot int, d Dvs) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	return s.Img.Write_u16_be(base+PKMN_DVS, Pack_dvs(d))
}

// Make_shiny rewrites the DVs to the shiny spread.  Returns false (and does
// nothing) if the record is already shiny.
func (s *Save) Make_shiny(slot int) (bool, error) {
	c, err := s.Creature(slot)
	if err != nil {
		return false, err
	}
	if c.Dvs.Shiny() {
		return false, nil
	}
	return true, s.Set_dvs(slot, Shiny_dvs())
}

// Max_stats writes 15 into every DV nibble and 65535 into every stat-exp
// counter.  Note the all-15 spread isn't shiny; use Make_shiny for that.
func (s *Save) Max_stats(slot int) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	if err := s.Img.Check(base+PKMN_DVS, 2); err != nil {
		return err
	}
	if err := s.Img.Check(base+PKMN_STAT_EXP, 10); err != nil {
		return err
	}

	s.Img.Write_u16_be(base+PKMN_DVS, Pack_dvs(Dvs{MAX_DV, MAX_DV, MAX_DV, MAX_DV}))
	for i := 0; i < 5; i += 1 {
		s.Img.Write_u16_be(base+PKMN_STAT_EXP+2*i, MAX_STAT_EXP)
	}
	return nil
}

// Set_level clamps to [1,100] and writes the level byte.  It does NOT
// recompute battle stats or experience - the game redoes those itself on
// the next level-relevant event, and guessing its formulas here is exactly
// the kind of legality judgement this layer stays out of.
func (s *Save) Set_level(slot, level int) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	if level < 1 {
		level = 1
	}
	if level > MAX_LEVEL {
		level = MAX_LEVEL
	}
	return s.Img.Write_u8(base+PKMN_LEVEL, uint8(level))
}

// Set_species writes the species id into the record AND the parallel species
// list.  Both copies are read by different consumers; updating only one is a
// corruption, so bounds for both writes are checked before either happens.
// A level of 0 means "leave the level alone".
func (s *Save) Set_species(slot int, species uint8, level int) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	list := s.Layout.Party_species_offset + slot - 1
	if err := s.Img.Check(list, 1); err != nil {
		return err
	}
	if err := s.Img.Check(base+PKMN_SPECIES, 1); err != nil {
		return err
	}

	s.Img.Write_u8(list, species)
	s.Img.Write_u8(base+PKMN_SPECIES, species)
	if level != 0 {
		return s.Set_level(slot, level)
	}
	return nil
}

// Set_move writes one move id.  move_slot is 1-indexed like everything else
// the user sees.
func (s *Save) Set_move(slot, move_slot int, move uint8) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	if move_slot < 1 || move_slot > 4 {
		return fmt.Errorf("move slot must be 1-4, got %v", move_slot)
	}
	return s.Img.Write_u8(base+PKMN_MOVES+move_slot-1, move)
}

func (s *Save) Set_pp(slot, move_slot int, pp uint8) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	if move_slot < 1 || move_slot > 4 {
		return fmt.Errorf("move slot must be 1-4, got %v", move_slot)
	}
	return s.Img.Write_u8(base+PKMN_PP+move_slot-1, pp)
}

// Give_item sets the held item (0 clears it).
func (s *Save) Give_item(slot int, item uint8) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	return s.Img.Write_u8(base+PKMN_ITEM, item)
}

func (s *Save) Set_friendship(slot int, friendship uint8) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	return s.Img.Write_u8(base+PKMN_FRIENDSHIP, friendship)
}

func (s *Save) Set_hp(slot int, current, max uint16) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	if err := s.Img.Check(base+PKMN_HP_CURRENT, 4); err != nil {
		return err
	}
	s.Img.Write_u16_be(base+PKMN_HP_CURRENT, current)
	s.Img.Write_u16_be(base+PKMN_HP_MAX, max)
	return nil
}

// Heal restores one record: HP to max, status cleared, PP refilled.
func (s *Save) Heal(slot int) error {
	base, err := s.record_base(slot)
	if err != nil {
		return err
	}
	if err := s.Img.Check(base, s.Layout.Party_record_size); err != nil {
		return err
	}

	max_hp, _ := s.Img.Read_u16_be(base + PKMN_HP_MAX)
	s.Img.Write_u16_be(base+PKMN_HP_CURRENT, max_hp)
	s.Img.Write_u8(base+PKMN_STATUS, 0)
	for i := 0; i < 4; i += 1 {
		s.Img.Write_u8(base+PKMN_PP+i, HEAL_PP)
	}
	return nil
}

// Heal_all heals every occupied slot and returns how many it touched.
func (s *Save) Heal_all() (int, error) {
	count, err := s.Party_count()
	if err != nil {
		return 0, err
	}
	for slot := 1; slot <= count; slot += 1 {
		if err := s.Heal(slot); err != nil {
			return slot - 1, err
		}
	}
	return count, nil
}
