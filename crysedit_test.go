package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"crysedit/save"
	"crysedit/tables"
	"crysedit/types"
)

func Test_fuzzy_reverse_lookup(t *testing.T) {
	// Exact, case-smashed and substring matches, in that order of preference
	for _, input := range []string{"Master Ball", "master ball", "MASTER_BALL", "master", "mast"} {
		id, name, err := fuzzy_reverse_lookup(tables.Balls, input, "item")
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if id != tables.ITEM_MASTER_BALL || name != "Master Ball" {
			t.Errorf("%q matched (%v, %q)", input, id, name)
		}
	}

	// "ball" matches everything in the pocket, which is an error, and the
	// error had better say so usefully
	_, _, err := fuzzy_reverse_lookup(tables.Balls, "ball", "item")
	if err == nil {
		t.Fatal("ambiguous input accepted")
	}
	if !strings.Contains(err.Error(), "Ambiguous") {
		t.Errorf("unhelpful ambiguity error: %v", err)
	}

	if _, _, err := fuzzy_reverse_lookup(tables.Balls, "excalibur", "item"); err == nil {
		t.Error("nonsense input accepted")
	}

	// Exact match wins even when it's also a prefix of something else
	// ("Potion" vs "Potion"/"PP Up" style collisions)
	id, _, err := fuzzy_reverse_lookup(tables.Species, "Mew", "species")
	if err != nil {
		t.Fatal(err)
	}
	if id != 151 {
		t.Errorf("Mew matched %v (Mewtwo is %v)", id, 150)
	}
}

func Test_parse_id(t *testing.T) {
	cases := []struct {
		arg  string
		id   uint8
		name string
	}{
		{"1", 0x01, "Master Ball"},
		{"0x01", 0x01, "Master Ball"},
		{"master", 0x01, "Master Ball"},
	}
	for _, c := range cases {
		id, name, err := parse_id(c.arg, tables.Balls, "item")
		if err != nil {
			t.Errorf("%q: %v", c.arg, err)
			continue
		}
		if id != c.id || name != c.name {
			t.Errorf("%q -> (%v, %q)", c.arg, id, name)
		}
	}

	// Numbers with no table entry still parse; the name just says so
	_, name, err := parse_id("200", tables.Balls, "item")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(name, "Unknown") {
		t.Errorf("unnamed id described as %q", name)
	}

	if _, _, err := parse_id("300", tables.Balls, "item"); err == nil {
		t.Error("parse_id(300) fit in a byte somehow")
	}
}

func Test_smash(t *testing.T) {
	if smash("Mr. Mime") != "Mr__Mime" {
		t.Errorf("smash: %q", smash("Mr. Mime"))
	}
	if smash("Farfetch'd") != "Farfetch_d" {
		t.Errorf("smash: %q", smash("Farfetch'd"))
	}
}

// The most basic test - does a save survive load-stash-retrieve-save
// (equivalent to crysedit load and crysedit save)?
func Test_StashRetrieveRoundtrip(t *testing.T) {
	g_stash_filename = t.TempDir() + "/crysedit.tmp"

	data := make([]byte, types.Crystal().File_size)
	s, err := save.Load(data)
	if err != nil {
		t.Fatal(err)
	}
	s.Set_name("GOLD")
	s.Set_money(12345)
	if _, err := s.Encode(); err != nil {
		t.Fatal(err)
	}

	if err := stash("saves/crystal.srm", s.Img.Bytes()); err != nil {
		t.Fatal(err)
	}
	filename, s2, err := retrieve()
	if err != nil {
		t.Fatal(err)
	}
	if filename != "saves/crystal.srm" {
		t.Errorf("Can't even get filenames right! (%v)", filename)
	}
	if !bytes.Equal(s2.Img.Bytes(), s.Img.Bytes()) {
		t.Error("Data mangled by stash->retrieve")
	}

	// Edits through the retrieved copy re-stash cleanly
	if err := s2.Set_money(999); err != nil {
		t.Fatal(err)
	}
	if err := stash(filename, s2.Img.Bytes()); err != nil {
		t.Fatal(err)
	}
	_, s3, err := retrieve()
	if err != nil {
		t.Fatal(err)
	}
	money, _ := s3.Money()
	if money != 999 {
		t.Errorf("retrieved money %v", money)
	}
}

func Test_retrieve_without_session(t *testing.T) {
	g_stash_filename = t.TempDir() + "/no_such.tmp"
	_, _, err := retrieve()
	if err == nil {
		t.Error("retrieve with no stash succeeded")
	}
}

func Test_additem_quantity_clamps(t *testing.T) {
	data := make([]byte, types.Crystal().File_size)
	s, err := save.Load(data)
	if err != nil {
		t.Fatal(err)
	}

	// A quantity too big for a byte clamps to 99; it must not wrap mod 256
	// (300 would otherwise come out as 44)
	if err := apply_edit(s, "additem", []string{"items", "8", "300"}); err != nil {
		t.Fatal(err)
	}
	for _, bank := range []int{types.BANK_PRIMARY, types.BANK_SECONDARY} {
		p, _ := s.Pocket(bank, "items")
		item, qty, _ := p.Slot(0)
		if item != tables.ITEM_RARE_CANDY || qty != save.MAX_QUANTITY {
			t.Errorf("%v bank slot 0: (%v, x%v)", types.Bank_name(bank), item, qty)
		}
	}

	// Negative clamps to 0 rather than wrapping to 255
	if err := apply_edit(s, "additem", []string{"items", "8", "-1"}); err != nil {
		t.Fatal(err)
	}
	p, _ := s.Pocket(types.BANK_PRIMARY, "items")
	if _, qty, _ := p.Slot(0); qty != 0 {
		t.Errorf("negative quantity stored as %v", qty)
	}

	// In-range values pass through untouched
	if err := apply_edit(s, "additem", []string{"items", "8", "42"}); err != nil {
		t.Fatal(err)
	}
	if _, qty, _ := p.Slot(0); qty != 42 {
		t.Errorf("quantity 42 stored as %v", qty)
	}
}

func Test_parse_slot(t *testing.T) {
	data := make([]byte, types.Crystal().File_size)
	s, _ := save.Load(data)
	s.Img.Write_u8(s.Layout.Party_count_offset, 3)

	slots, err := parse_slot(s, "2")
	if err != nil || len(slots) != 1 || slots[0] != 2 {
		t.Errorf("parse_slot(2) = %v, %v", slots, err)
	}
	slots, err = parse_slot(s, "all")
	if err != nil || len(slots) != 3 {
		t.Errorf("parse_slot(all) = %v, %v", slots, err)
	}
	if _, err := parse_slot(s, "everyone"); err == nil {
		t.Error("parse_slot(everyone) accepted")
	}
}

func Test_install_suicune(t *testing.T) {
	data := make([]byte, types.Crystal().File_size)
	s, _ := save.Load(data)
	s.Img.Write_u8(s.Layout.Party_count_offset, 1)
	s.Img.Write_u8(s.Layout.Party_species_offset, 16)
	s.Img.Write_u8(s.Layout.Party_data_offset, 16)

	if err := install_suicune(s, 1); err != nil {
		t.Fatal(err)
	}

	c, err := s.Creature(1)
	if err != nil {
		t.Fatal(err)
	}
	if c.Species != tables.SPECIES_SUICUNE {
		t.Errorf("species %v", c.Species)
	}
	if c.Level != 40 {
		t.Errorf("level %v", c.Level)
	}
	if !c.Dvs.Shiny() {
		t.Errorf("not shiny: %v", c.Dvs)
	}
	if c.Stats.Hp != 65535 {
		t.Errorf("stat exp %v", c.Stats)
	}
	if c.Moves != [4]uint8{tables.MOVE_SURF, tables.MOVE_ICE_BEAM, tables.MOVE_RAIN_DANCE, tables.MOVE_AURORA_BEAM} {
		t.Errorf("moves %v", c.Moves)
	}
	if c.Hp != 160 || c.Hp != c.Max_hp {
		t.Errorf("HP %v/%v", c.Hp, c.Max_hp)
	}
	if c.Friendship != 255 || c.Item != 0 || c.Status != 0 {
		t.Errorf("friendship %v, item %v, status %v", c.Friendship, c.Item, c.Status)
	}

	// and in a slot that doesn't exist, nothing happens at all
	before := append([]byte{}, s.Img.Bytes()...)
	if err := install_suicune(s, 5); !errors.Is(err, types.Err_slot_empty) {
		t.Errorf("empty slot: %v", err)
	}
	if !bytes.Equal(before, s.Img.Bytes()) {
		t.Error("failed install modified the save")
	}
}
