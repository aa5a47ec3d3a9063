package main

// save file reader/editor for Crystal
//
// example usage:
//
// crysedit load crystal.srm
// crysedit info
// crysedit party detailed
// crysedit additem balls "Master Ball" 99
// crysedit money max
// crysedit shiny 1
// crysedit maxstats all
// crysedit level 1 100
// crysedit species 2 Suicune 40
// crysedit setname JOE
// crysedit save
//
// Edits accumulate in a stash file between invocations; nothing touches the
// real save until "save", which also recomputes both bank checksums.

import (
	"bufio"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"crysedit/save"
	"crysedit/tables"
	"crysedit/types"
	"crysedit/utils"
	"crysedit/watch"
)

// Evil global variables
var g_stash_filename = "crysedit.tmp"

// smash smashes "funny characters" (which includes anything that's remotely
// tricky to type into a command line) in a string into the '_' character
func smash(in string) string {
	out := ""
	for _, c := range in {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			out += string(c)
		} else {
			out += "_"
		}
	}
	return out
}

// string matching functions, in strictly increasing order of desperation
var fuzzy = []func(input string, candidate string) bool{
	func(i string, c string) bool { return i == c },
	func(i string, c string) bool { return strings.ToUpper(i) == strings.ToUpper(c) },
	func(i string, c string) bool { return smash(strings.ToUpper(i)) == smash(strings.ToUpper(c)) },
	func(i string, c string) bool {
		return strings.HasPrefix(smash(strings.ToUpper(c)), smash(strings.ToUpper(i)))
	},
	func(i string, c string) bool {
		return strings.Contains(smash(strings.ToUpper(c)), smash(strings.ToUpper(i)))
	},
}

// fuzzy_reverse_lookup looks up "backwards" in a translation map
//
// trans: map to be looked up in
// to: map value
// what: type of thing to be looked up, as a human-readable string
//
// Returns: K: lookup result key, string: lookup result value (not necessarily
// equal to "to" due to fuzzy matching)
func fuzzy_reverse_lookup[K comparable](trans map[K]string, to string, what string) (K, string, error) {
	var K0 K

	for _, match := range fuzzy {
		matches := []K{}
		names := []string{}
		for k, v := range trans {
			if match(to, v) {
				matches = append(matches, k)
				names = append(names, v)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			return K0, "", errors.New(fmt.Sprint("Ambiguous argument: ", to, " could be anything from {", strings.Join(names, ", "), "}"))
		}

		return matches[0], names[0], nil
	}

	return K0, "", errors.New(to + " could not be matched to a valid value for " + what)
}

func safe_lookup[K comparable](from map[K]string, with K) string {
	out, ok := from[with]
	if !ok {
		out = fmt.Sprintf("Unknown (%v)", with)
	}
	return out
}

// parse_id turns an id argument into a byte: plain numbers (decimal or 0x..)
// pass through, anything else gets fuzzy-matched against the given table.
func parse_id(arg string, trans map[uint8]string, what string) (uint8, string, error) {
	n, err := strconv.ParseUint(arg, 0, 8)
	if err == nil {
		return uint8(n), safe_lookup(trans, uint8(n)), nil
	}
	return fuzzy_reverse_lookup(trans, arg, what)
}

// parse_slot handles the "1-6 or all" convention shared by the party edits.
func parse_slot(s *save.Save, arg string) ([]int, error) {
	if arg == "all" {
		count, err := s.Party_count()
		if err != nil {
			return nil, err
		}
		slots := []int{}
		for i := 1; i <= count; i += 1 {
			slots = append(slots, i)
		}
		return slots, nil
	}
	slot, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("expected a slot number or \"all\", got %q", arg)
	}
	return []int{slot}, nil
}

func main() {
	err := main2()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var help_text = []string{
	"Crystal Save File Editor",
	"",
	"Session:",
	"   load FILE          start editing a save from the save dir",
	"   save               write the edited save back (old file kept as .old)",
	"",
	"Reading:",
	"   info               player, money, pockets",
	"   party [detailed]   the roster, optionally with DVs/stat exp",
	"",
	"Editing:",
	"   money N|max        set money (BCD field tops out at 999999)",
	"   additem POCKET ITEM [QTY]   add/update an item in BOTH banks",
	"   allballs           99 of every ball type",
	"   healing            stock up on healing items",
	"   vitamins           stock up on stat items",
	"   setname NAME       rename the player (encoded text, max 10 chars)",
	"   shiny SLOT|all     rewrite DVs to the shiny spread",
	"   maxstats SLOT|all  DVs to 15, stat exp to 65535",
	"   level SLOT N       set level (clamped to 1-100)",
	"   heal               full HP/status/PP for the whole party",
	"   species SLOT ID [LEVEL]     transform a party member",
	"   move SLOT MOVESLOT ID       set one move",
	"   give SLOT ITEM     set held item",
	"   suicune SLOT       replace a party member with a shiny Suicune",
	"",
	"Other:",
	"   watch              monitor the save dir and report changes",
	"   help               this",
	"",
	"Item, species and move arguments take ids (decimal or 0x..) or names;",
	"names don't have to be complete, \"mast\" finds the Master Ball.",
}

func main2() error {
	dir := utils.Get_savefile_dir()
	args := os.Args[1:]
	if len(args) > 1 && args[0] == "--dir" {
		dir = args[1]
		args = args[2:]
	}

	arg := "help"
	if len(args) == 0 {
		fmt.Println("No args detected - falling back to \"help\", since you clearly need it...")
	} else {
		arg = args[0]
	}
	subargs := args[1:]

	switch arg {
	case "help":
		for _, ht := range help_text {
			fmt.Println(ht)
		}

	case "load":
		if len(subargs) < 1 {
			return errors.New("Load what?  Filename expected.")
		}
		full_filename := dir + "/" + subargs[0]
		bs, err := os.ReadFile(full_filename)
		if err != nil {
			return err
		}
		_, err = save.Load(bs)
		if errors.Is(err, types.Err_size_mismatch) {
			// Non fatal - old dumps have padding.  Say so and keep going.
			fmt.Println("Warning:", err)
		} else if err != nil {
			return err
		}
		fmt.Println("Loaded", full_filename)
		return stash(full_filename, bs)

	case "save":
		filename, s, err := retrieve()
		if err != nil {
			return err
		}

		// Back up the old file.
		// Since this is a "powerful" (i.e. capable of completely trashing
		// savefiles) tool, that's probably a good idea.
		newname := filename + ".old"
		err = os.Rename(filename, newname)
		if err != nil {
			return err
		}
		fmt.Println(filename, "renamed to", newname)

		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		writer := bufio.NewWriter(f)
		err = s.Write(writer)
		if err != nil {
			return err
		}
		writer.Flush()
		f.Sync()
		fmt.Println("New file written to", filename)

		err = os.Remove(g_stash_filename)
		if err != nil {
			return err
		}
		fmt.Println("Temporary data cleaned up")

	case "info":
		_, s, err := retrieve()
		if err != nil {
			return err
		}
		return show_info(s)

	case "party":
		_, s, err := retrieve()
		if err != nil {
			return err
		}
		return show_party(s, len(subargs) > 0 && subargs[0] == "detailed")

	case "watch":
		reports := make(chan *watch.Report)
		watcher := watch.New_watcher(dir)
		go func() {
			for report := range reports {
				fmt.Println(report.File)
				for _, line := range report.Lines {
					fmt.Println("   " + line)
				}
				fmt.Println()
			}
		}()

		err := watcher.Start_watching(reports)
		if err != nil {
			return err
		}
		fmt.Println("Watching...", dir)
		fmt.Println()

		// Wait forever!
		<-make(chan bool)

	default:
		// Everything else is an edit against the stash.
		filename, s, err := retrieve()
		if err != nil {
			return err
		}
		err = apply_edit(s, arg, subargs)
		if err != nil {
			return err
		}
		return stash(filename, s.Img.Bytes())
	}

	return nil
}

// apply_edit runs one mutating subcommand against the session's save.
func apply_edit(s *save.Save, arg string, subargs []string) error {
	switch arg {
	case "money":
		if len(subargs) < 1 {
			return errors.New("Set money to what?")
		}
		v := 999999
		if subargs[0] != "max" {
			var err error
			v, err = strconv.Atoi(subargs[0])
			if err != nil {
				return err
			}
		}
		if err := s.Set_money(v); err != nil {
			return err
		}
		money, _ := s.Money()
		fmt.Println("Money set to", money)

	case "additem":
		if len(subargs) < 2 {
			return errors.New("Usage: additem POCKET ITEM [QTY]")
		}
		pocket := subargs[0]
		item, name, err := parse_id(subargs[1], tables.Pocket_names(pocket), "item")
		if err != nil {
			return err
		}
		qty := 99
		if len(subargs) > 2 {
			qty, err = strconv.Atoi(subargs[2])
			if err != nil {
				return err
			}
		}
		// Clamp before the uint8 conversion, or big numbers wrap mod 256.
		if qty < 0 {
			qty = 0
		}
		if qty > save.MAX_QUANTITY {
			qty = save.MAX_QUANTITY
		}
		report_upsert(s, pocket, name, item, uint8(qty))

	case "allballs":
		for id, name := range tables.Balls {
			report_upsert(s, "balls", name, id, 99)
		}

	case "healing":
		for _, id := range []uint8{0x0D, 0x0E, 0x10, 0x12, 0x19} {
			report_upsert(s, "items", safe_lookup(tables.Items, id), id, 99)
		}

	case "vitamins":
		for _, id := range []uint8{tables.ITEM_RARE_CANDY, 0x2D, 0x2E, 0x2F, 0x30, 0x31, 0x4A} {
			report_upsert(s, "items", safe_lookup(tables.Items, id), id, 99)
		}

	case "setname":
		if len(subargs) < 1 {
			return errors.New("Set name to what?")
		}
		if err := s.Set_name(subargs[0]); err != nil {
			return err
		}
		fmt.Println("Player renamed to", subargs[0])

	case "shiny":
		if len(subargs) < 1 {
			return errors.New("Usage: shiny SLOT|all")
		}
		slots, err := parse_slot(s, subargs[0])
		if err != nil {
			return err
		}
		for _, slot := range slots {
			changed, err := s.Make_shiny(slot)
			if err != nil {
				return err
			}
			c, _ := s.Creature(slot)
			if changed {
				fmt.Println(safe_lookup(tables.Species, c.Species), "is now SHINY")
			} else {
				fmt.Println(safe_lookup(tables.Species, c.Species), "is already shiny")
			}
		}

	case "maxstats":
		if len(subargs) < 1 {
			return errors.New("Usage: maxstats SLOT|all")
		}
		slots, err := parse_slot(s, subargs[0])
		if err != nil {
			return err
		}
		for _, slot := range slots {
			if err := s.Max_stats(slot); err != nil {
				return err
			}
			c, _ := s.Creature(slot)
			fmt.Println("Maxed stats for", safe_lookup(tables.Species, c.Species), "(DVs=15, stat exp=65535)")
		}

	case "level":
		if len(subargs) < 2 {
			return errors.New("Usage: level SLOT N")
		}
		slot, err := strconv.Atoi(subargs[0])
		if err != nil {
			return err
		}
		level, err := strconv.Atoi(subargs[1])
		if err != nil {
			return err
		}
		if err := s.Set_level(slot, level); err != nil {
			return err
		}
		c, _ := s.Creature(slot)
		fmt.Println("Set", safe_lookup(tables.Species, c.Species), "to level", c.Level)

	case "heal":
		n, err := s.Heal_all()
		if err != nil {
			return err
		}
		fmt.Println("Healed all", n, "party members")

	case "species":
		if len(subargs) < 2 {
			return errors.New("Usage: species SLOT ID [LEVEL]")
		}
		slot, err := strconv.Atoi(subargs[0])
		if err != nil {
			return err
		}
		species, name, err := parse_id(subargs[1], tables.Species, "species")
		if err != nil {
			return err
		}
		level := 0
		if len(subargs) > 2 {
			level, err = strconv.Atoi(subargs[2])
			if err != nil {
				return err
			}
		}
		old, err := s.Creature(slot)
		if err != nil {
			return err
		}
		if err := s.Set_species(slot, species, level); err != nil {
			return err
		}
		fmt.Println("Transformed", safe_lookup(tables.Species, old.Species), "into", name)

	case "move":
		if len(subargs) < 3 {
			return errors.New("Usage: move SLOT MOVESLOT ID")
		}
		slot, err := strconv.Atoi(subargs[0])
		if err != nil {
			return err
		}
		move_slot, err := strconv.Atoi(subargs[1])
		if err != nil {
			return err
		}
		move, name, err := parse_id(subargs[2], tables.Moves, "move")
		if err != nil {
			return err
		}
		if err := s.Set_move(slot, move_slot, move); err != nil {
			return err
		}
		fmt.Println("Move", move_slot, "set to", name)

	case "give":
		if len(subargs) < 2 {
			return errors.New("Usage: give SLOT ITEM")
		}
		slot, err := strconv.Atoi(subargs[0])
		if err != nil {
			return err
		}
		item, name, err := parse_id(subargs[1], tables.Held_items, "held item")
		if err != nil {
			return err
		}
		if err := s.Give_item(slot, item); err != nil {
			return err
		}
		c, _ := s.Creature(slot)
		fmt.Println("Gave", safe_lookup(tables.Species, c.Species), "a", name)

	case "suicune":
		if len(subargs) < 1 {
			return errors.New("Usage: suicune SLOT")
		}
		slot, err := strconv.Atoi(subargs[0])
		if err != nil {
			return err
		}
		old, err := s.Creature(slot)
		if err != nil {
			return err
		}
		if err := install_suicune(s, slot); err != nil {
			return err
		}
		fmt.Println("Replaced", safe_lookup(tables.Species, old.Species), "with a SHINY Suicune (Lv.40)")
		fmt.Println("   Moves: Surf, Ice Beam, Rain Dance, Aurora Beam")

	default:
		return errors.New(arg + " is not a command.  Try \"help\".")
	}
	return nil
}

// install_suicune builds the Ho-Oh quest Suicune in the given slot out of the
// ordinary edit operations: encounter level, a sensible water moveset with
// matching PP, shiny DVs, maxed stat exp, and a clean bill of health.
func install_suicune(s *save.Save, slot int) error {
	if err := s.Set_species(slot, tables.SPECIES_SUICUNE, 40); err != nil {
		return err
	}

	if err := s.Max_stats(slot); err != nil {
		return err
	}
	// Max_stats writes DVs of 15 across the board; put the shiny spread back.
	if err := s.Set_dvs(slot, save.Shiny_dvs()); err != nil {
		return err
	}

	// Base HP 100 works out to about this at the encounter level.
	if err := s.Set_hp(slot, 160, 160); err != nil {
		return err
	}
	if err := s.Heal(slot); err != nil {
		return err
	}

	// Heal refills PP with a flat value, so the moveset goes in afterwards
	// with each move's real maximum.
	moves := []struct {
		id uint8
		pp uint8
	}{
		{tables.MOVE_SURF, 15},
		{tables.MOVE_ICE_BEAM, 10},
		{tables.MOVE_RAIN_DANCE, 5},
		{tables.MOVE_AURORA_BEAM, 20},
	}
	for i, m := range moves {
		if err := s.Set_move(slot, i+1, m.id); err != nil {
			return err
		}
		if err := s.Set_pp(slot, i+1, m.pp); err != nil {
			return err
		}
	}
	if err := s.Set_friendship(slot, 255); err != nil {
		return err
	}
	return s.Give_item(slot, 0)
}

func show_info(s *save.Save) error {
	name, err := s.Name()
	if err != nil {
		return err
	}
	id, err := s.Trainer_id()
	if err != nil {
		return err
	}
	money, err := s.Money()
	if err != nil {
		return err
	}
	fmt.Println("Player:", name)
	fmt.Println("Trainer ID:", id)
	fmt.Println("Money:", money)

	ok, err := s.Verify()
	if err == nil {
		for bank, valid := range ok {
			if !valid {
				fmt.Println("WARNING:", types.Bank_name(bank), "bank checksum is stale (save to fix)")
			}
		}
	}

	for _, pocket := range []string{"items", "balls"} {
		p, err := s.Pocket(types.BANK_PRIMARY, pocket)
		if err != nil {
			return err
		}
		count, err := p.Count()
		if err != nil {
			return err
		}
		if count > p.Max_slots() {
			// Garbage count byte; listing slots would just print noise.
			fmt.Println(pocket, ": count byte claims", count, "- corrupt?")
			continue
		}
		fmt.Println()
		fmt.Println(strings.ToUpper(pocket), "(", count, "types):")
		lookup := tables.Pocket_names(pocket)
		for i := 0; i < count; i += 1 {
			item, qty, err := p.Slot(i)
			if err != nil {
				return err
			}
			fmt.Printf("   %v: x%v\n", safe_lookup(lookup, item), qty)
		}
	}
	return nil
}

func show_party(s *save.Save, detailed bool) error {
	count, err := s.Party_count()
	if err != nil {
		return err
	}
	fmt.Printf("Party (%v/%v)\n", count, s.Layout.Party_max)

	for slot := 1; slot <= count; slot += 1 {
		c, err := s.Creature(slot)
		if err != nil {
			return err
		}
		star := ""
		if c.Dvs.Shiny() {
			star = "* "
		}
		fmt.Printf("\n%v. %v%v (Lv.%v)\n", slot, star, safe_lookup(tables.Species, c.Species), c.Level)
		fmt.Println("   Item:", safe_lookup(tables.Held_items, c.Item))
		moves := []string{}
		for _, m := range c.Moves {
			if m != 0 {
				moves = append(moves, safe_lookup(tables.Moves, m))
			}
		}
		fmt.Println("   Moves:", strings.Join(moves, ", "))

		if detailed {
			fmt.Printf("   DVs: HP=%v Atk=%v Def=%v Spd=%v Spc=%v\n",
				c.Dvs.Hp(), c.Dvs.Atk, c.Dvs.Def, c.Dvs.Spd, c.Dvs.Spc)
			fmt.Printf("   Stat exp: HP=%v Atk=%v Def=%v Spd=%v Spc=%v\n",
				c.Stats.Hp, c.Stats.Atk, c.Stats.Def, c.Stats.Spd, c.Stats.Spc)
			fmt.Printf("   HP: %v/%v\n", c.Hp, c.Max_hp)
			fmt.Println("   Friendship:", c.Friendship)
		}
	}
	return nil
}

func report_upsert(s *save.Save, pocket, name string, item, qty uint8) {
	results := s.Upsert_item(pocket, item, qty)
	strs := []string{}
	for _, r := range results {
		strs = append(strs, r.String())
	}
	fmt.Printf("%v: %v\n", name, strings.Join(strs, ", "))
}

func stash(filename string, data []byte) error {
	f, err := os.Create(g_stash_filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	encoder := gob.NewEncoder(w)
	err = encoder.Encode(filename)
	if err != nil {
		return err
	}
	err = encoder.Encode(data)
	if err != nil {
		return err
	}
	w.Flush()
	f.Sync()

	return nil
}

func retrieve() (string, *save.Save, error) {
	f, err := os.Open(g_stash_filename)
	if err != nil {
		return "", nil, fmt.Errorf("no session in progress? (%w)", err)
	}
	defer f.Close()

	decoder := gob.NewDecoder(bufio.NewReader(f))
	var filename string
	var data []byte
	err = decoder.Decode(&filename)
	if err != nil {
		return "", nil, err
	}
	err = decoder.Decode(&data)
	if err != nil {
		return "", nil, err
	}

	s, err := save.Load(data)
	if err != nil && !errors.Is(err, types.Err_size_mismatch) {
		return "", nil, err
	}
	return filename, s, nil
}
