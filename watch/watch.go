// Package watch monitors a directory of save files and reports what changed
// in each one as the game (or an editor) writes it: checksum health, money
// movement, party composition, freshly shiny party members.
package watch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"crysedit/save"
	"crysedit/tables"
	"crysedit/types"
)

// Report is one save-file change, pre-rendered for display.
type Report struct {
	File     string
	Identity string // player name + trainer id; survives renames of the file
	Lines    []string
}

type Watcher interface {
	Start_watching(reports chan<- *Report) error
	Stop_watching()
}

func New_watcher(dir string) Watcher {
	return &dir_watcher{dir: dir, settle: 2 * time.Second}
}

// state_type is what we remember between writes, keyed by identity.
// It lives in a JSON file in the watched dir so restarting the watcher
// doesn't replay everything as "new".
type state_type struct {
	Money map[string]int       `json:"money"`
	Party map[string][]uint8   `json:"party"`
	Shiny map[string][]bool    `json:"shiny"`
}

const state_file = "crysedit_watch.json"

type dir_watcher struct {
	dir           string
	settle        time.Duration // how long to wait for the writer to finish with the file
	watcher       *fsnotify.Watcher
	state         state_type
	last_identity string
}

func (dw *dir_watcher) Start_watching(reports chan<- *Report) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dw.watcher = watcher
	dw.load_state()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) && is_save_file(event.Name) {
					dw.handle_file(event.Name, reports)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Println(err)
			}
		}
	}()

	err = dw.watcher.Add(dw.dir)
	if err != nil {
		dw.watcher.Close()
	}
	return err
}

func (dw *dir_watcher) Stop_watching() {
	dw.watcher.Close()
}

func is_save_file(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".srm") || strings.HasSuffix(lower, ".sav")
}

func (dw *dir_watcher) save_state() {
	b, _ := json.Marshal(dw.state)
	os.WriteFile(filepath.Join(dw.dir, state_file), b, 0644)
}

func (dw *dir_watcher) load_state() {
	bs, _ := os.ReadFile(filepath.Join(dw.dir, state_file))
	json.Unmarshal(bs, &dw.state)
	if dw.state.Money == nil {
		dw.state.Money = map[string]int{}
	}
	if dw.state.Party == nil {
		dw.state.Party = map[string][]uint8{}
	}
	if dw.state.Shiny == nil {
		dw.state.Shiny = map[string][]bool{}
	}
}

func (dw *dir_watcher) handle_file(filename string, out chan<- *Report) {
	// Emulators flush SRAM in pieces; grabbing the file mid-write reads
	// garbage, so give the writer a moment.
	time.Sleep(dw.settle)

	bs, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println("Failed to load file", filename, "-", err)
		return
	}
	s, err := save.Load(bs)
	if err != nil && !errors.Is(err, types.Err_size_mismatch) {
		fmt.Println("Failed to parse file", filename, "-", err)
		return
	}

	report := Snapshot(s, &dw.state)
	if err != nil {
		report.Lines = append([]string{err.Error()}, report.Lines...)
	}
	report.File = filename

	if dw.last_identity != report.Identity {
		report.Lines = append([]string{"Identity is " + report.Identity}, report.Lines...)
		dw.last_identity = report.Identity
	}

	dw.save_state()
	if len(report.Lines) > 0 {
		out <- report
	}
}

// Snapshot diffs a loaded save against remembered state, updates the state,
// and returns the interesting differences.  Split out from the fsnotify
// plumbing so it can be driven directly in tests.
func Snapshot(s *save.Save, state *state_type) *Report {
	report := &Report{}

	name, err := s.Name()
	if err != nil {
		report.Lines = append(report.Lines, "unreadable player name: "+err.Error())
		return report
	}
	id, _ := s.Trainer_id()
	report.Identity = fmt.Sprintf("%v:%v", name, id)

	// Checksum health first - the game only trusts the primary copy.
	ok, err := s.Verify()
	if err == nil {
		for bank, valid := range ok {
			if !valid {
				report.Lines = append(report.Lines,
					fmt.Sprintf("%v bank checksum is STALE", types.Bank_name(bank)))
			}
		}
	}

	if money, err := s.Money(); err == nil {
		old, seen := state.Money[report.Identity]
		if seen && money != old {
			report.Lines = append(report.Lines, fmt.Sprintf("Money: %v -> %v", old, money))
		}
		state.Money[report.Identity] = money
	}

	count, err := s.Party_count()
	if err != nil {
		return report
	}
	party := []uint8{}
	shiny := []bool{}
	for slot := 1; slot <= count; slot += 1 {
		c, err := s.Creature(slot)
		if err != nil {
			break
		}
		party = append(party, c.Species)
		shiny = append(shiny, c.Dvs.Shiny())
	}

	old_party := state.Party[report.Identity]
	old_shiny := state.Shiny[report.Identity]
	for i := range party {
		sp := tables.Species[party[i]]
		if sp == "" {
			sp = fmt.Sprintf("#%v", party[i])
		}
		if i >= len(old_party) {
			report.Lines = append(report.Lines, fmt.Sprintf("Party slot %v: %v joined", i+1, sp))
		} else if old_party[i] != party[i] {
			report.Lines = append(report.Lines, fmt.Sprintf("Party slot %v: now %v", i+1, sp))
		}
		if shiny[i] && (i >= len(old_shiny) || !old_shiny[i]) {
			report.Lines = append(report.Lines, fmt.Sprintf("Party slot %v: %v is SHINY", i+1, sp))
		}
	}
	state.Party[report.Identity] = party
	state.Shiny[report.Identity] = shiny

	return report
}
