package save

// Inventory pockets.  Each pocket is a count byte and then (item, quantity)
// pairs, two bytes per slot.  The same pocket exists independently in both
// banks and the game is happy to load either copy, so any edit that claims
// to have worked has to have worked in BOTH - see Upsert_item.

import (
	"fmt"

	"crysedit/types"
)

const MAX_QUANTITY = 99

// Pocket is a view over one pocket in one bank.  It holds no state of its
// own; everything reads through to the image.
type Pocket struct {
	img  *types.Image
	spec types.Pocket_spec
}

// Pocket returns the named pocket in the given bank.
func (s *Save) Pocket(bank int, name string) (Pocket, error) {
	if bank < 0 || bank >= len(s.Layout.Banks) {
		return Pocket{}, fmt.Errorf("no bank %v", bank)
	}
	spec, ok := s.Layout.Banks[bank].Pockets[name]
	if !ok {
		return Pocket{}, fmt.Errorf("no pocket named %q", name)
	}
	return Pocket{s.Img, spec}, nil
}

func (p Pocket) Max_slots() int {
	return p.spec.Max_slots
}

func (p Pocket) Count() (int, error) {
	c, err := p.img.Read_u8(p.spec.Count_offset)
	return int(c), err
}

// Slot returns the (item, quantity) pair at index i.  No count validation -
// callers iterating 0..Count() get what's actually stored, valid or not.
func (p Pocket) Slot(i int) (uint8, uint8, error) {
	bs, err := p.img.Read_range(p.spec.Data_offset+2*i, 2)
	if err != nil {
		return 0, 0, err
	}
	return bs[0], bs[1], nil
}

// Find scans the valid slots for an item.  Returns -1 when absent.
func (p Pocket) Find(item uint8) (int, error) {
	count, err := p.Count()
	if err != nil {
		return -1, err
	}
	for i := 0; i < count; i += 1 {
		id, _, err := p.Slot(i)
		if err != nil {
			return -1, err
		}
		if id == item {
			return i, nil
		}
	}
	return -1, nil
}

// Upsert_result describes what one bank-level upsert did.
type Upsert_result struct {
	Found bool  // an existing slot was updated, rather than a new one appended
	Old   uint8 // previous quantity (0 when appended)
	New   uint8 // quantity actually written, after clamping
}

func (r Upsert_result) String() string {
	if r.Found {
		return fmt.Sprintf("updated: %v -> %v", r.Old, r.New)
	}
	return fmt.Sprintf("added x%v", r.New)
}

// Upsert writes quantity (clamped to [0,99]) for item, appending a new slot
// if the item isn't present yet.  A full pocket fails with Err_pocket_full
// and leaves the buffer untouched - bounds are pre-checked so there is no
// half-applied case.
func (p Pocket) Upsert(item, quantity uint8) (Upsert_result, error) {
	if quantity > MAX_QUANTITY {
		quantity = MAX_QUANTITY
	}

	i, err := p.Find(item)
	if err != nil {
		return Upsert_result{}, err
	}
	if i >= 0 {
		_, old, err := p.Slot(i)
		if err != nil {
			return Upsert_result{}, err
		}
		err = p.img.Write_u8(p.spec.Data_offset+2*i+1, quantity)
		if err != nil {
			return Upsert_result{}, err
		}
		return Upsert_result{Found: true, Old: old, New: quantity}, nil
	}

	count, err := p.Count()
	if err != nil {
		return Upsert_result{}, err
	}
	if count >= p.spec.Max_slots {
		return Upsert_result{}, fmt.Errorf("%w: %v/%v slots used",
			types.Err_pocket_full, count, p.spec.Max_slots)
	}

	// Check the whole append before writing any of it.
	slot := p.spec.Data_offset + 2*count
	if err := p.img.Check(slot, 2); err != nil {
		return Upsert_result{}, err
	}
	if err := p.img.Check(p.spec.Count_offset, 1); err != nil {
		return Upsert_result{}, err
	}
	p.img.Write_u8(slot, item)
	p.img.Write_u8(slot+1, quantity)
	p.img.Write_u8(p.spec.Count_offset, uint8(count+1))
	return Upsert_result{New: quantity}, nil
}

// Bank_result is one bank's outcome of a mirrored edit.
type Bank_result struct {
	Bank   int
	Result Upsert_result
	Err    error
}

func (br Bank_result) String() string {
	if br.Err != nil {
		return fmt.Sprintf("%v bank: %v", types.Bank_name(br.Bank), br.Err)
	}
	return fmt.Sprintf("%v bank: %v", types.Bank_name(br.Bank), br.Result)
}

// Upsert_item applies one upsert to the named pocket in EVERY bank.  Each
// bank succeeds or fails on its own and the caller gets all the outcomes;
// one copy being full while the other took the item is a real state the
// file can be in, and pretending otherwise would just hide the corruption.
func (s *Save) Upsert_item(pocket string, item, quantity uint8) []Bank_result {
	out := []Bank_result{}
	for bank := range s.Layout.Banks {
		p, err := s.Pocket(bank, pocket)
		if err != nil {
			out = append(out, Bank_result{Bank: bank, Err: err})
			continue
		}
		res, err := p.Upsert(item, quantity)
		out = append(out, Bank_result{Bank: bank, Result: res, Err: err})
	}
	return out
}
