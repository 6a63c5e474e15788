package transfer

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownSide = errors.New("unknown transfer list side")
	ErrUnknownItem = errors.New("item is not on this side of the transfer list")
)

// pane is one side of the transfer list.
type pane[T Item] struct {
	all         []T // last externally supplied contents, updated by moves
	query       string
	visible     []T
	checked     []T
	allSelected bool
}

func (p *pane[T]) refresh() {
	p.visible = Filter(p.all, p.query)
}

func (p *pane[T]) isChecked(id string) bool {
	return slices.ContainsFunc(p.checked, func(item T) bool {
		return item.GetID() == id
	})
}

// List holds an available and an assigned list plus a checked subset for
// each. It is not safe for concurrent use.
type List[T Item] struct {
	available pane[T]
	assigned  pane[T]
}

// NewList creates a transfer list. Items of available that are also in
// assigned are only kept on the assigned side.
func NewList[T Item](available, assigned []T) *List[T] {
	l := &List[T]{}
	l.Reset(available, assigned)
	return l
}

func (l *List[T]) pane(side Side) (*pane[T], error) {
	switch side {
	case Available:
		return &l.available, nil
	case Assigned:
		return &l.assigned, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}
}

// Reset replaces both lists, for example after a fresh API response. Checked
// items that no longer exist are dropped and active searches are re-applied.
func (l *List[T]) Reset(available, assigned []T) {
	assignedKeys := keySet(assigned)

	l.assigned.all = slices.Clone(assigned)
	l.available.all = slices.DeleteFunc(slices.Clone(available), func(item T) bool {
		_, isAssigned := assignedKeys[item.GetID()]
		return isAssigned
	})

	for _, p := range []*pane[T]{&l.available, &l.assigned} {
		present := keySet(p.all)
		p.checked = slices.DeleteFunc(p.checked, func(item T) bool {
			_, ok := present[item.GetID()]
			return !ok
		})
		p.refresh()
	}
}

// Available returns the visible, possibly filtered, available items.
func (l *List[T]) Available() []T {
	return slices.Clone(l.available.visible)
}

// Assigned returns the visible, possibly filtered, assigned items.
func (l *List[T]) Assigned() []T {
	return slices.Clone(l.assigned.visible)
}

// AllAvailable returns every available item regardless of search.
func (l *List[T]) AllAvailable() []T {
	return slices.Clone(l.available.all)
}

// AllAssigned returns every assigned item regardless of search. This is the
// list submitted to the backend.
func (l *List[T]) AllAssigned() []T {
	return slices.Clone(l.assigned.all)
}

// Lookup finds an item by key on the given side.
func (l *List[T]) Lookup(side Side, id string) (T, bool) {
	var zero T
	p, err := l.pane(side)
	if err != nil {
		return zero, false
	}
	idx := slices.IndexFunc(p.all, func(item T) bool {
		return item.GetID() == id
	})
	if idx < 0 {
		return zero, false
	}
	return p.all[idx], true
}

// Checked returns the checked items of a side in the order they were checked.
func (l *List[T]) Checked(side Side) []T {
	p, err := l.pane(side)
	if err != nil {
		return nil
	}
	return slices.Clone(p.checked)
}

// IsChecked reports whether item is checked on side.
func (l *List[T]) IsChecked(side Side, item T) bool {
	p, err := l.pane(side)
	if err != nil {
		return false
	}
	return p.isChecked(item.GetID())
}

// Toggle checks item on side, or unchecks it when it already is. Items are
// matched by key and must be on side. Unchecking clears the select all state.
func (l *List[T]) Toggle(side Side, item T) error {
	p, err := l.pane(side)
	if err != nil {
		return err
	}

	id := item.GetID()
	if p.isChecked(id) {
		p.checked = slices.DeleteFunc(p.checked, func(checked T) bool {
			return checked.GetID() == id
		})
		p.allSelected = false
		return nil
	}

	idx := slices.IndexFunc(p.all, func(candidate T) bool {
		return candidate.GetID() == id
	})
	if idx < 0 {
		return fmt.Errorf("%w: %s %q", ErrUnknownItem, side, id)
	}

	p.checked = append(p.checked, p.all[idx])
	return nil
}

// SelectAll checks every visible item of side.
func (l *List[T]) SelectAll(side Side) error {
	p, err := l.pane(side)
	if err != nil {
		return err
	}
	p.checked = slices.Clone(p.visible)
	p.allSelected = true
	return nil
}

// DeselectAll clears the checked items of side.
func (l *List[T]) DeselectAll(side Side) error {
	p, err := l.pane(side)
	if err != nil {
		return err
	}
	p.checked = nil
	p.allSelected = false
	return nil
}

// ToggleSelectAll flips the select all header checkbox of side.
func (l *List[T]) ToggleSelectAll(side Side) error {
	p, err := l.pane(side)
	if err != nil {
		return err
	}
	if p.allSelected {
		return l.DeselectAll(side)
	}
	return l.SelectAll(side)
}

// IsAllSelected reports the state of the select all header checkbox.
func (l *List[T]) IsAllSelected(side Side) bool {
	p, err := l.pane(side)
	if err != nil {
		return false
	}
	return p.allSelected
}

// Assign moves the checked available items to the assigned list.
func (l *List[T]) Assign() {
	l.move(&l.available, &l.assigned)
}

// Unassign moves the checked assigned items back to the available list.
func (l *List[T]) Unassign() {
	l.move(&l.assigned, &l.available)
}

func (l *List[T]) move(from, to *pane[T]) {
	from.all, to.all = Move(from.checked, from.all, to.all)
	from.checked = nil
	from.allSelected = false

	from.refresh()
	to.refresh()
}

// Search filters the visible items of side by display name. The filter always
// runs against the full list, so an empty query restores it.
func (l *List[T]) Search(side Side, query string) error {
	p, err := l.pane(side)
	if err != nil {
		return err
	}
	p.query = query
	p.refresh()
	return nil
}

// Query returns the active search query of side.
func (l *List[T]) Query(side Side) string {
	p, err := l.pane(side)
	if err != nil {
		return ""
	}
	return p.query
}
