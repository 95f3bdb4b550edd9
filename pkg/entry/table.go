// Package entry implements the fixed-capacity table of file and directory
// entries. Entries are addressed by stable slot index; slot 0 always holds
// the root directory, which is its own parent.
package entry

import (
	"fmt"
	"strings"
	"time"

	. "github.com/weberc2/memfs/pkg/types"
)

const DefaultNameMax = 31

type Table struct {
	entries []Entry
	nameMax int
	live    int
}

// New returns a table with `capacity` slots (including the root's) whose
// root directory was created at `now`.
func New(capacity Index, nameMax int, now time.Time) *Table {
	if capacity < 1 {
		panic(fmt.Sprintf("entry table capacity must be positive: `%d`", capacity))
	}
	t := Table{entries: make([]Entry, capacity), nameMax: nameMax}
	t.entries[IndexRoot] = Entry{
		Name:       "/",
		Kind:       KindDir,
		CreatedAt:  now,
		ModifiedAt: now,
		Parent:     IndexRoot,
	}
	t.live = 1
	return &t
}

func (t *Table) Cap() Index { return Index(len(t.entries)) }

// Len returns the number of live entries, the root included.
func (t *Table) Len() int { return t.live }

func (t *Table) NameMax() int { return t.nameMax }

// Get returns the live entry at `i`. The pointer stays valid until the slot
// is erased.
func (t *Table) Get(i Index) (*Entry, error) {
	if i < 0 || i >= t.Cap() || !t.entries[i].Live() {
		return nil, fmt.Errorf("getting entry `%d`: %w", i, NotFoundErr)
	}
	return &t.entries[i], nil
}

// Slot returns the raw slot at `i`, live or not. It exists for consistency
// checks that must see empty slots too.
func (t *Table) Slot(i Index) *Entry { return &t.entries[i] }

// FindByName scans every slot for the live entry named `name` whose parent
// is `parent`. The root is never a child of itself.
func (t *Table) FindByName(name string, parent Index) (Index, error) {
	for i := IndexRoot + 1; i < t.Cap(); i++ {
		e := &t.entries[i]
		if e.Live() && e.Parent == parent && e.Name == name {
			return i, nil
		}
	}
	return IndexNil, fmt.Errorf(
		"finding `%s` in dir `%d`: %w",
		name,
		parent,
		NotFoundErr,
	)
}

// Create installs a new empty entry under `parent` in the first free slot.
func (t *Table) Create(
	name string,
	parent Index,
	kind Kind,
	now time.Time,
) (Index, error) {
	if err := t.ValidateName(name); err != nil {
		return IndexNil, fmt.Errorf("creating `%s`: %w", name, err)
	}
	if err := kind.Validate(); err != nil {
		return IndexNil, fmt.Errorf("creating `%s`: %w", name, err)
	}
	dir, err := t.Get(parent)
	if err != nil {
		return IndexNil, fmt.Errorf("creating `%s`: %w", name, err)
	}
	if !dir.IsDir() {
		return IndexNil, fmt.Errorf(
			"creating `%s` in entry `%d`: %w",
			name,
			parent,
			NotADirErr,
		)
	}
	if _, err := t.FindByName(name, parent); err == nil {
		return IndexNil, fmt.Errorf(
			"creating `%s` in dir `%d`: %w",
			name,
			parent,
			DuplicateNameErr,
		)
	}

	slot := t.freeSlot()
	if slot == IndexNil {
		return IndexNil, fmt.Errorf(
			"creating `%s` in dir `%d` (capacity `%d`): %w",
			name,
			parent,
			t.Cap(),
			TableFullErr,
		)
	}

	t.entries[slot] = Entry{
		Name:       name,
		Kind:       kind,
		CreatedAt:  now,
		ModifiedAt: now,
		Parent:     parent,
	}
	t.live++
	return slot, nil
}

// Erase zeroes the slot at `i`. Releasing the entry's blocks is the caller's
// job.
func (t *Table) Erase(i Index) error {
	if i == IndexRoot {
		return fmt.Errorf("erasing entry `%d`: %w", i, CannotDeleteRootErr)
	}
	if _, err := t.Get(i); err != nil {
		return fmt.Errorf("erasing entry: %w", err)
	}
	t.entries[i] = Entry{}
	t.live--
	return nil
}

// Children returns the indices of the live entries whose parent is `dir`, in
// slot order.
func (t *Table) Children(dir Index) []Index {
	var out []Index
	for i := IndexRoot + 1; i < t.Cap(); i++ {
		if e := &t.entries[i]; e.Live() && e.Parent == dir {
			out = append(out, i)
		}
	}
	return out
}

// HasChildren is Children without the allocation.
func (t *Table) HasChildren(dir Index) bool {
	for i := IndexRoot + 1; i < t.Cap(); i++ {
		if e := &t.entries[i]; e.Live() && e.Parent == dir {
			return true
		}
	}
	return false
}

func (t *Table) ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return fmt.Errorf("validating name `%s`: %w", name, InvalidNameErr)
	}
	if len(name) > t.nameMax {
		return fmt.Errorf(
			"validating name `%s` (max `%d` bytes): %w",
			name,
			t.nameMax,
			NameTooLongErr,
		)
	}
	return nil
}

func (t *Table) freeSlot() Index {
	for i := IndexRoot + 1; i < t.Cap(); i++ {
		if !t.entries[i].Live() {
			return i
		}
	}
	return IndexNil
}
