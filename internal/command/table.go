package command

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/wide"
)

// MaxEntries is the number of command trampolines available.
const MaxEntries = 8

// Errors returned by the table.
var (
	ErrNoEntries    = errors.New("no command entries")
	ErrTooMany      = errors.New("too many command entries")
	ErrEmptyName    = errors.New("empty command name")
	ErrNilFunc      = errors.New("nil command func")
	ErrOutOfRange   = errors.New("command index out of range")
	ErrNotPublished = errors.New("command table not published")
	ErrPanicked     = errors.New("command panicked")
)

// Entry describes one menu command.
type Entry struct {
	// Name is the menu label. Names longer than npp.MenuItemSize-1 UTF-16
	// units are truncated.
	Name string
	// Func runs when the command is chosen.
	Func func()
	// Checked is the initial checkmark state.
	Checked bool
	// SeparatorAfter adds a menu separator after this entry.
	SeparatorAfter bool
	// Shortcut is the default keyboard shortcut, or nil.
	Shortcut *npp.ShortcutKey
}

// Trampoline returns the C function pointer for command slot i.
type Trampoline func(i int) uintptr

// Table is a fixed set of entries published once into an Arena.
type Table struct {
	entries []Entry

	once      sync.Once
	items     *npp.FuncItem
	count     int
	itemIndex []int
}

// NewTable validates entries and returns an unpublished table.
func NewTable(entries ...Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	if len(entries) > MaxEntries {
		return nil, fmt.Errorf("%d entries, limit %d: %w", len(entries), MaxEntries, ErrTooMany)
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if e.Func == nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Name, ErrNilFunc)
		}
	}
	return &Table{entries: append([]Entry(nil), entries...)}, nil
}

// Len returns the number of entries, not counting separators.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns entry i.
func (t *Table) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Publish lays the table out in arena on the first call and returns the
// base pointer and item count. Later calls ignore their arguments and
// return the same values.
func (t *Table) Publish(arena Arena, trampoline Trampoline) (*npp.FuncItem, int) {
	t.once.Do(func() {
		t.publish(arena, trampoline)
	})
	return t.items, t.count
}

// Published reports whether Publish has run.
func (t *Table) Published() bool {
	return t.items != nil
}

func (t *Table) publish(arena Arena, trampoline Trampoline) {
	count := len(t.entries)
	for _, e := range t.entries {
		if e.SeparatorAfter {
			count++
		}
	}

	itemSize := unsafe.Sizeof(npp.FuncItem{})
	base := (*npp.FuncItem)(arena.Alloc(itemSize * uintptr(count)))
	items := unsafe.Slice(base, count)

	t.itemIndex = make([]int, len(t.entries))
	n := 0
	for i, e := range t.entries {
		item := &items[n]
		wide.CopyTerminated(item.ItemName[:], e.Name)
		item.PFunc = trampoline(i)
		item.Init2Check = e.Checked
		if e.Shortcut != nil {
			sk := (*npp.ShortcutKey)(arena.Alloc(unsafe.Sizeof(npp.ShortcutKey{})))
			*sk = *e.Shortcut
			item.PShKey = sk
		}
		t.itemIndex[i] = n
		n++

		if e.SeparatorAfter {
			// Zeroed by the arena: empty name, nil callback.
			n++
		}
	}

	t.items = base
	t.count = count
}

// Items returns the published items, or nil before Publish.
func (t *Table) Items() []npp.FuncItem {
	if t.items == nil {
		return nil
	}
	return unsafe.Slice(t.items, t.count)
}

// CommandID returns the id the host assigned to entry i. It is zero until
// the host has registered the table.
func (t *Table) CommandID(i int) (int32, error) {
	if i < 0 || i >= len(t.entries) {
		return 0, fmt.Errorf("command %d: %w", i, ErrOutOfRange)
	}
	items := t.Items()
	if items == nil {
		return 0, ErrNotPublished
	}
	return items[t.itemIndex[i]].CmdID, nil
}

// Invoke runs entry i. A panic in the entry is returned as an error
// wrapping ErrPanicked.
func (t *Table) Invoke(i int) (err error) {
	if i < 0 || i >= len(t.entries) {
		return fmt.Errorf("command %d: %w", i, ErrOutOfRange)
	}
	e := t.entries[i]

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command %q: %v: %w", e.Name, r, ErrPanicked)
		}
	}()

	e.Func()
	return nil
}
