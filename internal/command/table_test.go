package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/wide"
)

func fakeTrampoline(i int) uintptr {
	return uintptr(0x1000 + i)
}

func TestNewTable_Validation(t *testing.T) {
	noop := func() {}

	_, err := NewTable()
	assert.ErrorIs(t, err, ErrNoEntries)

	_, err = NewTable(Entry{Name: "", Func: noop})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewTable(Entry{Name: "About"})
	assert.ErrorIs(t, err, ErrNilFunc)

	many := make([]Entry, MaxEntries+1)
	for i := range many {
		many[i] = Entry{Name: "x", Func: noop}
	}
	_, err = NewTable(many...)
	assert.ErrorIs(t, err, ErrTooMany)

	_, err = NewTable(many[:MaxEntries]...)
	assert.NoError(t, err)
}

func TestTable_SingleAboutEntry(t *testing.T) {
	table, err := NewTable(Entry{Name: "About", Func: func() {}})
	require.NoError(t, err)

	arena := &HeapArena{}
	items, n := table.Publish(arena, fakeTrampoline)

	require.NotNil(t, items)
	assert.Equal(t, 1, n)

	item := table.Items()[0]
	want := [npp.MenuItemSize]uint16{'A', 'b', 'o', 'u', 't'}
	assert.Equal(t, want, item.ItemName)
	assert.Equal(t, "About", wide.Decode(item.ItemName[:]))
	assert.Equal(t, uintptr(0x1000), item.PFunc)
	assert.Zero(t, item.CmdID)
	assert.False(t, item.Init2Check)
	assert.Nil(t, item.PShKey)
}

func TestTable_PublishIsStable(t *testing.T) {
	table, err := NewTable(Entry{Name: "About", Func: func() {}})
	require.NoError(t, err)

	arena := &HeapArena{}
	p1, n1 := table.Publish(arena, fakeTrampoline)
	allocs := arena.Allocations()

	p2, n2 := table.Publish(arena, fakeTrampoline)
	p3, n3 := table.Publish(&HeapArena{}, func(int) uintptr { return 0 })

	assert.Same(t, p1, p2)
	assert.Same(t, p1, p3)
	assert.Equal(t, n1, n2)
	assert.Equal(t, n1, n3)
	assert.Equal(t, allocs, arena.Allocations(), "republishing must not allocate")
}

func TestTable_NameTruncation(t *testing.T) {
	long := strings.Repeat("n", 100)
	table, err := NewTable(Entry{Name: long, Func: func() {}})
	require.NoError(t, err)

	table.Publish(&HeapArena{}, fakeTrampoline)
	name := table.Items()[0].ItemName

	assert.Equal(t, strings.Repeat("n", npp.MenuItemSize-1), wide.Decode(name[:]))
	assert.Zero(t, name[npp.MenuItemSize-1])
}

func TestTable_SeparatorsAndShortcuts(t *testing.T) {
	sk := &npp.ShortcutKey{IsCtrl: true, IsShift: true, Key: 'A'}
	table, err := NewTable(
		Entry{Name: "First", Func: func() {}, SeparatorAfter: true, Checked: true},
		Entry{Name: "Second", Func: func() {}, Shortcut: sk},
	)
	require.NoError(t, err)

	_, n := table.Publish(&HeapArena{}, fakeTrampoline)
	require.Equal(t, 3, n)

	items := table.Items()
	assert.Equal(t, "First", wide.Decode(items[0].ItemName[:]))
	assert.True(t, items[0].Init2Check)
	assert.Equal(t, uintptr(0x1000), items[0].PFunc)

	assert.Zero(t, items[1].PFunc, "separator has no callback")
	assert.Equal(t, "", wide.Decode(items[1].ItemName[:]))

	assert.Equal(t, "Second", wide.Decode(items[2].ItemName[:]))
	assert.Equal(t, uintptr(0x1001), items[2].PFunc)
	require.NotNil(t, items[2].PShKey)
	assert.Equal(t, *sk, *items[2].PShKey)
	assert.NotSame(t, sk, items[2].PShKey, "shortcut is copied into the arena")
}

func TestTable_CommandID(t *testing.T) {
	table, err := NewTable(
		Entry{Name: "A", Func: func() {}, SeparatorAfter: true},
		Entry{Name: "B", Func: func() {}},
	)
	require.NoError(t, err)

	_, err = table.CommandID(0)
	assert.ErrorIs(t, err, ErrNotPublished)

	table.Publish(&HeapArena{}, fakeTrampoline)

	// Simulate the host assigning ids.
	items := table.Items()
	items[0].CmdID = 22000
	items[2].CmdID = 22002

	id, err := table.CommandID(0)
	require.NoError(t, err)
	assert.Equal(t, int32(22000), id)

	id, err = table.CommandID(1)
	require.NoError(t, err)
	assert.Equal(t, int32(22002), id)

	_, err = table.CommandID(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTable_Invoke(t *testing.T) {
	calls := 0
	table, err := NewTable(
		Entry{Name: "Count", Func: func() { calls++ }},
		Entry{Name: "Boom", Func: func() { panic(errors.New("boom")) }},
	)
	require.NoError(t, err)

	require.NoError(t, table.Invoke(0))
	assert.Equal(t, 1, calls)

	err = table.Invoke(1)
	assert.ErrorIs(t, err, ErrPanicked)
	assert.Contains(t, err.Error(), "Boom")

	assert.ErrorIs(t, table.Invoke(-1), ErrOutOfRange)
	assert.ErrorIs(t, table.Invoke(2), ErrOutOfRange)
}
