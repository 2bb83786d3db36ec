package boundary

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/plugin"
	"github.com/dshills/nppbridge/internal/wide"
)

func TestName_StablePointerAndContent(t *testing.T) {
	p1 := name()
	p2 := name()
	require.NotNil(t, p1)
	assert.Same(t, p1, p2)

	first := wide.FromPtr(p1)
	assert.Equal(t, plugin.Default().Name(), first)
	assert.Equal(t, first, wide.FromPtr(name()))

	assert.Equal(t, unsafe.Pointer(p1), unsafe.Pointer(getName()))
}

func TestFuncs_SingleStableEntry(t *testing.T) {
	items, n := funcs()
	require.NotNil(t, items)
	assert.Equal(t, 1, n)

	again, n2 := funcs()
	assert.Same(t, items, again)
	assert.Equal(t, n, n2)

	want := [npp.MenuItemSize]uint16{'A', 'b', 'o', 'u', 't'}
	assert.Equal(t, want, items.ItemName)
	assert.NotZero(t, items.PFunc, "command callback is a C trampoline")

	assert.Equal(t, unsafe.Pointer(items), unsafe.Pointer(getFuncsArray(nil)))
}

func TestTrampoline(t *testing.T) {
	assert.NotZero(t, trampoline(0))
	assert.NotEqual(t, trampoline(0), trampoline(1))
	assert.Zero(t, trampoline(-1))
	assert.Zero(t, trampoline(8))
}

func TestExports_Defaults(t *testing.T) {
	assert.NotPanics(t, func() { beNotified(nil) })
	assert.EqualValues(t, 1, isUnicode())
	assert.EqualValues(t, 0, messageProc(0x0111, 0, 0))
}

func TestCArena_Zeroed(t *testing.T) {
	p := cArena{}.Alloc(64)
	require.NotNil(t, p)
	for _, b := range unsafe.Slice((*byte)(p), 64) {
		assert.Zero(t, b)
	}
}
