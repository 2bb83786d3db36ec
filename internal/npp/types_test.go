package npp

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

func TestFuncItem_Layout(t *testing.T) {
	var item FuncItem

	// wchar_t _itemName[64]; PFUNCPLUGINCMD _pFunc; int _cmdID; bool _init2Check; ShortcutKey *_pShKey;
	assert.Equal(t, uintptr(0), unsafe.Offsetof(item.ItemName))
	assert.Equal(t, uintptr(MenuItemSize*2), unsafe.Offsetof(item.PFunc))
	assert.Equal(t, uintptr(MenuItemSize*2)+ptrSize, unsafe.Offsetof(item.CmdID))
	assert.Equal(t, uintptr(MenuItemSize*2)+ptrSize+4, unsafe.Offsetof(item.Init2Check))
	assert.Equal(t, alignUp(uintptr(MenuItemSize*2)+ptrSize+4+1, ptrSize), unsafe.Offsetof(item.PShKey))
	assert.Equal(t, unsafe.Offsetof(item.PShKey)+ptrSize, unsafe.Sizeof(item))
}

func TestShortcutKey_Layout(t *testing.T) {
	assert.Equal(t, uintptr(4), unsafe.Sizeof(ShortcutKey{}))
	assert.Equal(t, uintptr(3), unsafe.Offsetof(ShortcutKey{}.Key))
}

func TestNppData_Layout(t *testing.T) {
	var d NppData
	assert.Equal(t, 3*ptrSize, unsafe.Sizeof(d))
	assert.Equal(t, ptrSize, unsafe.Offsetof(d.ScintillaMainHandle))
	assert.Equal(t, 2*ptrSize, unsafe.Offsetof(d.ScintillaSecondHandle))
}

func TestNMHDR_Layout(t *testing.T) {
	var h NMHDR
	assert.Equal(t, ptrSize, unsafe.Offsetof(h.IDFrom))
	assert.Equal(t, 2*ptrSize, unsafe.Offsetof(h.Code))
}

func TestSCNotification_Accessors(t *testing.T) {
	n := &SCNotification{Nmhdr: NMHDR{HwndFrom: 7, IDFrom: 42, Code: uint32(NPPN_FILEOPENED)}}

	assert.Equal(t, NPPN_FILEOPENED, n.Code())
	assert.Equal(t, BufferID(42), n.BufferID())
}

func TestHandle_IsZero(t *testing.T) {
	assert.True(t, Handle(0).IsZero())
	assert.False(t, Handle(1).IsZero())
}
