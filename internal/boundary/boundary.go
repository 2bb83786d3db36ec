// Package boundary exports the C entry points Notepad++ resolves in the
// extension DLL.
//
// Each export converts its C arguments to the layout-identical types in
// package npp and forwards to plugin.Default(). Memory handed to the host
// (the name string and the command table) is allocated with calloc once
// and never freed.
package boundary

/*
#include <stdlib.h>
#include "nppbridge.h"
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/dshills/nppbridge/internal/command"
	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/plugin"
	"github.com/dshills/nppbridge/internal/wide"
)

//export setInfo
func setInfo(data C.NppData) {
	plugin.Default().SetInfo(*(*npp.NppData)(unsafe.Pointer(&data)))
}

//export getName
func getName() *C.uint16_t {
	return (*C.uint16_t)(unsafe.Pointer(name()))
}

//export getFuncsArray
func getFuncsArray(nbF *C.int) *C.FuncItem {
	items, n := funcs()
	if nbF != nil {
		*nbF = C.int(n)
	}
	return (*C.FuncItem)(unsafe.Pointer(items))
}

//export beNotified
func beNotified(notifyCode *C.SCNotification) {
	if notifyCode == nil {
		return
	}
	plugin.Default().Notify((*npp.SCNotification)(unsafe.Pointer(notifyCode)))
}

//export messageProc
func messageProc(msg C.uint, wParam C.uintptr_t, lParam C.intptr_t) C.intptr_t {
	return C.intptr_t(plugin.Default().Message(uint32(msg), uintptr(wParam), uintptr(lParam)))
}

//export isUnicode
func isUnicode() C.int {
	if plugin.Default().IsUnicode() {
		return 1
	}
	return 0
}

//export nppbridgeInvoke
func nppbridgeInvoke(i C.int) {
	plugin.Default().Invoke(int(i))
}

var (
	nameOnce sync.Once
	namePtr  *uint16
)

// name returns the extension name as a terminated UTF-16 string in C
// memory. The first call fixes the pointer and its contents.
func name() *uint16 {
	nameOnce.Do(func() {
		units := wide.Terminated(plugin.Default().Name())
		p := (*uint16)(cArena{}.Alloc(uintptr(len(units)) * unsafe.Sizeof(uint16(0))))
		copy(unsafe.Slice(p, len(units)), units)
		namePtr = p
	})
	return namePtr
}

// funcs publishes the command table into C memory.
func funcs() (*npp.FuncItem, int) {
	return plugin.Default().Commands(cArena{}, trampoline)
}

// trampoline returns the C callback for command slot i.
func trampoline(i int) uintptr {
	return uintptr(unsafe.Pointer(C.nppbridge_trampoline(C.int(i))))
}

// cArena allocates zeroed C memory that is never freed.
type cArena struct{}

// Alloc implements command.Arena.
func (cArena) Alloc(size uintptr) unsafe.Pointer {
	p := C.calloc(1, C.size_t(size))
	if p == nil {
		panic("nppbridge: out of memory")
	}
	return p
}

var _ command.Arena = cArena{}
