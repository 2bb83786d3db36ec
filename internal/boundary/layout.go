package boundary

/*
#include "nppbridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/dshills/nppbridge/internal/command"
	"github.com/dshills/nppbridge/internal/npp"
)

// The exports reinterpret C structures as their npp counterparts, so the
// layouts must agree. Each pair of array types below fails to compile if
// the sizes or offsets differ in either direction.

var (
	_ [unsafe.Sizeof(C.NppData{}) - unsafe.Sizeof(npp.NppData{})]byte
	_ [unsafe.Sizeof(npp.NppData{}) - unsafe.Sizeof(C.NppData{})]byte

	_ [unsafe.Sizeof(C.ShortcutKey{}) - unsafe.Sizeof(npp.ShortcutKey{})]byte
	_ [unsafe.Sizeof(npp.ShortcutKey{}) - unsafe.Sizeof(C.ShortcutKey{})]byte

	_ [unsafe.Sizeof(C.FuncItem{}) - unsafe.Sizeof(npp.FuncItem{})]byte
	_ [unsafe.Sizeof(npp.FuncItem{}) - unsafe.Sizeof(C.FuncItem{})]byte

	_ [unsafe.Offsetof(C.FuncItem{}.pFunc) - unsafe.Offsetof(npp.FuncItem{}.PFunc)]byte
	_ [unsafe.Offsetof(npp.FuncItem{}.PFunc) - unsafe.Offsetof(C.FuncItem{}.pFunc)]byte

	_ [unsafe.Offsetof(C.FuncItem{}.cmdID) - unsafe.Offsetof(npp.FuncItem{}.CmdID)]byte
	_ [unsafe.Offsetof(npp.FuncItem{}.CmdID) - unsafe.Offsetof(C.FuncItem{}.cmdID)]byte

	_ [unsafe.Offsetof(C.FuncItem{}.pShKey) - unsafe.Offsetof(npp.FuncItem{}.PShKey)]byte
	_ [unsafe.Offsetof(npp.FuncItem{}.PShKey) - unsafe.Offsetof(C.FuncItem{}.pShKey)]byte

	_ [unsafe.Sizeof(C.SCNotification{}) - unsafe.Sizeof(npp.SCNotification{})]byte
	_ [unsafe.Sizeof(npp.SCNotification{}) - unsafe.Sizeof(C.SCNotification{})]byte

	_ [C.NPPBRIDGE_MENU_ITEM_SIZE - npp.MenuItemSize]byte
	_ [npp.MenuItemSize - C.NPPBRIDGE_MENU_ITEM_SIZE]byte

	_ [C.NPPBRIDGE_MAX_COMMANDS - command.MaxEntries]byte
	_ [command.MaxEntries - C.NPPBRIDGE_MAX_COMMANDS]byte
)
