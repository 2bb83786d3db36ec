package host

import (
	"errors"
	"unsafe"

	"github.com/dshills/nppbridge/internal/npp"
)

// ErrUnsupported is returned on platforms without a Win32 host.
var ErrUnsupported = errors.New("host messaging is not supported on this platform")

// Message box flags.
const (
	MB_OK              uint32 = 0x00000000
	MB_ICONINFORMATION uint32 = 0x00000040
)

// Messenger delivers window messages to the host.
type Messenger interface {
	// Send delivers a message whose parameters are plain values.
	Send(hwnd npp.Handle, msg uint32, wParam, lParam uintptr) uintptr
	// SendPtr delivers a message whose lParam points at memory the host
	// reads or fills before returning.
	SendPtr(hwnd npp.Handle, msg uint32, wParam uintptr, lParam unsafe.Pointer) uintptr
	// MessageBox shows a modal message box owned by hwnd.
	MessageBox(owner npp.Handle, text, caption string, flags uint32) error
}
