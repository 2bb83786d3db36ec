//go:build windows

package host

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/wide"
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procSendMessage = user32.NewProc("SendMessageW")
)

// Win32 sends messages with SendMessageW.
type Win32 struct{}

// NewMessenger returns the platform messenger.
func NewMessenger() Messenger {
	return Win32{}
}

// Send implements Messenger.
func (Win32) Send(hwnd npp.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procSendMessage.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return r
}

// SendPtr implements Messenger.
func (Win32) SendPtr(hwnd npp.Handle, msg uint32, wParam uintptr, lParam unsafe.Pointer) uintptr {
	r, _, _ := procSendMessage.Call(uintptr(hwnd), uintptr(msg), wParam, uintptr(lParam))
	return r
}

// MessageBox implements Messenger.
func (Win32) MessageBox(owner npp.Handle, text, caption string, flags uint32) error {
	t := wide.Terminated(text)
	c := wide.Terminated(caption)
	_, err := windows.MessageBox(windows.HWND(owner), &t[0], &c[0], flags)
	return err
}
