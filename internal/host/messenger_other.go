//go:build !windows

package host

import (
	"unsafe"

	"github.com/dshills/nppbridge/internal/npp"
)

// Unsupported answers every message with 0. It lets the extension's logic
// build and run its tests off Windows.
type Unsupported struct{}

// NewMessenger returns the platform messenger.
func NewMessenger() Messenger {
	return Unsupported{}
}

// Send implements Messenger.
func (Unsupported) Send(npp.Handle, uint32, uintptr, uintptr) uintptr {
	return 0
}

// SendPtr implements Messenger.
func (Unsupported) SendPtr(npp.Handle, uint32, uintptr, unsafe.Pointer) uintptr {
	return 0
}

// MessageBox implements Messenger.
func (Unsupported) MessageBox(npp.Handle, string, string, uint32) error {
	return ErrUnsupported
}
