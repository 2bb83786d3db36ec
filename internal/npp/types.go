package npp

import "unsafe"

// Handle is an opaque window handle (HWND) owned by the host.
type Handle uintptr

// IsZero reports whether the handle is the null handle.
func (h Handle) IsZero() bool {
	return h == 0
}

// BufferID identifies a document buffer inside the host (UINT_PTR).
type BufferID uintptr

// MenuItemSize is the capacity, in UTF-16 units including the terminator,
// of a FuncItem name.
const MenuItemSize = 64

// NppData is the handle set passed to setInfo.
type NppData struct {
	NppHandle             Handle
	ScintillaMainHandle   Handle
	ScintillaSecondHandle Handle
}

// ShortcutKey is the host's keyboard shortcut descriptor.
// Key is a Win32 virtual-key code.
type ShortcutKey struct {
	IsCtrl  bool
	IsAlt   bool
	IsShift bool
	Key     uint8
}

// FuncItem is one entry of the command table returned by getFuncsArray.
//
// PFunc holds a C function pointer. A zero PFunc makes the host render the
// item as a menu separator. CmdID is assigned by the host after the table
// has been read.
type FuncItem struct {
	ItemName   [MenuItemSize]uint16
	PFunc      uintptr
	CmdID      int32
	Init2Check bool
	PShKey     *ShortcutKey
}

// NMHDR is the Win32 notification header that starts every SCNotification.
type NMHDR struct {
	HwndFrom Handle
	IDFrom   uintptr
	Code     uint32
}

// SCNotification is the notification structure passed to beNotified.
//
// Only the header is declared. The host owns the full structure and the
// extension never reads past the header, so declaring the Scintilla fields
// would only invite copying the value.
type SCNotification struct {
	Nmhdr NMHDR
}

// Code returns the notification code.
func (n *SCNotification) Code() NotificationCode {
	return NotificationCode(n.Nmhdr.Code)
}

// BufferID returns idFrom interpreted as a buffer id. File notifications
// carry the affected buffer there.
func (n *SCNotification) BufferID() BufferID {
	return BufferID(n.Nmhdr.IDFrom)
}

// CommunicationInfo is the payload of NPPM_MSGTOPLUGIN.
type CommunicationInfo struct {
	InternalMsg   int32
	SrcModuleName *uint16
	Info          unsafe.Pointer
}

// SessionInfo describes a session file (NPPM_SAVESESSION).
type SessionInfo struct {
	SessionFilePathName *uint16
	NbFile              int32
	Files               **uint16
}

// ToolbarIcons is the payload of NPPM_ADDTOOLBARICON_DEPRECATED.
type ToolbarIcons struct {
	HToolbarBmp  Handle
	HToolbarIcon Handle
}

// ToolbarIconsWithDarkMode is the payload of NPPM_ADDTOOLBARICON_FORDARKMODE.
type ToolbarIconsWithDarkMode struct {
	HToolbarBmp          Handle
	HToolbarIcon         Handle
	HToolbarIconDarkMode Handle
}

// DarkModeColors is filled by NPPM_GETDARKMODECOLORS. Every field is a
// COLORREF.
type DarkModeColors struct {
	Background       uint32
	SofterBackground uint32
	HotBackground    uint32
	PureBackground   uint32
	ErrorBackground  uint32
	Text             uint32
	DarkerText       uint32
	DisabledText     uint32
	LinkText         uint32
	Edge             uint32
	HotEdge          uint32
	DisabledEdge     uint32
}

// Dark mode subclassing flags for NPPM_DARKMODESUBCLASSANDTHEME.
const (
	DMFInit         uint32 = 0x0000000B
	DMFHandleChange uint32 = 0x0000000C
)
