// Package npp holds the Notepad++ plugin protocol data: the structures the
// host and an extension exchange across the DLL boundary, and the message
// and notification identifiers defined by Notepad_plus_msgs.h.
//
// Struct layouts in this package mirror the host's C definitions field for
// field so that values can be read from, or written into, host-visible
// memory with a plain pointer conversion. Handles are opaque: the extension
// stores them and passes them back to host APIs, it never dereferences them.
//
// The identifier catalogs are kept complete even though only a handful of
// values drive behavior. They are protocol data and must match the host's
// definitions bit for bit.
package npp
