// Package plugin is the Go side of the Notepad++ extension contract.
//
// Notepad++ loads the extension DLL and drives it through six exported C
// functions. The cgo exports in package boundary translate C types and
// forward each call to the Plugin defined here:
//
//	setInfo(NppData)                  -> SetInfo
//	getName()                         -> Name
//	getFuncsArray(int*)               -> Commands
//	beNotified(SCNotification*)       -> Notify
//	messageProc(UINT, WPARAM, LPARAM) -> Message
//	isUnicode()                       -> IsUnicode
//
// Every entry point recovers panics and falls back to the call's default
// result; nothing unwinds into the host. All calls arrive on the host's UI
// thread and the Plugin never starts goroutines.
//
// # Lifecycle
//
// The host calls setInfo first. The Plugin records the window handles,
// asks the host for its plugins configuration directory, and loads
// settings, the log file and the optional Lua script from there. getName
// and getFuncsArray follow; both produce values that are fixed from their
// first call on. Notifications and messages then arrive until NPPN_SHUTDOWN,
// after which the script is closed and the log flushed. The command table
// and the name stay allocated until the process exits.
package plugin
