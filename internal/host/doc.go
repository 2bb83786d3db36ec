// Package host talks back to Notepad++ through window messages.
//
// The host exposes its API as messages sent to its main window. A
// Messenger delivers those messages (SendMessageW on Windows, a fake in
// tests) and Client wraps the ones the extension uses in typed methods.
// Calls are synchronous and happen on the host's UI thread.
package host
