package npp

import "strconv"

// NotificationCode is the nmhdr.code of a host notification.
type NotificationCode uint32

// NPPN_FIRST is the base of every host notification code.
const NPPN_FIRST NotificationCode = 1000

// Host notifications delivered through beNotified.
const (
	NPPN_READY                   = NPPN_FIRST + 1
	NPPN_TBMODIFICATION          = NPPN_FIRST + 2
	NPPN_FILEBEFORECLOSE         = NPPN_FIRST + 3
	NPPN_FILEOPENED              = NPPN_FIRST + 4
	NPPN_FILECLOSED              = NPPN_FIRST + 5
	NPPN_FILEBEFOREOPEN          = NPPN_FIRST + 6
	NPPN_FILEBEFORESAVE          = NPPN_FIRST + 7
	NPPN_FILESAVED               = NPPN_FIRST + 8
	NPPN_SHUTDOWN                = NPPN_FIRST + 9
	NPPN_BUFFERACTIVATED         = NPPN_FIRST + 10
	NPPN_LANGCHANGED             = NPPN_FIRST + 11
	NPPN_WORDSTYLESUPDATED       = NPPN_FIRST + 12
	NPPN_SHORTCUTREMAPPED        = NPPN_FIRST + 13
	NPPN_FILEBEFORELOAD          = NPPN_FIRST + 14
	NPPN_FILELOADFAILED          = NPPN_FIRST + 15
	NPPN_READONLYCHANGED         = NPPN_FIRST + 16
	NPPN_DOCORDERCHANGED         = NPPN_FIRST + 17
	NPPN_SNAPSHOTDIRTYFILELOADED = NPPN_FIRST + 18
	NPPN_BEFORESHUTDOWN          = NPPN_FIRST + 19
	NPPN_CANCELSHUTDOWN          = NPPN_FIRST + 20
	NPPN_FILEBEFORERENAME        = NPPN_FIRST + 21
	NPPN_FILERENAMECANCEL        = NPPN_FIRST + 22
	NPPN_FILERENAMED             = NPPN_FIRST + 23
	NPPN_FILEBEFOREDELETE        = NPPN_FIRST + 24
	NPPN_FILEDELETEFAILED        = NPPN_FIRST + 25
	NPPN_FILEDELETED             = NPPN_FIRST + 26
	NPPN_DARKMODECHANGED         = NPPN_FIRST + 27
	NPPN_CMDLINEPLUGINMSG        = NPPN_FIRST + 28
	NPPN_EXTERNALLEXERBUFFER     = NPPN_FIRST + 29
	NPPN_GLOBALMODIFIED          = NPPN_FIRST + 30
	NPPN_NATIVELANGCHANGED       = NPPN_FIRST + 31
	NPPN_TOOLBARICONSETCHANGED   = NPPN_FIRST + 32
)

var notificationNames = map[NotificationCode]string{
	NPPN_READY:                   "NPPN_READY",
	NPPN_TBMODIFICATION:          "NPPN_TBMODIFICATION",
	NPPN_FILEBEFORECLOSE:         "NPPN_FILEBEFORECLOSE",
	NPPN_FILEOPENED:              "NPPN_FILEOPENED",
	NPPN_FILECLOSED:              "NPPN_FILECLOSED",
	NPPN_FILEBEFOREOPEN:          "NPPN_FILEBEFOREOPEN",
	NPPN_FILEBEFORESAVE:          "NPPN_FILEBEFORESAVE",
	NPPN_FILESAVED:               "NPPN_FILESAVED",
	NPPN_SHUTDOWN:                "NPPN_SHUTDOWN",
	NPPN_BUFFERACTIVATED:         "NPPN_BUFFERACTIVATED",
	NPPN_LANGCHANGED:             "NPPN_LANGCHANGED",
	NPPN_WORDSTYLESUPDATED:       "NPPN_WORDSTYLESUPDATED",
	NPPN_SHORTCUTREMAPPED:        "NPPN_SHORTCUTREMAPPED",
	NPPN_FILEBEFORELOAD:          "NPPN_FILEBEFORELOAD",
	NPPN_FILELOADFAILED:          "NPPN_FILELOADFAILED",
	NPPN_READONLYCHANGED:         "NPPN_READONLYCHANGED",
	NPPN_DOCORDERCHANGED:         "NPPN_DOCORDERCHANGED",
	NPPN_SNAPSHOTDIRTYFILELOADED: "NPPN_SNAPSHOTDIRTYFILELOADED",
	NPPN_BEFORESHUTDOWN:          "NPPN_BEFORESHUTDOWN",
	NPPN_CANCELSHUTDOWN:          "NPPN_CANCELSHUTDOWN",
	NPPN_FILEBEFORERENAME:        "NPPN_FILEBEFORERENAME",
	NPPN_FILERENAMECANCEL:        "NPPN_FILERENAMECANCEL",
	NPPN_FILERENAMED:             "NPPN_FILERENAMED",
	NPPN_FILEBEFOREDELETE:        "NPPN_FILEBEFOREDELETE",
	NPPN_FILEDELETEFAILED:        "NPPN_FILEDELETEFAILED",
	NPPN_FILEDELETED:             "NPPN_FILEDELETED",
	NPPN_DARKMODECHANGED:         "NPPN_DARKMODECHANGED",
	NPPN_CMDLINEPLUGINMSG:        "NPPN_CMDLINEPLUGINMSG",
	NPPN_EXTERNALLEXERBUFFER:     "NPPN_EXTERNALLEXERBUFFER",
	NPPN_GLOBALMODIFIED:          "NPPN_GLOBALMODIFIED",
	NPPN_NATIVELANGCHANGED:       "NPPN_NATIVELANGCHANGED",
	NPPN_TOOLBARICONSETCHANGED:   "NPPN_TOOLBARICONSETCHANGED",
}

// String returns the host's name for the code, or the number for codes this
// package does not know (Scintilla notifications arrive on the same path).
func (c NotificationCode) String() string {
	if name, ok := notificationNames[c]; ok {
		return name
	}
	return strconv.FormatUint(uint64(c), 10)
}

// IsHost reports whether c is a Notepad++ notification rather than a
// Scintilla one.
func (c NotificationCode) IsHost() bool {
	_, ok := notificationNames[c]
	return ok
}
