package npp

// LangType identifies a document language (NPPM_GETCURRENTLANGTYPE).
type LangType int32

// Language types, in host order.
const (
	L_TEXT LangType = iota
	L_PHP
	L_C
	L_CPP
	L_CS
	L_OBJC
	L_JAVA
	L_RC
	L_HTML
	L_XML
	L_MAKEFILE
	L_PASCAL
	L_BATCH
	L_INI
	L_ASCII
	L_USER
	L_ASP
	L_SQL
	L_VB
	L_JS_EMBEDDED
	L_CSS
	L_PERL
	L_PYTHON
	L_LUA
	L_TEX
	L_FORTRAN
	L_BASH
	L_FLASH
	L_NSIS
	L_TCL
	L_LISP
	L_SCHEME
	L_ASM
	L_DIFF
	L_PROPS
	L_PS
	L_RUBY
	L_SMALLTALK
	L_VHDL
	L_KIX
	L_AU3
	L_CAML
	L_ADA
	L_VERILOG
	L_MATLAB
	L_HASKELL
	L_INNO
	L_SEARCHRESULT
	L_CMAKE
	L_YAML
	L_COBOL
	L_GUI4CLI
	L_D
	L_POWERSHELL
	L_R
	L_JSP
	L_COFFEESCRIPT
	L_JSON
	L_JAVASCRIPT
	L_FORTRAN_77
	L_BAANC
	L_SREC
	L_IHEX
	L_TEHEX
	L_SWIFT
	L_ASN1
	L_AVS
	L_BLITZBASIC
	L_PUREBASIC
	L_FREEBASIC
	L_CSOUND
	L_ERLANG
	L_ESCRIPT
	L_FORTH
	L_LATEX
	L_MMIXAL
	L_NIM
	L_NNCRONTAB
	L_OSCRIPT
	L_REBOL
	L_REGISTRY
	L_RUST
	L_SPICE
	L_TXT2TAGS
	L_VISUALPROLOG
	L_TYPESCRIPT
	L_JSON5
	L_MSSQL
	L_GDSCRIPT
	L_HOLLYWOOD
	L_GOLANG
	L_RAKU
	L_TOML
	L_SAS
	L_ERRORLIST
	L_EXTERNAL
)

// ExternalLexerAutoIndentMode is the auto-indent behavior of an external lexer.
type ExternalLexerAutoIndentMode int32

// External lexer auto-indent modes.
const (
	AutoIndentStandard ExternalLexerAutoIndentMode = 0
	AutoIndentCLike    ExternalLexerAutoIndentMode = 1
	AutoIndentCustom   ExternalLexerAutoIndentMode = 2
)

// MacroStatus is returned by NPPM_GETCURRENTMACROSTATUS.
type MacroStatus int32

// Macro states.
const (
	MacroIdle             MacroStatus = 0
	MacroRecordInProgress MacroStatus = 1
	MacroRecordingStopped MacroStatus = 2
	MacroPlayingBack      MacroStatus = 3
)

// WinVer is returned by NPPM_GETWINDOWSVERSION.
type WinVer int32

// Windows versions.
const (
	WV_UNKNOWN WinVer = iota
	WV_WIN32S
	WV_95
	WV_98
	WV_ME
	WV_NT
	WV_W2K
	WV_XP
	WV_S2003
	WV_XPX64
	WV_VISTA
	WV_WIN7
	WV_WIN8
	WV_WIN81
	WV_WIN10
	WV_WIN11
)

// Platform is the host process architecture.
type Platform int32

// Platforms.
const (
	PF_UNKNOWN Platform = iota
	PF_X86
	PF_X64
	PF_IA64
	PF_ARM64
)

// Views.
const (
	MAIN_VIEW int32 = 0
	SUB_VIEW  int32 = 1
)

// File count selectors for NPPM_GETNBOPENFILES.
const (
	ALL_OPEN_FILES int32 = 0
	PRIMARY_VIEW   int32 = 1
	SECOND_VIEW    int32 = 2
)

// NPPM_MODELESSDIALOG actions.
const (
	MODELESSDIALOGADD    int32 = 0
	MODELESSDIALOGREMOVE int32 = 1
)

// NPPM_GETMENUHANDLE selectors.
const (
	NPPPLUGINMENU int32 = 0
	NPPMAINMENU   int32 = 1
)

// Status bar parts for NPPM_SETSTATUSBAR.
const (
	STATUSBAR_DOC_TYPE     int32 = 0
	STATUSBAR_DOC_SIZE     int32 = 1
	STATUSBAR_CUR_POS      int32 = 2
	STATUSBAR_EOF_FORMAT   int32 = 3
	STATUSBAR_UNICODE_TYPE int32 = 4
	STATUSBAR_TYPING_MODE  int32 = 5
)

// Line number width modes.
const (
	LINENUMWIDTH_DYNAMIC  int32 = 0
	LINENUMWIDTH_CONSTANT int32 = 1
)

// Document status flags.
const (
	DOCSTATUS_READONLY    int32 = 1
	DOCSTATUS_BUFFERDIRTY int32 = 2
)

// UniMode is a buffer encoding (NPPM_GETBUFFERENCODING).
type UniMode int32

// Encodings.
const (
	UNI_ANSI        UniMode = 0
	UNI_UTF8_BOM    UniMode = 1
	UNI_UTF16BE_BOM UniMode = 2
	UNI_UTF16LE_BOM UniMode = 3
	UNI_UTF8        UniMode = 4
	UNI_7BIT        UniMode = 5
	UNI_UTF16BE     UniMode = 6
	UNI_UTF16LE     UniMode = 7
)

// EolType is a buffer line ending (NPPM_GETBUFFERFORMAT).
type EolType int32

// Line endings.
const (
	EOL_TYPE_WIN     EolType = 0
	EOL_TYPE_MAC     EolType = 1
	EOL_TYPE_UNIX    EolType = 2
	EOL_TYPE_UNKNOWN EolType = 3
)

// Tab color ids (NPPM_GETTABCOLORID).
const (
	TAB_COLOR_NONE   int32 = -1
	TAB_COLOR_YELLOW int32 = 0
	TAB_COLOR_GREEN  int32 = 1
	TAB_COLOR_BLUE   int32 = 2
	TAB_COLOR_ORANGE int32 = 3
	TAB_COLOR_PINK   int32 = 4
)

// Toolbar icon sets (NPPM_GETTOOLBARICONSETCHOICE).
const (
	TOOLBAR_ICONSET_FLUENT_SMALL        int32 = 0
	TOOLBAR_ICONSET_FLUENT_LARGE        int32 = 1
	TOOLBAR_ICONSET_FLUENT_FILLED_SMALL int32 = 2
	TOOLBAR_ICONSET_FLUENT_FILLED_LARGE int32 = 3
	TOOLBAR_ICONSET_STANDARD_SMALL      int32 = 4
)
