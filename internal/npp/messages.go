package npp

// WM_USER is the first private Win32 window message.
const WM_USER uint32 = 0x400

// NPPMSG is the base of every host message (WM_USER + 1000).
const NPPMSG = WM_USER + 1000

// Host messages sent with SendMessage to the Notepad++ main window.
const (
	NPPM_GETCURRENTSCINTILLA                  = NPPMSG + 4
	NPPM_GETCURRENTLANGTYPE                   = NPPMSG + 5
	NPPM_SETCURRENTLANGTYPE                   = NPPMSG + 6
	NPPM_GETNBOPENFILES                       = NPPMSG + 7
	NPPM_GETOPENFILENAMES_DEPRECATED          = NPPMSG + 8
	NPPM_MODELESSDIALOG                       = NPPMSG + 12
	NPPM_GETNBSESSIONFILES                    = NPPMSG + 13
	NPPM_GETSESSIONFILES                      = NPPMSG + 14
	NPPM_SAVESESSION                          = NPPMSG + 15
	NPPM_SAVECURRENTSESSION                   = NPPMSG + 16
	NPPM_GETOPENFILENAMESPRIMARY_DEPRECATED   = NPPMSG + 17
	NPPM_GETOPENFILENAMESSECOND_DEPRECATED    = NPPMSG + 18
	NPPM_CREATESCINTILLAHANDLE                = NPPMSG + 20
	NPPM_DESTROYSCINTILLAHANDLE_DEPRECATED    = NPPMSG + 21
	NPPM_GETNBUSERLANG                        = NPPMSG + 22
	NPPM_GETCURRENTDOCINDEX                   = NPPMSG + 23
	NPPM_SETSTATUSBAR                         = NPPMSG + 24
	NPPM_GETMENUHANDLE                        = NPPMSG + 25
	NPPM_ENCODESCI                            = NPPMSG + 26
	NPPM_DECODESCI                            = NPPMSG + 27
	NPPM_ACTIVATEDOC                          = NPPMSG + 28
	NPPM_LAUNCHFINDINFILESDLG                 = NPPMSG + 29
	NPPM_DMMSHOW                              = NPPMSG + 30
	NPPM_DMMHIDE                              = NPPMSG + 31
	NPPM_DMMUPDATEDISPINFO                    = NPPMSG + 32
	NPPM_DMMREGASDCKDLG                       = NPPMSG + 33
	NPPM_LOADSESSION                          = NPPMSG + 34
	NPPM_DMMVIEWOTHERTAB                      = NPPMSG + 35
	NPPM_RELOADFILE                           = NPPMSG + 36
	NPPM_SWITCHTOFILE                         = NPPMSG + 37
	NPPM_SAVECURRENTFILE                      = NPPMSG + 38
	NPPM_SAVEALLFILES                         = NPPMSG + 39
	NPPM_SETMENUITEMCHECK                     = NPPMSG + 40
	NPPM_ADDTOOLBARICON_DEPRECATED            = NPPMSG + 41
	NPPM_GETWINDOWSVERSION                    = NPPMSG + 42
	NPPM_DMMGETPLUGINHWNDBYNAME               = NPPMSG + 43
	NPPM_MAKECURRENTBUFFERDIRTY               = NPPMSG + 44
	NPPM_GETENABLETHEMETEXTUREFUNC_DEPRECATED = NPPMSG + 45
	NPPM_GETPLUGINSCONFIGDIR                  = NPPMSG + 46
	NPPM_MSGTOPLUGIN                          = NPPMSG + 47
	NPPM_MENUCOMMAND                          = NPPMSG + 48
	NPPM_TRIGGERTABBARCONTEXTMENU             = NPPMSG + 49
	NPPM_GETNPPVERSION                        = NPPMSG + 50
	NPPM_HIDETABBAR                           = NPPMSG + 51
	NPPM_ISTABBARHIDDEN                       = NPPMSG + 52
	NPPM_GETPOSFROMBUFFERID                   = NPPMSG + 57
	NPPM_GETFULLPATHFROMBUFFERID              = NPPMSG + 58
	NPPM_GETBUFFERIDFROMPOS                   = NPPMSG + 59
	NPPM_GETCURRENTBUFFERID                   = NPPMSG + 60
	NPPM_RELOADBUFFERID                       = NPPMSG + 61
	NPPM_GETBUFFERLANGTYPE                    = NPPMSG + 64
	NPPM_SETBUFFERLANGTYPE                    = NPPMSG + 65
	NPPM_GETBUFFERENCODING                    = NPPMSG + 66
	NPPM_SETBUFFERENCODING                    = NPPMSG + 67
	NPPM_GETBUFFERFORMAT                      = NPPMSG + 68
	NPPM_SETBUFFERFORMAT                      = NPPMSG + 69
	NPPM_HIDETOOLBAR                          = NPPMSG + 70
	NPPM_ISTOOLBARHIDDEN                      = NPPMSG + 71
	NPPM_HIDEMENU                             = NPPMSG + 72
	NPPM_ISMENUHIDDEN                         = NPPMSG + 73
	NPPM_HIDESTATUSBAR                        = NPPMSG + 74
	NPPM_ISSTATUSBARHIDDEN                    = NPPMSG + 75
	NPPM_GETSHORTCUTBYCMDID                   = NPPMSG + 76
	NPPM_DOOPEN                               = NPPMSG + 77
	NPPM_SAVECURRENTFILEAS                    = NPPMSG + 78
	NPPM_GETCURRENTNATIVELANGENCODING         = NPPMSG + 79
	NPPM_ALLOCATESUPPORTED_DEPRECATED         = NPPMSG + 80
	NPPM_ALLOCATECMDID                        = NPPMSG + 81
	NPPM_ALLOCATEMARKER                       = NPPMSG + 82
	NPPM_GETLANGUAGENAME                      = NPPMSG + 83
	NPPM_GETLANGUAGEDESC                      = NPPMSG + 84
	NPPM_SHOWDOCLIST                          = NPPMSG + 85
	NPPM_ISDOCLISTSHOWN                       = NPPMSG + 86
	NPPM_GETAPPDATAPLUGINSALLOWED             = NPPMSG + 87
	NPPM_GETCURRENTVIEW                       = NPPMSG + 88
	NPPM_DOCLISTDISABLEEXTCOLUMN              = NPPMSG + 89
	NPPM_GETEDITORDEFAULTFOREGROUNDCOLOR      = NPPMSG + 90
	NPPM_GETEDITORDEFAULTBACKGROUNDCOLOR      = NPPMSG + 91
	NPPM_SETSMOOTHFONT                        = NPPMSG + 92
	NPPM_SETEDITORBORDEREDGE                  = NPPMSG + 93
	NPPM_SAVEFILE                             = NPPMSG + 94
	NPPM_DISABLEAUTOUPDATE                    = NPPMSG + 95
	NPPM_REMOVESHORTCUTBYCMDID                = NPPMSG + 96
	NPPM_GETPLUGINHOMEPATH                    = NPPMSG + 97
	NPPM_GETSETTINGSONCLOUDPATH               = NPPMSG + 98
	NPPM_SETLINENUMBERWIDTHMODE               = NPPMSG + 99
	NPPM_GETLINENUMBERWIDTHMODE               = NPPMSG + 100
	NPPM_ADDTOOLBARICON_FORDARKMODE           = NPPMSG + 101
	NPPM_DOCLISTDISABLEPATHCOLUMN             = NPPMSG + 102
	NPPM_GETEXTERNALLEXERAUTOINDENTMODE       = NPPMSG + 103
	NPPM_SETEXTERNALLEXERAUTOINDENTMODE       = NPPMSG + 104
	NPPM_ISAUTOINDENTON                       = NPPMSG + 105
	NPPM_GETCURRENTMACROSTATUS                = NPPMSG + 106
	NPPM_ISDARKMODEENABLED                    = NPPMSG + 107
	NPPM_GETDARKMODECOLORS                    = NPPMSG + 108
	NPPM_GETCURRENTCMDLINE                    = NPPMSG + 109
	NPPM_CREATELEXER                          = NPPMSG + 110
	NPPM_GETBOOKMARKID                        = NPPMSG + 111
	NPPM_DARKMODESUBCLASSANDTHEME             = NPPMSG + 112
	NPPM_ALLOCATEINDICATOR                    = NPPMSG + 113
	NPPM_GETTABCOLORID                        = NPPMSG + 114
	NPPM_SETUNTITLEDNAME                      = NPPMSG + 115
	NPPM_GETNATIVELANGFILENAME                = NPPMSG + 116
	NPPM_ADDSCNMODIFIEDFLAGS                  = NPPMSG + 117
	NPPM_GETTOOLBARICONSETCHOICE              = NPPMSG + 118
	NPPM_GETNPPSETTINGSDIRPATH                = NPPMSG + 119
)

// RUNCOMMAND_USER is the base of the path and word query messages.
const RUNCOMMAND_USER = WM_USER + 3000

// Variable indices combined with RUNCOMMAND_USER.
const (
	VAR_NOT_RECOGNIZED  uint32 = 0
	FULL_CURRENT_PATH   uint32 = 1
	CURRENT_DIRECTORY   uint32 = 2
	FILE_NAME           uint32 = 3
	NAME_PART           uint32 = 4
	EXT_PART            uint32 = 5
	CURRENT_WORD        uint32 = 6
	NPP_DIRECTORY       uint32 = 7
	CURRENT_LINE        uint32 = 8
	CURRENT_COLUMN      uint32 = 9
	NPP_FULL_FILE_PATH  uint32 = 10
	GETFILENAMEATCURSOR uint32 = 11
	CURRENT_LINESTR     uint32 = 12
)

// Path and word queries: wParam is the buffer length, lParam the buffer.
const (
	NPPM_GETFULLCURRENTPATH  = RUNCOMMAND_USER + FULL_CURRENT_PATH
	NPPM_GETCURRENTDIRECTORY = RUNCOMMAND_USER + CURRENT_DIRECTORY
	NPPM_GETFILENAME         = RUNCOMMAND_USER + FILE_NAME
	NPPM_GETNAMEPART         = RUNCOMMAND_USER + NAME_PART
	NPPM_GETEXTPART          = RUNCOMMAND_USER + EXT_PART
	NPPM_GETCURRENTWORD      = RUNCOMMAND_USER + CURRENT_WORD
	NPPM_GETNPPDIRECTORY     = RUNCOMMAND_USER + NPP_DIRECTORY
	NPPM_GETNPPFULLFILEPATH  = RUNCOMMAND_USER + NPP_FULL_FILE_PATH
	NPPM_GETFILENAMEATCURSOR = RUNCOMMAND_USER + GETFILENAMEATCURSOR
	NPPM_GETCURRENTLINESTR   = RUNCOMMAND_USER + CURRENT_LINESTR
	NPPM_GETCURRENTLINE      = RUNCOMMAND_USER + CURRENT_LINE
	NPPM_GETCURRENTCOLUMN    = RUNCOMMAND_USER + CURRENT_COLUMN
)
