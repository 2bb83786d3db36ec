package npp

import "testing"

func TestNotificationCode_Values(t *testing.T) {
	// Values are fixed by Notepad_plus_msgs.h.
	tests := []struct {
		code NotificationCode
		want uint32
	}{
		{NPPN_READY, 1001},
		{NPPN_FILEOPENED, 1004},
		{NPPN_FILECLOSED, 1005},
		{NPPN_SHUTDOWN, 1009},
		{NPPN_BUFFERACTIVATED, 1010},
		{NPPN_TOOLBARICONSETCHANGED, 1032},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if uint32(tt.code) != tt.want {
				t.Errorf("%s = %d, want %d", tt.code, uint32(tt.code), tt.want)
			}
		})
	}
}

func TestNotificationCode_String(t *testing.T) {
	if got := NPPN_READY.String(); got != "NPPN_READY" {
		t.Errorf("String() = %q, want NPPN_READY", got)
	}
	if got := NotificationCode(2001).String(); got != "2001" {
		t.Errorf("String() = %q, want 2001", got)
	}
}

func TestNotificationCode_IsHost(t *testing.T) {
	for code := NPPN_READY; code <= NPPN_TOOLBARICONSETCHANGED; code++ {
		if !code.IsHost() {
			t.Errorf("%d should be a host notification", code)
		}
	}
	if NotificationCode(2000).IsHost() {
		t.Error("2000 is a Scintilla notification")
	}
}

func TestMessageValues(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"NPPMSG", NPPMSG, 2024},
		{"NPPM_GETCURRENTSCINTILLA", NPPM_GETCURRENTSCINTILLA, 2028},
		{"NPPM_GETPLUGINSCONFIGDIR", NPPM_GETPLUGINSCONFIGDIR, 2070},
		{"NPPM_MSGTOPLUGIN", NPPM_MSGTOPLUGIN, 2071},
		{"NPPM_GETNPPSETTINGSDIRPATH", NPPM_GETNPPSETTINGSDIRPATH, 2143},
		{"NPPM_GETFULLCURRENTPATH", NPPM_GETFULLCURRENTPATH, 4025},
		{"NPPM_GETCURRENTLINESTR", NPPM_GETCURRENTLINESTR, 4036},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
