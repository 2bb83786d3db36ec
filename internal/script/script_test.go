package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/nppbridge/internal/npp"
)

const recorder = `
events = {}
local function record(s) events[#events + 1] = s end

function on_ready() record("ready " .. npp.name .. " " .. npp.version) end
function on_file_opened(id, path) record("opened " .. id .. " " .. path) end
function on_file_closed(id) record("closed " .. id) end
function on_buffer_activated(id, path) record("activated " .. id .. " " .. path) end
function on_shutdown() npp.log("bye") end
function on_plugin_message(msg, src)
  if src == "Other.dll" then return msg * 2 end
  return "ignored"
end
`

var info = Info{Name: "Bridge", Version: "8.630"}

func TestScript_Hooks(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := context.Background()

	sc, err := LoadString(ctx, "recorder", recorder, info, WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer sc.Close()

	assert.ElementsMatch(t, Hooks, sc.Defined())

	require.NoError(t, sc.Ready(ctx))
	require.NoError(t, sc.FileOpened(ctx, 7, `C:\a.txt`))
	require.NoError(t, sc.BufferActivated(ctx, 7, `C:\a.txt`))
	require.NoError(t, sc.FileClosed(ctx, 7))
	require.NoError(t, sc.Shutdown(ctx))

	require.NoError(t, sc.state.DoString(ctx, `joined = table.concat(events, "|")`))
	assert.Equal(t,
		`ready Bridge 8.630|opened 7 C:\a.txt|activated 7 C:\a.txt|closed 7`,
		sc.state.GetGlobal("joined").String(),
	)

	bye := logs.FilterMessage("bye").All()
	require.Len(t, bye, 1)
	assert.Equal(t, "recorder", bye[0].ContextMap()["script"])
}

func TestScript_PluginMessage(t *testing.T) {
	ctx := context.Background()
	sc, err := LoadString(ctx, "recorder", recorder, info)
	require.NoError(t, err)
	defer sc.Close()

	got, err := sc.PluginMessage(ctx, 21, "Other.dll")
	require.NoError(t, err)
	assert.Equal(t, uintptr(42), got)

	got, err = sc.PluginMessage(ctx, 21, "Someone.dll")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestScript_MissingHooksAreSkipped(t *testing.T) {
	ctx := context.Background()
	sc, err := LoadString(ctx, "empty", `x = 1`, info)
	require.NoError(t, err)
	defer sc.Close()

	assert.Empty(t, sc.Defined())
	assert.NoError(t, sc.Ready(ctx))
	assert.NoError(t, sc.FileOpened(ctx, 1, "p"))
	assert.NoError(t, sc.Shutdown(ctx))

	got, err := sc.PluginMessage(ctx, 1, "x")
	assert.NoError(t, err)
	assert.Zero(t, got)
}

func TestScript_ErrorsAreReturned(t *testing.T) {
	ctx := context.Background()
	sc, err := LoadString(ctx, "bad", `function on_ready() error("nope") end`, info)
	require.NoError(t, err)
	defer sc.Close()

	err = sc.Ready(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), HookReady)
	assert.Contains(t, err.Error(), "nope")
}

func TestScript_LoadErrors(t *testing.T) {
	ctx := context.Background()

	_, err := LoadString(ctx, "syntax", `function (`, info)
	assert.Error(t, err)

	_, err = LoadFile(ctx, filepath.Join(t.TempDir(), "none.lua"), info)
	assert.ErrorIs(t, err, ErrNoScript)
}

func TestScript_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "NppBridge.lua")
	require.NoError(t, os.WriteFile(path, []byte(`function on_ready() ready = true end`), 0o644))

	ctx := context.Background()
	sc, err := LoadFile(ctx, path, info)
	require.NoError(t, err)
	defer sc.Close()

	assert.Equal(t, path, sc.Source())
	assert.Equal(t, []string{HookReady}, sc.Defined())
	require.NoError(t, sc.Ready(ctx))
	assert.Equal(t, "true", sc.state.GetGlobal("ready").String())
}

func TestScript_PrintGoesToLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := context.Background()

	sc, err := LoadString(ctx, "printer", `print("a", 1, true)`, info, WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer sc.Close()

	assert.Equal(t, 1, logs.FilterMessage("a\t1\ttrue").Len())
}

type fakeHost struct {
	current npp.BufferID
	paths   map[npp.BufferID]string
	checked map[int]bool
}

func (h *fakeHost) CurrentBuffer() (npp.BufferID, error) { return h.current, nil }
func (h *fakeHost) ConfigDir() (string, error)           { return `C:\cfg`, nil }

func (h *fakeHost) BufferPath(id npp.BufferID) (string, error) {
	p, ok := h.paths[id]
	if !ok {
		return "", errors.New("unknown buffer")
	}
	return p, nil
}

func (h *fakeHost) CheckCommand(index int, on bool) error {
	if index != 0 {
		return errors.New("no such command")
	}
	h.checked[index] = on
	return nil
}

func TestScript_HostFunctions(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{
		current: 9,
		paths:   map[npp.BufferID]string{9: `C:\b.txt`},
		checked: map[int]bool{},
	}

	sc, err := LoadString(ctx, "host", `
function on_ready()
  local id = npp.current_buffer()
  here = npp.buffer_path(id) .. "@" .. npp.config_dir()
  missing, why = npp.buffer_path(1)
  ok = npp.check_command(1, true)
  bad, bad_why = npp.check_command(2, true)
end`, info, WithHost(host))
	require.NoError(t, err)
	defer sc.Close()

	require.NoError(t, sc.Ready(ctx))

	assert.Equal(t, `C:\b.txt@C:\cfg`, sc.state.GetGlobal("here").String())
	assert.Equal(t, lua.LNil, sc.state.GetGlobal("missing"))
	assert.Equal(t, "unknown buffer", sc.state.GetGlobal("why").String())
	assert.Equal(t, lua.LTrue, sc.state.GetGlobal("ok"))
	assert.Equal(t, "no such command", sc.state.GetGlobal("bad_why").String())
	assert.True(t, host.checked[0])
}

func TestScript_NoHostFunctionsWithoutHost(t *testing.T) {
	ctx := context.Background()
	sc, err := LoadString(ctx, "bare", `has = npp.current_buffer ~= nil`, info)
	require.NoError(t, err)
	defer sc.Close()

	assert.Equal(t, lua.LFalse, sc.state.GetGlobal("has"))
}
