package script

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/nppbridge/internal/npp"
)

// Hook names a script may define.
const (
	HookReady           = "on_ready"
	HookFileOpened      = "on_file_opened"
	HookFileClosed      = "on_file_closed"
	HookBufferActivated = "on_buffer_activated"
	HookShutdown        = "on_shutdown"
	HookPluginMessage   = "on_plugin_message"
)

// Hooks lists every hook in call order of a typical session.
var Hooks = []string{
	HookReady,
	HookFileOpened,
	HookBufferActivated,
	HookPluginMessage,
	HookFileClosed,
	HookShutdown,
}

// ErrNoScript is returned by LoadFile when the file does not exist.
var ErrNoScript = errors.New("script not found")

// Info is exposed to the script as fields of the npp module.
type Info struct {
	Name    string
	Version string
}

// Host is the part of the editor a script may query through the npp
// module. Every method runs on the host's UI thread.
type Host interface {
	CurrentBuffer() (npp.BufferID, error)
	BufferPath(id npp.BufferID) (string, error)
	ConfigDir() (string, error)
	// CheckCommand sets the menu checkmark of command index (0-based;
	// scripts count from 1).
	CheckCommand(index int, on bool) error
}

// Script is a loaded reaction script.
type Script struct {
	state  *State
	logger *zap.Logger
	source string
}

// Option configures a Script.
type Option func(*options)

type options struct {
	timeout time.Duration
	logger  *zap.Logger
	host    Host
}

// WithCallTimeout sets the deadline for each hook call and for loading.
func WithCallTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets the logger behind npp.log and print.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHost exposes h to the script as npp.current_buffer, npp.buffer_path,
// npp.config_dir and npp.check_command.
func WithHost(h Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// LoadFile loads a script from path.
func LoadFile(ctx context.Context, path string, info Info, opts ...Option) (*Script, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoScript)
		}
		return nil, err
	}
	return load(path, info, opts, func(s *State) error {
		return s.DoFile(ctx, path)
	})
}

// LoadString loads a script from source. name identifies it in logs.
func LoadString(ctx context.Context, name, source string, info Info, opts ...Option) (*Script, error) {
	return load(name, info, opts, func(s *State) error {
		return s.DoString(ctx, source)
	})
}

func load(name string, info Info, opts []Option, run func(*State) error) (*Script, error) {
	o := options{timeout: DefaultTimeout, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	state, err := NewState(WithTimeout(o.timeout))
	if err != nil {
		return nil, err
	}

	sc := &Script{
		state:  state,
		logger: o.logger.With(zap.String("script", name)),
		source: name,
	}
	sc.installAPI(info, o.host)

	if err := run(state); err != nil {
		_ = state.Close()
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return sc, nil
}

// installAPI registers the npp module and routes print to the log.
func (sc *Script) installAPI(info Info, host Host) {
	funcs := map[string]lua.LGFunction{
		"log": func(L *lua.LState) int {
			sc.logger.Info(L.CheckString(1))
			return 0
		},
	}
	if host != nil {
		maps.Copy(funcs, hostFuncs(host))
	}

	sc.state.RegisterModule("npp", funcs,
		map[string]lua.LValue{
			"name":    lua.LString(info.Name),
			"version": lua.LString(info.Version),
		},
	)

	sc.state.RegisterFunc("print", func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		sc.logger.Debug(strings.Join(parts, "\t"))
		return 0
	})
}

// hostFuncs wraps host queries. Failures follow the Lua convention of
// returning nil and a message.
func hostFuncs(h Host) map[string]lua.LGFunction {
	fail := func(L *lua.LState, err error) int {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	return map[string]lua.LGFunction{
		"current_buffer": func(L *lua.LState) int {
			id, err := h.CurrentBuffer()
			if err != nil {
				return fail(L, err)
			}
			L.Push(lua.LNumber(id))
			return 1
		},
		"buffer_path": func(L *lua.LState) int {
			path, err := h.BufferPath(npp.BufferID(L.CheckInt64(1)))
			if err != nil {
				return fail(L, err)
			}
			L.Push(lua.LString(path))
			return 1
		},
		"config_dir": func(L *lua.LState) int {
			dir, err := h.ConfigDir()
			if err != nil {
				return fail(L, err)
			}
			L.Push(lua.LString(dir))
			return 1
		},
		"check_command": func(L *lua.LState) int {
			if err := h.CheckCommand(L.CheckInt(1)-1, L.ToBool(2)); err != nil {
				return fail(L, err)
			}
			L.Push(lua.LTrue)
			return 1
		},
	}
}

// Source returns the path or name the script was loaded from.
func (sc *Script) Source() string {
	return sc.source
}

// Defined returns the hooks the script defines.
func (sc *Script) Defined() []string {
	var out []string
	for _, h := range Hooks {
		if sc.state.HasFunction(h) {
			out = append(out, h)
		}
	}
	return out
}

func (sc *Script) call(ctx context.Context, hook string, args ...lua.LValue) (lua.LValue, error) {
	ret, _, err := sc.state.Call(ctx, hook, args...)
	if err != nil {
		return lua.LNil, fmt.Errorf("%s: %w", hook, err)
	}
	return ret, nil
}

// Ready calls on_ready.
func (sc *Script) Ready(ctx context.Context) error {
	_, err := sc.call(ctx, HookReady)
	return err
}

// FileOpened calls on_file_opened(id, path).
func (sc *Script) FileOpened(ctx context.Context, id npp.BufferID, path string) error {
	_, err := sc.call(ctx, HookFileOpened, lua.LNumber(id), lua.LString(path))
	return err
}

// FileClosed calls on_file_closed(id).
func (sc *Script) FileClosed(ctx context.Context, id npp.BufferID) error {
	_, err := sc.call(ctx, HookFileClosed, lua.LNumber(id))
	return err
}

// BufferActivated calls on_buffer_activated(id, path).
func (sc *Script) BufferActivated(ctx context.Context, id npp.BufferID, path string) error {
	_, err := sc.call(ctx, HookBufferActivated, lua.LNumber(id), lua.LString(path))
	return err
}

// Shutdown calls on_shutdown.
func (sc *Script) Shutdown(ctx context.Context) error {
	_, err := sc.call(ctx, HookShutdown)
	return err
}

// PluginMessage calls on_plugin_message(internal_msg, source) and returns
// its numeric result, or 0 for anything else.
func (sc *Script) PluginMessage(ctx context.Context, internalMsg int32, source string) (uintptr, error) {
	ret, err := sc.call(ctx, HookPluginMessage, lua.LNumber(internalMsg), lua.LString(source))
	if err != nil {
		return 0, err
	}
	if n, ok := ret.(lua.LNumber); ok && n > 0 {
		return uintptr(n), nil
	}
	return 0, nil
}

// Close releases the Lua state.
func (sc *Script) Close() error {
	return sc.state.Close()
}
