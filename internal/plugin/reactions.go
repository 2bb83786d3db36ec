package plugin

import (
	"context"
	"unsafe"

	"go.uber.org/zap"

	"github.com/dshills/nppbridge/internal/notify"
	"github.com/dshills/nppbridge/internal/npp"
	"github.com/dshills/nppbridge/internal/relay"
	"github.com/dshills/nppbridge/internal/wide"
)

// Session is what the extension knows about the editor session.
type Session struct {
	// Ready is set by NPPN_READY and cleared by NPPN_SHUTDOWN.
	Ready bool
	// ActiveBuffer is the last activated buffer, or 0.
	ActiveBuffer npp.BufferID
	// OpenFiles counts files opened minus files closed since load. It
	// never goes below zero.
	OpenFiles int
}

// registerReactions fills the notification slots and message handlers,
// then seals the dispatcher.
func (p *Plugin) registerReactions() {
	reactions := []struct {
		code npp.NotificationCode
		name string
		fn   notify.Reaction
	}{
		{npp.NPPN_READY, "ready", p.onReady},
		{npp.NPPN_FILEOPENED, "file-opened", p.onFileOpened},
		{npp.NPPN_FILECLOSED, "file-closed", p.onFileClosed},
		{npp.NPPN_BUFFERACTIVATED, "buffer-activated", p.onBufferActivated},
		{npp.NPPN_SHUTDOWN, "shutdown", p.onShutdown},
	}
	for _, r := range reactions {
		if err := p.notify.On(r.code, r.name, r.fn); err != nil {
			p.logger.Error("registering reaction", zap.Error(err))
		}
	}
	p.notify.Seal()

	if err := p.relay.Handle(npp.NPPM_MSGTOPLUGIN, p.onPluginMessage); err != nil {
		p.logger.Error("registering message handler", zap.Error(err))
	}
}

func (p *Plugin) onReady(ctx context.Context, _ notify.Event) error {
	p.state.Ready = true
	if id, err := p.client.CurrentBufferID(); err == nil {
		p.state.ActiveBuffer = id
	}
	p.logger.Info("host ready", zap.Uintptr("buffer", uintptr(p.state.ActiveBuffer)))

	if p.script == nil {
		return nil
	}
	return p.script.Ready(ctx)
}

func (p *Plugin) onFileOpened(ctx context.Context, ev notify.Event) error {
	p.state.OpenFiles++
	if p.script == nil {
		return nil
	}
	return p.script.FileOpened(ctx, ev.BufferID, p.bufferPath(ev.BufferID))
}

func (p *Plugin) onFileClosed(ctx context.Context, ev notify.Event) error {
	if p.state.OpenFiles > 0 {
		p.state.OpenFiles--
	}
	if p.state.ActiveBuffer == ev.BufferID {
		p.state.ActiveBuffer = 0
	}
	if p.script == nil {
		return nil
	}
	return p.script.FileClosed(ctx, ev.BufferID)
}

func (p *Plugin) onBufferActivated(ctx context.Context, ev notify.Event) error {
	p.state.ActiveBuffer = ev.BufferID
	if p.script == nil {
		return nil
	}
	return p.script.BufferActivated(ctx, ev.BufferID, p.bufferPath(ev.BufferID))
}

// onShutdown runs the script's last hook and releases it, then flushes
// the log. The command table and name stay allocated for the host.
func (p *Plugin) onShutdown(ctx context.Context, _ notify.Event) error {
	p.state.Ready = false

	var err error
	if p.script != nil {
		err = p.script.Shutdown(ctx)
		if cerr := p.script.Close(); cerr != nil && err == nil {
			err = cerr
		}
		p.script = nil
	}

	stats := p.notify.Stats()
	p.logger.Info("shutdown",
		zap.Uint64("notifications", stats.Runs),
		zap.Uint64("failed", stats.Failed+stats.Panicked),
		zap.Uint64("ignored", p.notify.Ignored()),
	)
	if err != nil {
		p.logger.Warn("script shutdown", zap.Error(err))
	}
	_ = p.logs.Close()
	return nil
}

// onPluginMessage answers NPPM_MSGTOPLUGIN, whose lParam points at a
// CommunicationInfo owned by the sender.
func (p *Plugin) onPluginMessage(ctx context.Context, msg relay.Message) (uintptr, error) {
	if p.script == nil || msg.LParam == 0 {
		return 0, nil
	}
	info := (*npp.CommunicationInfo)(unsafe.Pointer(msg.LParam))
	return p.script.PluginMessage(ctx, info.InternalMsg, wide.FromPtr(info.SrcModuleName))
}

// bufferPath asks the host for a buffer's path; failures give "".
func (p *Plugin) bufferPath(id npp.BufferID) string {
	path, err := p.client.FullPathFromBufferID(id)
	if err != nil {
		p.logger.Debug("buffer path", zap.Uintptr("buffer", uintptr(id)), zap.Error(err))
	}
	return path
}
