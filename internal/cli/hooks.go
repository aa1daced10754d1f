package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and HTTP events to a logger at debug level.
// main registers it with the observability package.
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) OnLoadStart(_ context.Context, source string) {
	h.Logger.Debug("load started", "source", source)
}

func (h LogHooks) OnLoadComplete(_ context.Context, source string, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("load failed", "source", source, "err", err)
		return
	}
	h.Logger.Debug("load complete", "source", source, "vertices", vertices, "edges", edges, "duration", d)
}

func (h LogHooks) OnColorStart(_ context.Context, algorithm string, vertices int) {
	h.Logger.Debug("color started", "algorithm", algorithm, "vertices", vertices)
}

func (h LogHooks) OnColorComplete(_ context.Context, algorithm string, colors int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("color failed", "algorithm", algorithm, "err", err)
		return
	}
	h.Logger.Debug("color complete", "algorithm", algorithm, "colors", colors, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, format string) {
	h.Logger.Debug("render started", "format", format)
}

func (h LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.Logger.Debug("render complete", "format", format, "bytes", size, "duration", d)
}

func (h LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request started", "method", method, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Info("request", "method", method, "path", path, "status", status, "duration", d)
}
