package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
)

// PrettyHandler writes one colored line per record followed by its
// attributes as indented JSON.
type PrettyHandler struct {
	opts  slog.HandlerOptions
	w     io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{w: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		fields[key] = attrValue(a.Value)
		return true
	})

	var body []byte
	if len(fields) > 0 {
		var err error
		if body, err = json.MarshalIndent(fields, "", "  "); err != nil {
			return err
		}
	}

	line := fmt.Sprintf("[%s] %s %s %s\n",
		r.Time.Format("15:04:05.000"),
		levelColor(r.Level)(r.Level.String()+":"),
		color.CyanString(r.Message),
		color.WhiteString(string(body)),
	)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line)
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.group = name
	return &next
}

func attrValue(v slog.Value) any {
	if err, ok := v.Any().(error); ok {
		return err.Error()
	}
	return v.Any()
}

func levelColor(level slog.Level) func(format string, a ...any) string {
	switch {
	case level >= slog.LevelError:
		return color.RedString
	case level >= slog.LevelWarn:
		return color.YellowString
	case level >= slog.LevelInfo:
		return color.BlueString
	default:
		return color.MagentaString
	}
}
