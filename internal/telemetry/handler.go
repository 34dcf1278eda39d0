// Package telemetry provides the process log sink: a slog.Handler that writes
// one human-readable line per record.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DefaultTimeFormat is the timestamp layout used when none is configured.
const DefaultTimeFormat = "2006-01-02 15:04:05.000"

var (
	errorColor = lipgloss.Color("#EF4444") // Red
	warnColor  = lipgloss.Color("#F59E0B") // Amber
	infoColor  = lipgloss.Color("#10B981") // Green
	debugColor = lipgloss.Color("#6B7280") // Darker gray
)

// Handler writes records as: [timestamp] LEVEL message key=value ...
type Handler struct {
	mu         *sync.Mutex
	w          io.Writer
	level      slog.Leveler
	color      bool
	timeFormat string
	renderer   *lipgloss.Renderer
	attrs      []slog.Attr
	group      string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLevel sets the minimum level written.
func WithLevel(level slog.Leveler) HandlerOption {
	return func(h *Handler) {
		h.level = level
	}
}

// WithColor enables coloured severity labels.
func WithColor(enabled bool) HandlerOption {
	return func(h *Handler) {
		h.color = enabled
	}
}

// WithTimeFormat sets a custom timestamp layout.
func WithTimeFormat(layout string) HandlerOption {
	return func(h *Handler) {
		if layout != "" {
			h.timeFormat = layout
		}
	}
}

// NewHandler creates a handler writing to w.
func NewHandler(w io.Writer, opts ...HandlerOption) *Handler {
	h := &Handler{
		mu:         &sync.Mutex{},
		w:          w,
		level:      slog.LevelInfo,
		timeFormat: DefaultTimeFormat,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.color {
		h.renderer = lipgloss.NewRenderer(w)
		// The writer may not be a terminal when colour is forced.
		h.renderer.SetColorProfile(termenv.ANSI256)
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString("[")
	sb.WriteString(r.Time.Format(h.timeFormat))
	sb.WriteString("] ")
	sb.WriteString(h.levelLabel(r.Level))
	sb.WriteString(" ")
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		clone.group = h.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// levelLabel returns the fixed-width severity label, coloured when enabled.
func (h *Handler) levelLabel(level slog.Level) string {
	label := fmt.Sprintf("%-5s", level.String())
	if !h.color {
		return label
	}

	var c lipgloss.Color
	switch {
	case level >= slog.LevelError:
		c = errorColor
	case level >= slog.LevelWarn:
		c = warnColor
	case level >= slog.LevelInfo:
		c = infoColor
	default:
		c = debugColor
	}
	return h.renderer.NewStyle().Foreground(c).Bold(level >= slog.LevelWarn).Render(label)
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, key, ga)
		}
		return
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\"=") {
		val = fmt.Sprintf("%q", val)
	}
	fmt.Fprintf(sb, " %s=%s", key, val)
}
