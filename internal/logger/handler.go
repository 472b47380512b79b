// Package logger provides the diagnostic slog logger, colored by level.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// New returns a logger writing colored records at or above level to out.
func New(out io.Writer, level slog.Level, colored bool) *slog.Logger {
	return slog.New(NewHandler(out, level, colored))
}

// Handler prints one line per record: time, level, message, attributes.
type Handler struct {
	l       *log.Logger
	level   slog.Level
	colored bool
	attrs   []slog.Attr
	group   string
}

func NewHandler(out io.Writer, level slog.Level, colored bool) *Handler {
	return &Handler{
		l:       log.New(out, "", 0),
		level:   level,
		colored: colored,
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = h.paint(color.FgMagenta, level)
	case slog.LevelInfo:
		level = h.paint(color.FgHiBlue, level)
	case slog.LevelWarn:
		level = h.paint(color.FgYellow, level)
	case slog.LevelError:
		level = h.paint(color.FgRed, level)
	}

	var attrs strings.Builder
	write := func(a slog.Attr) {
		attrs.WriteString(h.paint(color.FgGreen, a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " ")
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(h.qualify(a))
		return true
	})

	h.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		strings.TrimSpace(attrs.String()),
	)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.qualify(a))
	}
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func (h *Handler) paint(attr color.Attribute, s string) string {
	if !h.colored {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
