// Package console renders quiz output: plain lines, colored fragments, error
// lines and big banners for results and scores.
package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Console writes user-facing output. It is not safe for concurrent use.
type Console struct {
	out     io.Writer
	colored bool
}

func New(out io.Writer, colored bool) *Console {
	return &Console{out: out, colored: colored}
}

// Writer exposes the underlying output, e.g. for prompts.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Log prints one line.
func (c *Console) Log(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Error prints msg as an error line.
func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "%s: %s\n", c.Colorize("Error", "red"), c.Colorize(c.Colorize(msg, "red"), "bgYellowBright"))
}

// Colorize wraps text in the named color. Unknown names leave text unchanged.
func (c *Console) Colorize(text any, name string) string {
	s := fmt.Sprint(text)
	if !c.colored {
		return s
	}
	attr, ok := colors[name]
	if !ok {
		return s
	}
	col := color.New(attr)
	col.EnableColor()
	return col.Sprint(s)
}

// Big prints text as a framed banner.
func (c *Console) Big(text any, name string) {
	s := strings.ToUpper(fmt.Sprint(text))
	spaced := strings.Join(strings.Split(s, ""), " ")
	width := utf8.RuneCountInString(spaced) + 4
	border := "+" + strings.Repeat("=", width) + "+"
	blank := "|" + strings.Repeat(" ", width) + "|"
	body := "|  " + spaced + "  |"

	for _, line := range []string{border, blank, body, blank, border} {
		fmt.Fprintln(c.out, c.bold(c.Colorize(line, name)))
	}
}

func (c *Console) bold(s string) string {
	if !c.colored {
		return s
	}
	b := color.New(color.Bold)
	b.EnableColor()
	return b.Sprint(s)
}

var colors = map[string]color.Attribute{
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bgYellowBright": color.BgHiYellow,
}
