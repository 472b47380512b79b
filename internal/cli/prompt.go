package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quiz-cli/internal/console"
)

// LinePrompt reads answers line by line from one input. The shell and every
// nested question share it so no buffered input is lost between them.
type LinePrompt struct {
	in      *bufio.Reader
	console *console.Console
}

func NewLinePrompt(in io.Reader, c *console.Console) *LinePrompt {
	return &LinePrompt{in: bufio.NewReader(in), console: c}
}

// Ask writes prompt in red and returns the next line without its line ending.
// io.EOF is returned once the input is exhausted.
func (p *LinePrompt) Ask(ctx context.Context, prompt string) (string, error) {
	return p.read(ctx, p.console.Colorize(prompt, "red"))
}

// AskDefault is Ask with the current value offered; an empty reply keeps it.
func (p *LinePrompt) AskDefault(ctx context.Context, prompt, current string) (string, error) {
	line, err := p.read(ctx, fmt.Sprintf("%s[%s] ", p.console.Colorize(prompt, "red"), current))
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}
	return line, nil
}

// Line reads a shell command line after printing the shell prompt.
func (p *LinePrompt) Line(ctx context.Context) (string, error) {
	return p.read(ctx, p.console.Colorize("quiz > ", "blue"))
}

func (p *LinePrompt) read(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.console.Writer(), prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
