package cli

import (
	"context"
	"errors"
	"io"
)

// runShell reads command lines until quit or end of input.
func runShell(ctx context.Context, env *environment) error {
	env.console.Log("%s", env.console.Colorize("Quiz: escriba 'help' para ver los comandos.", "green"))
	for {
		line, err := env.prompt.Line(ctx)
		if errors.Is(err, io.EOF) {
			env.console.Log("")
			break
		}
		if err != nil {
			return err
		}

		quit, err := env.dispatcher.Exec(ctx, line)
		if errors.Is(err, io.EOF) {
			env.console.Log("")
			break
		}
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	env.console.Log("Adiós!")
	return nil
}
