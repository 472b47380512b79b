package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quiz-cli/internal/app"
	"quiz-cli/internal/config"
	"quiz-cli/internal/console"
	"quiz-cli/internal/logger"
)

type options struct {
	configPath string
	driver     string
	logLevel   string
	noColor    bool
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "quiz",
		Short:        "Interactive question/answer quiz for the terminal",
		Long:         "quiz keeps a list of questions and answers and lets you list, add, edit, delete and test them,\nor play through all of them in random order.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			return runShell(cmd.Context(), env)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&opts.driver, "driver", os.Getenv("QUIZ_DRIVER"), "storage driver: memory, file, redis, postgres or sqlite")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "diagnostic log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newOneShotCmd(opts, "list", "List the existing quizzes", cobra.NoArgs),
		newOneShotCmd(opts, "show <id>", "Show the question and answer of a quiz", cobra.MaximumNArgs(1)),
		newOneShotCmd(opts, "add", "Add a new quiz interactively", cobra.NoArgs),
		newOneShotCmd(opts, "delete <id>", "Delete a quiz", cobra.MaximumNArgs(1)),
		newOneShotCmd(opts, "edit <id>", "Edit a quiz interactively", cobra.MaximumNArgs(1)),
		newOneShotCmd(opts, "test <id>", "Answer one quiz", cobra.MaximumNArgs(1)),
		newOneShotCmd(opts, "play", "Answer every quiz in random order until a mistake", cobra.NoArgs),
		newOneShotCmd(opts, "credits", "Show the credits", cobra.NoArgs),
		NewMigrateCmd(opts),
	)
	return cmd
}

// newOneShotCmd runs a single shell command and exits.
func newOneShotCmd(opts *options, use, short string, args cobra.PositionalArgs) *cobra.Command {
	name := strings.Fields(use)[0]
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			_, err = env.dispatcher.Exec(cmd.Context(), strings.Join(append([]string{name}, args...), " "))
			return err
		},
	}
}

// environment is everything one invocation needs, wired from config.
type environment struct {
	console    *console.Console
	prompt     *LinePrompt
	dispatcher *Dispatcher
	close      func()
}

func (o *options) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.driver != "" {
		cfg.Storage.Driver = o.driver
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.noColor {
		off := false
		cfg.Console.Color = &off
	}
	return cfg, nil
}

func (o *options) logger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	return logger.New(cmd.ErrOrStderr(), cfg.LogLevel(), cfg.ColorEnabled())
}

func (o *options) open(cmd *cobra.Command) (*environment, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}
	log := o.logger(cmd, cfg)
	ctx := cmd.Context()

	backend, closeBackend, err := openRecordStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	store, err := app.OpenQuizStore(ctx, backend, log)
	if err != nil {
		closeBackend()
		return nil, err
	}

	out := console.New(cmd.OutOrStdout(), cfg.ColorEnabled())
	prompt := NewLinePrompt(cmd.InOrStdin(), out)
	return &environment{
		console:    out,
		prompt:     prompt,
		dispatcher: NewDispatcher(store, out, prompt, log),
		close:      closeBackend,
	}, nil
}
