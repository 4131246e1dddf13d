package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/resend-cli/rusend/internal/config"
	"github.com/resend-cli/rusend/internal/output"
)

type App struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	env  *config.Env
	dial dialFunc
}

type globalOptions struct {
	output  string
	json    bool
	config  string
	verbose bool

	mode   output.Mode
	log    zerolog.Logger
	result any
}

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func Run(args []string, in io.Reader, out io.Writer, errw io.Writer) int {
	a := App{Stdout: out, Stderr: errw, Stdin: in, dial: dialResend}
	return a.run(args)
}

func (a App) run(args []string) int {
	start := time.Now()
	requestID := uuid.NewString()
	g := &globalOptions{mode: output.ModeHuman, log: zerolog.Nop()}

	root := a.newRootCommand(g)
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		return a.exitWithError(err, g.mode, requestID, start)
	}
	if g.result != nil {
		if err := output.PrintSuccess(a.Stdout, g.mode, g.result, requestID, start); err != nil {
			return a.exitWithError(err, g.mode, requestID, start)
		}
	}
	return 0
}

func (a App) exitWithError(err error, mode output.Mode, requestID string, start time.Time) int {
	ce, ok := asCLIError(err)
	if !ok {
		ce = cliError{exit: 1, code: "runtime_error", msg: err.Error(), err: err}
	}
	classified := classifyCLIError(ce.code, ce.exit)
	_ = output.PrintError(a.Stderr, mode, output.ErrBody{
		Code:      ce.code,
		Message:   ce.msg,
		Hint:      ce.hint,
		Category:  classified.Category,
		Retryable: classified.Retryable,
	}, requestID, start)
	return ce.exit
}

func asCLIError(err error) (cliError, bool) {
	var ce cliError
	if errors.As(err, &ce) {
		return ce, true
	}
	// cobra reports unknown commands as plain errors
	if strings.HasPrefix(err.Error(), "unknown command") {
		return usageError(err).(cliError), true
	}
	return cliError{}, false
}

func (a App) newRootCommand(g *globalOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "rusend",
		Short:         "A small user-friendly CLI for resend.com",
		Version:       fmt.Sprintf("%s (%s) %s", Version, Commit, Date),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(g)
		},
	}
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&g.output, "output", "o", string(output.ModeHuman), "output format: human, json or yaml")
	flags.BoolVar(&g.json, "json", false, "shorthand for --output json")
	flags.StringVar(&g.config, "config", "", "path to the credentials file")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newConfigCommand(g),
		a.newSendCommand(g),
		a.newBatchCommand(g),
		a.newListCommand(g),
		a.newGetCommand(g),
		a.newUpdateCommand(g),
		a.newCancelCommand(g),
		a.newReceivedListCommand(g),
		a.newReceivedGetCommand(g),
		a.newCompletionsCommand(),
	)
	return root
}

func (a App) setup(g *globalOptions) error {
	mode, err := output.ParseMode(g.output)
	if err != nil {
		return usageError(err)
	}
	if g.json {
		mode = output.ModeJSON
	}
	g.mode = mode

	level := zerolog.WarnLevel
	if g.verbose {
		level = zerolog.DebugLevel
	}
	g.log = zerolog.New(zerolog.ConsoleWriter{
		Out:        a.Stderr,
		NoColor:    !isTerminal(a.Stderr),
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()
	return nil
}

func (a App) loadEnv(g *globalOptions) (config.Env, error) {
	if a.env != nil {
		return *a.env, nil
	}
	env, err := config.LoadEnv()
	if err != nil {
		return config.Env{}, cliError{exit: 3, code: "config_error", msg: err.Error(), err: err}
	}
	if env.Debug {
		g.log = g.log.Level(zerolog.DebugLevel)
	}
	return env, nil
}

type clientHandler func(cmd *cobra.Command, args []string, cfg config.AppConfig, api emailService) (any, error)

func (a App) withClient(g *globalOptions, fn clientHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, _, cfg, err := a.loadConfig(g)
		if err != nil {
			return err
		}
		cfg = env.Apply(cfg)
		if !cfg.HasKey() {
			return cliError{exit: 3, code: "config_missing", msg: "API key is not configured", hint: "Run rusend config first"}
		}
		res, err := fn(cmd, args, cfg, a.dial(cfg.APIKey, env, g.log))
		if err != nil {
			return err
		}
		g.result = res
		return nil
	}
}

func (a App) loadConfig(g *globalOptions) (config.Env, *config.Store, config.AppConfig, error) {
	env, err := a.loadEnv(g)
	if err != nil {
		return config.Env{}, nil, config.AppConfig{}, err
	}
	path, err := env.ResolvePath(g.config)
	if err != nil {
		return config.Env{}, nil, config.AppConfig{}, cliError{exit: 3, code: "config_error", msg: err.Error(), err: err}
	}
	store := config.New(path, g.log)
	cfg, err := store.Load()
	if err != nil {
		return env, store, config.AppConfig{}, cliError{exit: 3, code: "config_error", msg: "load config: " + err.Error(), hint: "Fix or remove " + store.Path(), err: err}
	}
	return env, store, cfg, nil
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
