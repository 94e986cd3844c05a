package commands

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/asclient/asclient/internal/cli/errors"
	"github.com/asclient/asclient/internal/cli/inference"
	"github.com/asclient/asclient/internal/cli/output"
	"github.com/asclient/asclient/internal/config"
	"github.com/asclient/asclient/internal/domain/protocol"
	"github.com/asclient/asclient/internal/logger"
	"github.com/spf13/cobra"
)

// ExitError ends a command with a non-zero exit code after its output has
// already been written.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

type options struct {
	cfgFile string
	strict  bool
	json    bool
	logDir  string
	noColor bool
	verbose bool
}

// app is the state shared by every command of one invocation.
type app struct {
	opts     options
	store    *config.Store
	settings config.Settings
	log      *logger.Logger
	format   *output.Formatter
	// stopMirror ends the --verbose copy of the log on stderr.
	stopMirror func()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asclient",
		Short: "Decode, check and re-encode analysis server protocol messages",
		Long: `asclient reads analysis server protocol messages recorded as JSON, checks
them against the client's data model, and writes them back in canonical form.
Refactoring options and feedback are decoded with the shape their kind selects.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.opts.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/asclient/config.yaml)")
	pf.BoolVar(&a.opts.strict, "strict", false, "reject values newer than this client instead of warning")
	pf.BoolVar(&a.opts.json, "json", false, "output in JSON format")
	pf.StringVar(&a.opts.logDir, "log-dir", "", "directory for the log file")
	pf.BoolVar(&a.opts.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "copy log entries to stderr")

	rootCmd.AddCommand(
		newCheckCmd(a),
		newVocabCmd(a),
		newValidateCmd(a),
		newRoundtripCmd(a),
		newFrameCmd(a),
		newConfigCmd(a),
		newScenarioCmd(a),
	)
	return rootCmd
}

// setup resolves settings from defaults, the config file, the environment and
// flags, in increasing order of precedence.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(".env"); err != nil {
		return err
	}

	path := a.opts.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	a.store = config.NewStore(path)

	settings, err := a.store.Load()
	if err != nil {
		return err
	}
	if settings, err = config.ApplyEnv(settings); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		settings.Strict = a.opts.strict
	}
	if a.opts.json {
		settings.Format = config.FormatJSON
	}
	if flags.Changed("log-dir") {
		settings.LogDir = a.opts.logDir
	}
	if a.opts.noColor {
		settings.Color = false
	}
	a.settings = settings

	a.log = logger.New(nil)
	if a.opts.verbose {
		a.stopMirror = a.log.Mirror(cmd.ErrOrStderr())
	}
	if settings.LogDir != "" {
		if err := a.log.Open(settings.LogDir); err != nil {
			return err
		}
	}
	a.format = output.NewFormatter(cmd.OutOrStdout(), output.OutputFormat(settings.Format), settings.Color)
	a.log.Debugf("%s: settings from %s", cmd.CommandPath(), path)
	return nil
}

// decodeOptions turns the strict setting into decode options and logs every
// tolerated unrecognized value.
func (a *app) decodeOptions() []protocol.DecodeOption {
	opts := []protocol.DecodeOption{
		protocol.OnUnrecognized(func(u protocol.UnrecognizedKind) {
			a.log.Warnf("%s", u)
		}),
	}
	if a.settings.Strict {
		opts = append(opts, protocol.Strict())
	}
	return opts
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)

	var commands []string
	for _, c := range rootCmd.Commands() {
		commands = append(commands, c.Name())
		commands = append(commands, c.Aliases...)
	}
	commands = append(commands, "help", "completion")
	if inferred, rest := inference.InferCommand(args, commands); inferred != "" {
		args = append([]string{inferred}, rest...)
	}

	// The --verbose mirror writes from its own goroutine.
	stderr = &syncWriter{w: stderr}

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if a.stopMirror != nil {
		a.stopMirror()
	}
	if a.log != nil {
		defer a.log.Close()
	}
	if err == nil {
		return 0
	}
	var exit *ExitError
	if stderrors.As(err, &exit) {
		return exit.Code
	}

	formatter := a.format
	if formatter == nil {
		formatter = output.NewFormatter(stderr, output.FormatText, false)
	}
	if a.log != nil {
		a.log.Errorf("%v", err)
	}
	fmt.Fprintln(stderr, formatter.FormatError(errors.Classify(err)))
	return 1
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}
