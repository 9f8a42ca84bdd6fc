// Package cli implements the addressbook command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/addressbook/internal/config"
	"github.com/mesh-intelligence/addressbook/internal/logger"
	"github.com/mesh-intelligence/addressbook/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	output    string
	logLevel  string
	color     bool
}

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	flags     rootFlags
	configDir string
	cfg       config.Config
	log       *zap.SugaredLogger
}

// systemError marks failures outside the user's control (I/O, logger
// setup) so Execute can pick the exit code.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}

// NewRootCmd creates the top-level "addressbook" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:   "addressbook",
		Short: "An in-memory contact directory",
		Long: "addressbook keeps named contacts with validated ten-digit phone numbers.\n" +
			"Records live only for the duration of one command; run a script to\n" +
			"add, edit, find and delete contacts in a single session.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	def := config.Default()
	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVarP(&a.flags.output, "output", "o", def.Output, "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&a.flags.color, "color", def.Color, "colorize text output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newRunCmd(a))

	return root
}

// setup resolves the config directory, loads configuration and builds the
// logger. The version command needs none of it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	cfg, err := config.Load(dir, cmd.Flags())
	if err != nil {
		if errors.Is(err, config.ErrOutputUnknown) || errors.Is(err, config.ErrLogLevelUnknown) {
			return err
		}
		return sysErr(err)
	}
	a.cfg = cfg

	log, err := logger.New(cfg.LogLevel, cfg.Color)
	if err != nil {
		return sysErr(err)
	}
	a.log = log.Named("addressbook")
	a.log.Debugw("config loaded", "dir", dir, "output", cfg.Output)
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}

	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(os.Stderr, red("Error:"), err)
	return exitCode(err)
}

func exitCode(err error) int {
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
