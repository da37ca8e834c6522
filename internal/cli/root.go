// Package cli provides the command-line interface for colormine.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormine/internal/colour"
	"github.com/jmylchreest/colormine/internal/config"
	"github.com/jmylchreest/colormine/internal/history"
	"github.com/jmylchreest/colormine/internal/version"
)

// app carries the state shared by every subcommand once the root has resolved
// configuration and logging.
type app struct {
	config config.Config
	logger hclog.Logger

	verbose     bool
	quiet       bool
	historyFile string
	center      centerValue
}

// NewRootCmd builds the colormine command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "colormine",
		Short: "An HSV colour wheel picker",
		Long: `colormine is an HSV colour wheel picker.

Run "colormine gui" for the interactive wheel, or use the headless commands to
render wheels, convert colours, map wheel coordinates, build harmonies, and
manage the colour history and palettes from scripts.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&a.historyFile, "history-file", "", "history store file (default: user config dir)")
	flags.Var(&a.center, "center", "wheel centre mode (white, black)")
	flags.BoolVar(&colour.DisableColourOutput, "no-color", false, "disable ANSI colour previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRenderCmd(a),
		newConvertCmd(a),
		newPickCmd(a),
		newHarmonyCmd(a),
		newHistoryCmd(a),
		newPaletteCmd(a),
		newSampleCmd(a),
		newGUICmd(a),
	)

	return rootCmd
}

// setup resolves configuration from the environment, applies flag overrides and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.historyFile != "" {
		cfg.HistoryFile = a.historyFile
	}
	if cmd.Flags().Changed("center") {
		cfg.Center = a.center.mode
	}

	level := cfg.LogLevel
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	a.config = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug("configuration resolved",
		"center", cfg.Center.String(),
		"size", cfg.Size,
		"history_file", cfg.HistoryFile,
		"sampler", cfg.Sampler,
	)
	return nil
}

func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colormine",
		Output: w,
		Level:  level,
	})
}

// openHistory loads the history from the configured file store.
func (a *app) openHistory() (*history.History, error) {
	path, err := a.config.HistoryPath()
	if err != nil {
		return nil, err
	}
	logger := a.logger.Named("history")
	logger.Debug("opening history store", "path", path)
	return history.Load(history.NewFileStore(path), logger), nil
}

// printf writes to the command's stdout unless --quiet is set.
func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// centerMode returns the resolved centre mode.
func (a *app) centerMode() colour.CenterMode {
	return a.config.Center
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
