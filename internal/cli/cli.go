// Package cli implements the mvngraph command-line interface.
//
// The root command resolves command-line input into a validated
// configuration and prints it in a fixed key/value layout. All commands
// support --verbose (-v) for debug-level logging; loggers are passed through
// context.Context.
package cli

import (
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mvngraph/mvngraph/pkg/buildinfo"
	"github.com/mvngraph/mvngraph/pkg/config"
)

// NewRootCommand builds the mvngraph root command with all flags and
// subcommands registered.
func NewRootCommand() *cobra.Command {
	var (
		verbose      bool
		defaultsPath string
	)
	flags := config.NewFlags()

	root := &cobra.Command{
		Use:   "mvngraph",
		Short: "mvngraph inspects Maven package dependency graphs",
		Long: `mvngraph is a CLI tool for fetching and visualizing Maven package
dependency graphs. This stage resolves and prints the invocation
configuration; graph traversal and rendering build on top of it.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, flags, defaultsPath)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVar(&defaultsPath, "config", "", "defaults file (TOML)")
	flags.AddTo(root.Flags())

	root.AddCommand(newCompletionCmd())

	return root
}

// runResolve merges file defaults into the parsed flags, validates them and
// prints the resolved configuration.
func runResolve(cmd *cobra.Command, flags *config.Flags, defaultsPath string) error {
	logger := loggerFromContext(cmd.Context())

	path := defaultsPath
	if path == "" {
		if p, err := config.DefaultsPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		defaults, err := config.LoadDefaults(path)
		switch {
		case err == nil:
			logger.Debugf("Applying defaults from %s", path)
			flags.ApplyDefaults(defaults)
		case defaultsPath == "" && errors.Is(err, os.ErrNotExist):
			// No implicit defaults file; nothing to apply.
		default:
			// An explicit --config must exist and parse.
			return err
		}
	}

	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}
	logger.Debugf("Configuration resolved for %s", cfg.Package)

	printConfig(cmd.OutOrStdout(), cfg)
	return nil
}
