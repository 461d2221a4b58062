// Package cli implements the golint-quality command line.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spechtlabs/golint-quality/binding"
	"github.com/spechtlabs/golint-quality/internal/config"
	"github.com/spechtlabs/golint-quality/internal/logging"
	"github.com/spechtlabs/golint-quality/internal/project"
	"github.com/spechtlabs/golint-quality/internal/version"
	"github.com/spechtlabs/golint-quality/quality"
	"github.com/spechtlabs/golint-quality/tools"
)

// EnvPrefix prefixes environment overrides of the flags, e.g.
// GOLINT_QUALITY_LOG_LEVEL.
const EnvPrefix = "GOLINT_QUALITY"

// NewRootCommand builds the command tree with its own flag and environment
// state.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "golint-quality [tasks...]",
		Short: "Run static analysis bound to the check task",
		Long: `golint-quality binds bugscan, style and lint tasks for the configured
source sets to the check task and runs the requested tasks (check by default).

Configuration is read from .golint-quality.yaml in the project directory or
one of its parents.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTasks(cmd, v, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is "+config.ConfigFileName+" in --dir or a parent)")
	flags.StringP("dir", "d", ".", "project directory")
	flags.String("log-level", logging.LevelWarn, "log level: DEBUG, INFO, WARN, ERROR")
	flags.String("log-format", logging.FormatText, "log format: text or json")
	flags.Bool("no-color", false, "disable colored output")
	_ = v.BindPFlags(flags)

	root.Flags().Bool("continue", false, "keep running independent tasks after a failure")
	_ = v.BindPFlag("continue", root.Flags().Lookup("continue"))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newTasksCommand(v), newVersionCommand())
	return root
}

// Execute runs the root command until ctx is done.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func runTasks(cmd *cobra.Command, v *viper.Viper, args []string) error {
	proj, err := setup(cmd, v)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{binding.CheckTaskName}
	}
	return proj.Run(cmd.Context(), project.RunOptions{Continue: v.GetBool("continue")}, args...)
}

// setup loads the configuration and returns the project with the plugin
// applied.
func setup(cmd *cobra.Command, v *viper.Viper) (*project.Project, error) {
	dir, err := filepath.Abs(v.GetString("dir"))
	if err != nil {
		return nil, fmt.Errorf("resolve project directory: %w", err)
	}

	var cfg *config.Config
	if path := v.GetString("config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load(dir)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(tools.Names()); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.NewLogger(cmd.ErrOrStderr(), v.GetString("log-level"), v.GetString("log-format")).
		WithBuild(logging.NewBuildID()).
		WithProject(filepath.Base(dir))
	log.Debug("configuration loaded", version.Attrs()...)

	proj := project.New(filepath.Base(dir), dir, project.WithLogger(log))

	colored := !v.GetBool("no-color") && !color.NoColor
	plugin := quality.New(cfg,
		quality.WithLogger(log),
		quality.WithConsole(cmd.OutOrStdout(), colored),
	)
	if err := plugin.Apply(proj); err != nil {
		return nil, err
	}
	return proj, nil
}
