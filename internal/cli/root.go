// Package cli provides the command-line interface for hyprws.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/hyprws/internal/config"
	"github.com/mrz1836/hyprws/internal/constants"
	"github.com/mrz1836/hyprws/internal/errors"
	"github.com/mrz1836/hyprws/internal/hyprctl"
	"github.com/mrz1836/hyprws/internal/tui"
	"github.com/mrz1836/hyprws/internal/workspace"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// dependencies are the seams commands are built from.
// Tests replace them to avoid spawning hyprctl or touching ~/.hyprws.
type dependencies struct {
	loadConfig    func(ctx context.Context, overrides *config.Config) (*config.Config, error)
	newController func(cfg *config.Config) workspace.Controller
	initLogger    func(verbose, quiet bool) zerolog.Logger
}

// defaultDependencies wires the real config loader, hyprctl client and logger.
func defaultDependencies() dependencies {
	return dependencies{
		loadConfig: config.LoadWithOverrides,
		newController: func(cfg *config.Config) workspace.Controller {
			runner := hyprctl.NewRunner(cfg.Hyprctl.Binary,
				hyprctl.WithInstance(cfg.Hyprctl.Instance),
				hyprctl.WithTimeout(cfg.Hyprctl.Timeout),
			)
			return hyprctl.NewClient(runner)
		},
		initLogger: InitLogger,
	}
}

// app is the state shared by the root command and its actions once
// PersistentPreRunE has run.
type app struct {
	flags   *GlobalFlags
	deps    dependencies
	cfg     *config.Config
	manager workspace.Manager
}

// output builds the Output for the selected format. Diagnostics follow
// output.diagnostics: stdout by default, stderr when configured.
func (a *app) output(cmd *cobra.Command) (tui.Output, error) {
	diag := cmd.OutOrStdout()
	if a.cfg != nil && a.cfg.Output.Diagnostics == constants.DiagnosticsStderr {
		diag = cmd.ErrOrStderr()
	}
	return tui.NewOutput(a.flags.Output, cmd.OutOrStdout(), diag)
}

// newRootCmd creates the root command for the hyprws CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo, deps dependencies) *cobra.Command {
	v := viper.New()
	a := &app{flags: flags, deps: deps}

	cmd := &cobra.Command{
		Use:   "hyprws <action>",
		Short: "Hyprland Workspace Manager",
		Long: `hyprws lists and creates Hyprland workspaces through hyprctl.

Actions:
  list     show the active workspaces and their window counts
  create   create (or switch to) a named workspace; requires --name`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return errors.NewExitCode2Error(errors.ErrActionRequired)
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, v)
		},
		SilenceUsage: true,
	}

	// Actions are limited to list and create.
	cmd.CompletionOptions.DisableDefaultCmd = true

	AddGlobalFlags(cmd, flags)
	addActionCommands(cmd, a)

	return cmd
}

// setup resolves flags, initializes logging, loads configuration and builds
// the workspace manager.
func (a *app) setup(cmd *cobra.Command, v *viper.Viper) error {
	if err := BindGlobalFlags(v, cmd); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	resolveGlobalFlags(v, a.flags)

	if !tui.IsValidFormat(a.flags.Output) {
		return errors.NewExitCode2Error(fmt.Errorf("%w: %q must be one of %v",
			errors.ErrInvalidOutputFormat, a.flags.Output, tui.Formats()))
	}

	logger := a.deps.initLogger(a.flags.Verbose, a.flags.Quiet)
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	cfg, err := a.deps.loadConfig(ctx, &config.Config{
		Hyprctl: config.HyprctlConfig{Instance: a.flags.Instance},
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg
	a.manager = workspace.NewManager(a.deps.newController(cfg))

	logger.Debug().
		Str("command", cmd.Name()).
		Str("output", a.flags.Output).
		Msg("command initialized")
	return nil
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info, defaultDependencies())
	return cmd.ExecuteContext(ctx)
}
