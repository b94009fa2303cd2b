package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/mrz1836/hyprws/internal/errors"
)

// Diagnostic prefixes for list failures.
const (
	diagGettingWorkspaces = "Error getting workspaces"
	diagParsingWorkspaces = "Error parsing workspaces"
)

// newListCmd creates the list command.
func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   string(ActionList),
		Short: "List active workspaces",
		Long: `Query hyprctl for the current workspaces and print one line per workspace:

  <id>: <name> (<windows> windows)

Workspaces without a name are shown as "Unnamed". A hyprctl failure is
reported and the command still exits 0.

Examples:
  hyprws list
  hyprws list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd)
		},
	}
}

// runList prints the workspaces. ErrCommandFailed and ErrMalformedOutput are
// reported as diagnostics and swallowed.
func (a *app) runList(cmd *cobra.Command) error {
	out, err := a.output(cmd)
	if err != nil {
		return err
	}

	workspaces, err := a.manager.List(cmd.Context())
	if err != nil {
		out.Diagnostic(listDiagnosticPrefix(err), err)
		return nil
	}

	if len(workspaces) == 0 {
		return out.Empty()
	}
	return out.Workspaces(workspaces)
}

// listDiagnosticPrefix distinguishes parse failures from command failures.
func listDiagnosticPrefix(err error) string {
	if stderrors.Is(err, errors.ErrMalformedOutput) {
		return diagParsingWorkspaces
	}
	return diagGettingWorkspaces
}
