package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/hyprws/internal/errors"
)

// Diagnostic prefixes for create failures.
const (
	diagCreatingWorkspace = "Error creating workspace"
	diagUsage             = "Error"
)

// newCreateCmd creates the create command.
func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   string(ActionCreate),
		Short: "Create a named workspace",
		Long: `Dispatch "workspace name:<name>" to hyprctl, creating the workspace
(or switching to it if it already exists).

--name is required; without it the command exits 1 and hyprctl is not run.
A hyprctl failure is reported and the command still exits 0.

Examples:
  hyprws create --name coding
  hyprws --name "side project" create`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCreate(cmd)
		},
	}
}

// runCreate dispatches the workspace creation. A missing name is the only
// failure returned to the caller.
func (a *app) runCreate(cmd *cobra.Command) error {
	out, err := a.output(cmd)
	if err != nil {
		return err
	}

	name := a.flags.Name
	if name == "" {
		out.Diagnostic(diagUsage, errors.ErrNameRequired)
		// Already reported above.
		cmd.SilenceErrors = true
		return errors.ErrNameRequired
	}

	if err := a.manager.Create(cmd.Context(), name); err != nil {
		out.Diagnostic(diagCreatingWorkspace, err)
		return nil
	}

	return out.Created(name)
}
