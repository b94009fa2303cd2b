package cli

import (
	"github.com/spf13/cobra"
)

// Action is one of the enumerated hyprws actions.
type Action string

// Supported actions.
const (
	ActionList   Action = "list"
	ActionCreate Action = "create"
)

// actionCommands maps each action to the constructor of its command.
// Registration order follows Actions().
//
//nolint:gochecknoglobals // Dispatch table
var actionCommands = map[Action]func(a *app) *cobra.Command{
	ActionList:   newListCmd,
	ActionCreate: newCreateCmd,
}

// Actions returns the supported actions.
func Actions() []Action {
	return []Action{ActionList, ActionCreate}
}

// addActionCommands registers one subcommand per action on parent.
func addActionCommands(parent *cobra.Command, a *app) {
	for _, action := range Actions() {
		parent.AddCommand(actionCommands[action](a))
	}
}
