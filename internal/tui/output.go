package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrz1836/hyprws/internal/errors"
	"github.com/mrz1836/hyprws/internal/workspace"
)

// Output formats.
const (
	// FormatText is the default human-readable format.
	FormatText = "text"
	// FormatJSON emits machine-readable JSON.
	FormatJSON = "json"
	// FormatYAML emits YAML.
	FormatYAML = "yaml"
)

// Messages shared by every format.
const (
	HeaderActiveWorkspaces = "Active Workspaces:"
	MessageNoWorkspaces    = "No workspaces found"
	createdPrefix          = "Created workspace: "
)

// Output renders command results. Results go to the output writer,
// diagnostics to the diagnostic writer (which may be the same stream).
type Output interface {
	// Workspaces prints a non-empty workspace list.
	Workspaces(ws []workspace.Workspace) error
	// Empty reports that the query returned no workspaces.
	Empty() error
	// Created confirms a workspace creation.
	Created(name string) error
	// Diagnostic reports a failure as "<prefix>: <err>".
	Diagnostic(prefix string, err error)
}

// Formats returns the accepted output format names.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// IsValidFormat reports whether format is one of Formats.
func IsValidFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// NewOutput creates the Output for format writing results to out and
// diagnostics to diag.
func NewOutput(format string, out, diag io.Writer) (Output, error) {
	switch format {
	case FormatText, "":
		return NewTextOutput(out, diag), nil
	case FormatJSON:
		return NewJSONOutput(out, diag), nil
	case FormatYAML:
		return NewYAMLOutput(out, diag), nil
	default:
		return nil, fmt.Errorf("%w: %q must be one of %s",
			errors.ErrInvalidOutputFormat, format, strings.Join(Formats(), ", "))
	}
}

// CreatedMessage is the confirmation printed after a successful create.
func CreatedMessage(name string) string {
	return createdPrefix + name
}

// DiagnosticMessage formats a diagnostic line.
func DiagnosticMessage(prefix string, err error) string {
	return fmt.Sprintf("%s: %v", prefix, err)
}

// TextOutput prints human-readable lines, styled when the writer is a color terminal.
type TextOutput struct {
	out        io.Writer
	diag       io.Writer
	styles     *OutputStyles
	diagStyles *OutputStyles
}

// NewTextOutput creates a TextOutput.
func NewTextOutput(out, diag io.Writer) *TextOutput {
	return &TextOutput{
		out:        out,
		diag:       diag,
		styles:     NewOutputStyles(out),
		diagStyles: NewOutputStyles(diag),
	}
}

// Workspaces prints the header followed by one indented line per workspace.
func (o *TextOutput) Workspaces(ws []workspace.Workspace) error {
	if _, err := fmt.Fprintln(o.out, o.styles.Header.Render(HeaderActiveWorkspaces)); err != nil {
		return err
	}
	for _, w := range ws {
		if _, err := fmt.Fprintln(o.out, "  "+w.Line()); err != nil {
			return err
		}
	}
	return nil
}

// Empty prints "No workspaces found".
func (o *TextOutput) Empty() error {
	_, err := fmt.Fprintln(o.out, o.styles.Muted.Render(MessageNoWorkspaces))
	return err
}

// Created prints "Created workspace: <name>".
func (o *TextOutput) Created(name string) error {
	_, err := fmt.Fprintln(o.out, o.styles.Success.Render(CreatedMessage(name)))
	return err
}

// Diagnostic prints the failure line.
func (o *TextOutput) Diagnostic(prefix string, err error) {
	_, _ = fmt.Fprintln(o.diag, o.diagStyles.Error.Render(DiagnosticMessage(prefix, err)))
}
