package tui

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/hyprws/internal/workspace"
)

// YAMLOutput emits YAML documents.
type YAMLOutput struct {
	out  io.Writer
	diag io.Writer
}

// NewYAMLOutput creates a YAMLOutput.
func NewYAMLOutput(out, diag io.Writer) *YAMLOutput {
	return &YAMLOutput{out: out, diag: diag}
}

func encodeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// Workspaces outputs the workspaces as a YAML sequence.
func (o *YAMLOutput) Workspaces(ws []workspace.Workspace) error {
	return encodeYAML(o.out, ws)
}

// Empty outputs an empty YAML sequence.
func (o *YAMLOutput) Empty() error {
	return encodeYAML(o.out, []workspace.Workspace{})
}

// Created outputs a success message.
func (o *YAMLOutput) Created(name string) error {
	return encodeYAML(o.out, message{Type: "success", Message: CreatedMessage(name)})
}

// Diagnostic outputs an error message.
func (o *YAMLOutput) Diagnostic(prefix string, err error) {
	_ = encodeYAML(o.diag, message{
		Type:    "error",
		Message: DiagnosticMessage(prefix, err),
		Details: err.Error(),
	})
}
