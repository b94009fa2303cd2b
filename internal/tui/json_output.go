package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrz1836/hyprws/internal/workspace"
)

// message is the structured form of confirmations and diagnostics.
// Format: {"type": "success|info|error", "message": "...", "details": "..."}
type message struct {
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// JSONOutput emits indented JSON documents.
type JSONOutput struct {
	out  io.Writer
	diag io.Writer
}

// NewJSONOutput creates a JSONOutput.
func NewJSONOutput(out, diag io.Writer) *JSONOutput {
	return &JSONOutput{out: out, diag: diag}
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Workspaces outputs the workspaces as a JSON array.
func (o *JSONOutput) Workspaces(ws []workspace.Workspace) error {
	return encodeJSON(o.out, ws)
}

// Empty outputs an empty JSON array.
func (o *JSONOutput) Empty() error {
	return encodeJSON(o.out, []workspace.Workspace{})
}

// Created outputs a success message.
func (o *JSONOutput) Created(name string) error {
	return encodeJSON(o.out, message{Type: "success", Message: CreatedMessage(name)})
}

// Diagnostic outputs an error message with the error text as details.
func (o *JSONOutput) Diagnostic(prefix string, err error) {
	//nolint:errchkjson // Method has no error return per interface contract
	_ = encodeJSON(o.diag, message{
		Type:    "error",
		Message: DiagnosticMessage(prefix, err),
		Details: err.Error(),
	})
}
