package workflow

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Unknown is the sentinel for optional context fields that were not
// supplied. Renderers display it verbatim and never branch on presence.
const Unknown = "unknown"

// Context is an immutable snapshot of the ambient workflow run metadata.
// It is populated once at the boundary; rendering never touches the raw
// github context blob again.
type Context struct {
	Repository   string
	Branch       string
	SHA          string
	Actor        string
	RunID        string
	RunURL       string
	WorkflowName string
}

// RawFields mirrors the subset of the github context JSON the
// notification needs
type RawFields struct {
	Repository string `json:"repository"`
	RefName    string `json:"ref_name"`
	SHA        string `json:"sha"`
	Actor      string `json:"actor"`
	RunID      string `json:"run_id"`
	ServerURL  string `json:"server_url"`
	Workflow   string `json:"workflow"`
}

// ValidationError signals a missing or invalid required context field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ParseRawFields decodes the JSON-encoded github context blob
func ParseRawFields(raw string) (*RawFields, error) {
	fields := &RawFields{}
	if strings.TrimSpace(raw) == "" {
		return fields, nil
	}

	err := json.Unmarshal([]byte(raw), fields)
	if err != nil {
		return nil, fmt.Errorf("cannot parse github context: %s", err)
	}
	return fields, nil
}

// BuildContext validates the raw fields and normalizes them into a
// Context. Repository and workflow name are required, the optional
// fields fall back to the Unknown sentinel.
func BuildContext(fields *RawFields, workflowName string) (*Context, error) {
	if workflowName == "" {
		workflowName = fields.Workflow
	}
	if workflowName == "" {
		return nil, &ValidationError{Field: "workflow-name"}
	}
	if fields.Repository == "" {
		return nil, &ValidationError{Field: "repository"}
	}

	ctx := &Context{
		Repository:   fields.Repository,
		Branch:       orUnknown(fields.RefName),
		SHA:          orUnknown(fields.SHA),
		Actor:        orUnknown(fields.Actor),
		RunID:        orUnknown(fields.RunID),
		RunURL:       runURL(fields),
		WorkflowName: workflowName,
	}
	return ctx, nil
}

func runURL(fields *RawFields) string {
	if fields.ServerURL == "" || fields.RunID == "" {
		return Unknown
	}
	return fmt.Sprintf("%s/%s/actions/runs/%s", fields.ServerURL, fields.Repository, fields.RunID)
}

func orUnknown(value string) string {
	if value == "" {
		return Unknown
	}
	return value
}
