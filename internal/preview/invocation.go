package preview

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Invocation is the hook payload describing a pending tool call.
type Invocation struct {
	SessionID string          `json:"session_id"`
	Cwd       string          `json:"cwd"`
	ToolName  string          `json:"tool_name"`
	Input     json.RawMessage `json:"tool_input"`
	Response  json.RawMessage `json:"tool_response,omitempty"`
}

// Decode reads one Invocation from r.
func Decode(r io.Reader) (Invocation, error) {
	var inv Invocation
	if err := json.NewDecoder(r).Decode(&inv); err != nil {
		return Invocation{}, fmt.Errorf("decode invocation: %w", err)
	}
	inv.ToolName = strings.TrimSpace(inv.ToolName)
	if inv.ToolName == "" {
		return Invocation{}, errors.New("decode invocation: missing tool_name")
	}
	return inv, nil
}

type bashInput struct {
	Command         string `json:"command"`
	Description     string `json:"description"`
	Timeout         int    `json:"timeout"`
	RunInBackground bool   `json:"run_in_background"`
}

type editInput struct {
	FilePath   string `json:"file_path"`
	OldString  string `json:"old_string"`
	NewString  string `json:"new_string"`
	ReplaceAll bool   `json:"replace_all"`
}

type multiEditInput struct {
	FilePath string      `json:"file_path"`
	Edits    []editInput `json:"edits"`
}

type writeInput struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
}

type readInput struct {
	FilePath string `json:"file_path"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type notebookEditInput struct {
	NotebookPath string `json:"notebook_path"`
	CellID       string `json:"cell_id"`
	NewSource    string `json:"new_source"`
	CellType     string `json:"cell_type"`
	EditMode     string `json:"edit_mode"`
}

type searchInput struct {
	Pattern    string `json:"pattern"`
	Path       string `json:"path"`
	Glob       string `json:"glob"`
	Type       string `json:"type"`
	OutputMode string `json:"output_mode"`
}

type webFetchInput struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

type webSearchInput struct {
	Query          string   `json:"query"`
	AllowedDomains []string `json:"allowed_domains"`
	BlockedDomains []string `json:"blocked_domains"`
}

type taskInput struct {
	Description  string `json:"description"`
	Prompt       string `json:"prompt"`
	SubagentType string `json:"subagent_type"`
}

type questionOption struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

type question struct {
	Question    string           `json:"question"`
	Header      string           `json:"header"`
	Options     []questionOption `json:"options"`
	MultiSelect bool             `json:"multiSelect"`
}

type askInput struct {
	Questions []question `json:"questions"`
}

type commandResponse struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

func decodeInput(inv Invocation, v any) error {
	if len(inv.Input) == 0 {
		return nil
	}
	if err := json.Unmarshal(inv.Input, v); err != nil {
		return fmt.Errorf("decode %s input: %w", inv.ToolName, err)
	}
	return nil
}
