package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONFormatter renders the result as indented JSON for machine
// consumption.
type JSONFormatter struct{}

// jsonOutput is the stable JSON shape; durations are rendered as strings.
type jsonOutput struct {
	Root      string      `json:"root"`
	SessionID string      `json:"session_id"`
	Algorithm string      `json:"algorithm"`
	Groups    []GroupInfo `json:"groups"`
	Stats     jsonStats   `json:"stats"`
	Moves     []MoveInfo  `json:"moves,omitempty"`
	Warnings  []string    `json:"warnings,omitempty"`
}

type jsonStats struct {
	FilesProcessed  int64  `json:"files_processed"`
	FilesHashed     int64  `json:"files_hashed"`
	DuplicateGroups int    `json:"duplicate_groups"`
	Singletons      int    `json:"singletons"`
	WastedBytes     int64  `json:"wasted_bytes"`
	Elapsed         string `json:"elapsed"`
}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := jsonOutput{
		Root:      r.Root,
		SessionID: r.SessionID,
		Algorithm: r.Algorithm,
		Groups:    r.Groups,
		Stats: jsonStats{
			FilesProcessed:  r.Stats.FilesProcessed,
			FilesHashed:     r.Stats.FilesHashed,
			DuplicateGroups: r.Stats.DuplicateGroups,
			Singletons:      r.Stats.Singletons,
			WastedBytes:     r.Stats.WastedBytes,
			Elapsed:         r.Stats.Elapsed.String(),
		},
		Moves:    r.Moves,
		Warnings: r.Warnings,
	}
	if out.Groups == nil {
		out.Groups = []GroupInfo{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	w.Write(data)
	w.WriteByte('\n')
	return nil
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

var _ Formatter = (*JSONFormatter)(nil)
