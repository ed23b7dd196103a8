package report

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders the result as YAML.
type YAMLFormatter struct{}

// yamlOutput mirrors jsonOutput with YAML-friendly field rendering.
type yamlOutput struct {
	Root      string      `yaml:"root"`
	SessionID string      `yaml:"session_id"`
	Algorithm string      `yaml:"algorithm"`
	Groups    []GroupInfo `yaml:"groups"`
	Stats     yamlStats   `yaml:"stats"`
	Moves     []MoveInfo  `yaml:"moves,omitempty"`
	Warnings  []string    `yaml:"warnings,omitempty"`
}

type yamlStats struct {
	FilesProcessed  int64  `yaml:"files_processed"`
	FilesHashed     int64  `yaml:"files_hashed"`
	DuplicateGroups int    `yaml:"duplicate_groups"`
	Singletons      int    `yaml:"singletons"`
	WastedBytes     int64  `yaml:"wasted_bytes"`
	Elapsed         string `yaml:"elapsed"`
}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := yamlOutput{
		Root:      r.Root,
		SessionID: r.SessionID,
		Algorithm: r.Algorithm,
		Groups:    r.Groups,
		Stats: yamlStats{
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

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return enc.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

var _ Formatter = (*YAMLFormatter)(nil)
