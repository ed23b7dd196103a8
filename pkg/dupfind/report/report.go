// Package report formats duplicate scan results for display. Formatters
// are registered by name (plain, pretty, json, yaml) and selected at
// runtime; formatting is pure, so rendering the same result twice yields
// identical output.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// GroupInfo describes one duplicate group for display.
type GroupInfo struct {
	// Digest is the shared content checksum.
	Digest string `json:"digest" yaml:"digest"`

	// Paths are the group's files in discovery order; the first is the keeper.
	Paths []string `json:"paths" yaml:"paths"`

	// FileSize is the size of each file in bytes.
	FileSize int64 `json:"file_size" yaml:"file_size"`

	// FileSizeHuman is the human-readable per-file size.
	FileSizeHuman string `json:"file_size_human" yaml:"file_size_human"`
}

// MoveInfo describes the outcome of one relocation for display.
type MoveInfo struct {
	// Source is the original path of the duplicate.
	Source string `json:"source" yaml:"source"`

	// Dest is the destination under the quarantine directory.
	Dest string `json:"dest,omitempty" yaml:"dest,omitempty"`

	// Error is the failure message, empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ScanStats summarizes the scan for display.
type ScanStats struct {
	// FilesProcessed counts candidates examined after filtering.
	FilesProcessed int64 `json:"files_processed" yaml:"files_processed"`

	// FilesHashed counts files whose digest was computed.
	FilesHashed int64 `json:"files_hashed" yaml:"files_hashed"`

	// DuplicateGroups is the number of digests with two or more paths.
	DuplicateGroups int `json:"duplicate_groups" yaml:"duplicate_groups"`

	// Singletons is the number of digests with exactly one path.
	Singletons int `json:"singletons" yaml:"singletons"`

	// WastedBytes is the space recoverable by quarantining duplicates.
	WastedBytes int64 `json:"wasted_bytes" yaml:"wasted_bytes"`

	// Elapsed is the scan duration.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Result is the complete output data for one run.
type Result struct {
	// Root is the directory that was scanned.
	Root string `json:"root" yaml:"root"`

	// SessionID identifies the scan run.
	SessionID string `json:"session_id" yaml:"session_id"`

	// Algorithm is the checksum algorithm used.
	Algorithm string `json:"algorithm" yaml:"algorithm"`

	// Groups are the duplicate groups in first-seen order.
	Groups []GroupInfo `json:"groups" yaml:"groups"`

	// Stats summarizes the scan.
	Stats ScanStats `json:"stats" yaml:"stats"`

	// Moves are the relocation outcomes, if relocation ran.
	Moves []MoveInfo `json:"moves,omitempty" yaml:"moves,omitempty"`

	// Warnings lists per-file errors encountered during the scan.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Formatter renders a Result into a buffer.
type Formatter interface {
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]FormatterFactory)}
}

// Register adds a formatter factory, replacing any existing entry.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns the sorted registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
