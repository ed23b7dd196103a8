// Package index aggregates file paths by content digest to identify
// duplicates. The builder feeds every traversal candidate through the
// checksum engine and records paths in first-seen order under their digest.
package index

import (
	"time"

	"github.com/rgeddes/dupfind/pkg/dupfind/types"
)

// Group is a set of paths sharing one digest. Paths preserve discovery
// order; the first entry is the keeper left in place during relocation.
type Group struct {
	// Digest is the shared content checksum.
	Digest types.Digest `json:"digest"`

	// Paths are the files with this digest, in discovery order.
	Paths []string `json:"paths"`

	// FileSize is the size in bytes of each file in the group.
	FileSize int64 `json:"file_size"`
}

// Keeper returns the first-discovered path, which relocation leaves alone.
func (g Group) Keeper() string {
	return g.Paths[0]
}

// Duplicates returns every path except the keeper.
func (g Group) Duplicates() []string {
	return g.Paths[1:]
}

// WastedBytes is the space recoverable by removing all but the keeper.
func (g Group) WastedBytes() int64 {
	return g.FileSize * int64(len(g.Paths)-1)
}

// ScanError pairs a file path with the error that excluded it.
type ScanError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Stats summarizes one build of the index.
type Stats struct {
	// FilesProcessed counts every candidate examined after filtering,
	// whether hashing succeeded or not.
	FilesProcessed int64 `json:"files_processed"`

	// FilesHashed counts candidates whose digest was computed.
	FilesHashed int64 `json:"files_hashed"`

	// BytesHashed is the total content size fed through the hash.
	BytesHashed int64 `json:"bytes_hashed"`

	// Elapsed is the wall-clock duration of the build.
	Elapsed time.Duration `json:"elapsed"`
}

// Index maps digests to the ordered paths that produced them.
// It is exclusively written by one builder and must not be mutated after
// Build returns.
type Index struct {
	order    []types.Digest
	byDigest map[types.Digest]*Group

	// SessionID identifies the scan run that produced this index.
	SessionID string

	// Stats describes the build that produced this index.
	Stats Stats

	// Errors lists the files excluded by per-file failures.
	Errors []ScanError
}

func newIndex() *Index {
	return &Index{byDigest: make(map[types.Digest]*Group)}
}

// add appends path under digest, preserving first-seen digest order.
func (ix *Index) add(digest types.Digest, path string, size int64) {
	g, ok := ix.byDigest[digest]
	if !ok {
		g = &Group{Digest: digest, FileSize: size}
		ix.byDigest[digest] = g
		ix.order = append(ix.order, digest)
	}
	g.Paths = append(g.Paths, path)
}

// Len returns the number of distinct digests in the index.
func (ix *Index) Len() int {
	return len(ix.order)
}

// Lookup returns the group for a digest, if present.
func (ix *Index) Lookup(digest types.Digest) (Group, bool) {
	g, ok := ix.byDigest[digest]
	if !ok {
		return Group{}, false
	}
	return *g, true
}

// Groups returns the duplicate groups (two or more paths) in first-seen
// digest order.
func (ix *Index) Groups() []Group {
	var groups []Group
	for _, d := range ix.order {
		if g := ix.byDigest[d]; len(g.Paths) >= 2 {
			groups = append(groups, *g)
		}
	}
	return groups
}

// Singletons returns the number of digests with exactly one path.
func (ix *Index) Singletons() int {
	n := 0
	for _, g := range ix.byDigest {
		if len(g.Paths) == 1 {
			n++
		}
	}
	return n
}
