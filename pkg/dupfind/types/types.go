// Package types provides core data types for the dupfind duplicate scanner.
// It includes the file record produced by traversal, the digest type keying
// the duplicate index, and size formatting helpers.
package types

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// Size constants for binary (IEC) units.
const (
	KiB int64 = 1024
	MiB int64 = 1024 * KiB
	GiB int64 = 1024 * MiB
)

// Digest is the lowercase hexadecimal output of a checksum algorithm applied
// to a file's full content. Two files sharing a Digest are byte-identical
// modulo the collision probability of the chosen algorithm.
type Digest string

// Short returns the first n characters of the digest, or the whole digest
// if it is shorter. Used for compact display and collision-safe renaming.
func (d Digest) Short(n int) string {
	if len(d) <= n {
		return string(d)
	}
	return string(d[:n])
}

// FileRecord describes a candidate file discovered during traversal.
// Records are ephemeral: they exist only for the duration of a scan.
type FileRecord struct {
	// Path is the absolute path to the file.
	Path string `json:"path"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Ext is the file extension including the dot, lowercased.
	Ext string `json:"ext"`

	// Depth is the number of path separators between the file's directory
	// and the scan root.
	Depth int `json:"depth"`
}

// NewFileRecord builds a FileRecord for path with the given size, computing
// the extension and the depth relative to root.
func NewFileRecord(root, path string, size int64) FileRecord {
	return FileRecord{
		Path:  path,
		Size:  size,
		Ext:   strings.ToLower(filepath.Ext(path)),
		Depth: Depth(root, path),
	}
}

// Depth returns the number of path separators between the directory holding
// path and root. A file directly under root has depth 0.
func Depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator))
}

// FormatSize converts a size in bytes to a human-readable string using
// binary (IEC) units for consistency with common filesystem tools.
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}
