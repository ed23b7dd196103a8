// Package walker traverses a directory tree applying depth, extension,
// size-limit, and exclusion policies, yielding candidate file records for
// hashing. Traversal is sequential and lexically sorted so enumeration
// order is deterministic.
package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlievieth/fastwalk"
	"github.com/gobwas/glob"
	"github.com/rgeddes/dupfind/pkg/dupfind/logging"
	"github.com/rgeddes/dupfind/pkg/dupfind/types"
)

var logger = logging.Get("walker")

// ErrNotDirectory indicates that the scan root does not exist or is not
// a directory. It is the only fatal traversal error.
var ErrNotDirectory = errors.New("not a directory")

// SkipReason explains why a candidate was delivered without content.
type SkipReason int

const (
	// SkipNone marks a regular candidate that should be hashed.
	SkipNone SkipReason = iota

	// SkipOversize marks a candidate whose size exceeds the configured
	// maximum. It is excluded from hashing but still counts as processed.
	SkipOversize

	// SkipStat marks a candidate whose metadata could not be read.
	SkipStat
)

// WalkFunc receives each candidate file that passed the extension and
// exclusion filters. Candidates with a reason other than SkipNone must not
// be hashed. Returning a non-nil error aborts the walk.
type WalkFunc func(rec types.FileRecord, reason SkipReason) error

// Options configures traversal filtering.
type Options struct {
	// Extensions is an allow-list of file extensions. Entries are
	// normalized to leading-dot lowercase form; matching is
	// case-insensitive. Empty means all files pass.
	Extensions []string

	// MaxDepth limits descent below the root. Depth is the count of path
	// separators between a directory and the root; once a directory
	// reaches the maximum its subdirectories are not entered, though its
	// own files are still yielded. 0 means unlimited.
	MaxDepth int

	// MaxSize is the maximum file size in bytes. Larger files are
	// reported and skipped. 0 means unlimited.
	MaxSize int64

	// Exclude contains glob patterns for paths to skip entirely.
	Exclude []string
}

// Walker yields candidate files under a root according to its options.
// A Walker is restartable: each call to Walk enumerates from scratch.
type Walker struct {
	opts     Options
	excluded []glob.Glob
}

// New creates a Walker, normalizing extensions and compiling exclusion
// patterns. Invalid patterns are logged and ignored.
func New(opts Options) *Walker {
	opts.Extensions = NormalizeExtensions(opts.Extensions)

	w := &Walker{opts: opts}
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern, filepath.Separator)
		if err != nil {
			logger.Warn("ignoring invalid exclude pattern", "pattern", pattern, "error", err)
			continue
		}
		w.excluded = append(w.excluded, g)
	}
	return w
}

// NormalizeExtensions lowercases extensions and ensures a leading dot,
// so "pdf" and ".PDF" both become ".pdf".
func NormalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

// Walk enumerates candidate files under root, invoking fn for each one.
// The root is resolved to an absolute path and must be an existing
// directory. Per-file stat errors are logged and do not abort the walk.
// Context cancellation stops enumeration promptly and is returned to the
// caller, so a partial walk is never mistaken for a complete one.
func (w *Walker) Walk(ctx context.Context, root string, fn WalkFunc) error {
	absRoot, err := w.validateRoot(root)
	if err != nil {
		return err
	}

	conf := fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
		Sort:       fastwalk.SortLexical,
	}

	return fastwalk.Walk(&conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		if err != nil {
			logger.Warn("cannot access path", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			return w.visitDir(absRoot, path)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return w.visitFile(absRoot, path, d, fn)
	})
}

// visitDir applies depth and exclusion policy to a directory entry.
func (w *Walker) visitDir(root, path string) error {
	if path == root {
		return nil
	}
	if w.isExcluded(path) {
		return filepath.SkipDir
	}
	if w.opts.MaxDepth > 0 {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1
		if depth > w.opts.MaxDepth {
			return filepath.SkipDir
		}
	}
	return nil
}

// visitFile applies extension, exclusion, and size policy to a file entry
// and delivers surviving candidates to fn.
func (w *Walker) visitFile(root, path string, d fs.DirEntry, fn WalkFunc) error {
	if w.isExcluded(path) {
		return nil
	}
	if !w.matchExtension(path) {
		return nil
	}

	info, err := d.Info()
	if err != nil {
		logger.Warn("cannot stat file", "path", path, "error", err)
		return fn(types.NewFileRecord(root, path, 0), SkipStat)
	}

	rec := types.NewFileRecord(root, path, info.Size())
	if w.opts.MaxSize > 0 && rec.Size > w.opts.MaxSize {
		logger.Info("skipping file over size limit",
			"path", path,
			"size", types.FormatSize(rec.Size),
			"limit", types.FormatSize(w.opts.MaxSize))
		return fn(rec, SkipOversize)
	}

	return fn(rec, SkipNone)
}

// matchExtension reports whether the file name ends with one of the
// configured extensions. No configured extensions means everything passes.
func (w *Walker) matchExtension(path string) bool {
	if len(w.opts.Extensions) == 0 {
		return true
	}
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range w.opts.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// isExcluded checks the path against the compiled exclusion patterns.
func (w *Walker) isExcluded(path string) bool {
	for _, g := range w.excluded {
		if g.Match(path) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// validateRoot resolves root to an absolute path and verifies it is an
// existing directory.
func (w *Walker) validateRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, absRoot)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, absRoot)
	}
	return absRoot, nil
}
