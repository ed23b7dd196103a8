package index

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rgeddes/dupfind/pkg/dupfind/checksum"
	"github.com/rgeddes/dupfind/pkg/dupfind/logging"
	"github.com/rgeddes/dupfind/pkg/dupfind/types"
	"github.com/rgeddes/dupfind/pkg/dupfind/walker"
)

var logger = logging.Get("index")

// Options configures an index build.
type Options struct {
	// Root is the directory to scan.
	Root string

	// Algorithm is the checksum algorithm name. Empty uses the default.
	Algorithm string

	// ChunkSize is the hashing read-buffer size in bytes. Zero uses the
	// engine default.
	ChunkSize int

	// Walk configures traversal filtering.
	Walk walker.Options
}

// Builder drives one scan: it walks the tree, hashes candidates, and
// assembles the duplicate index. The processed counter is readable
// concurrently while Build runs; everything else is owned by the builder.
type Builder struct {
	opts      Options
	processed atomic.Int64
}

// NewBuilder creates a Builder for the given options.
func NewBuilder(opts Options) *Builder {
	if opts.Algorithm == "" {
		opts.Algorithm = checksum.DefaultAlgorithm
	}
	return &Builder{opts: opts}
}

// Processed returns a snapshot of the number of candidates examined so
// far. It is safe to call from other goroutines while Build runs and
// never blocks the build.
func (b *Builder) Processed() int64 {
	return b.processed.Load()
}

// Build walks the tree and returns the completed index. Per-file stat,
// read, and hashing failures are logged and excluded; an invalid root, an
// unknown algorithm, or context cancellation aborts the build with an
// error so a partial index is never returned as complete. Every candidate
// examined after filtering increments the processed counter exactly once,
// including candidates excluded by the size limit or a stat failure.
func (b *Builder) Build(ctx context.Context) (*Index, error) {
	// Fail fast on a bad algorithm name before touching the filesystem.
	if _, err := checksum.New(b.opts.Algorithm); err != nil {
		return nil, err
	}

	start := time.Now()
	ix := newIndex()
	ix.SessionID = uuid.NewString()

	logger.Info("scan started",
		"session", ix.SessionID,
		"root", b.opts.Root,
		"algorithm", b.opts.Algorithm)

	w := walker.New(b.opts.Walk)
	err := w.Walk(ctx, b.opts.Root, func(rec types.FileRecord, reason walker.SkipReason) error {
		defer b.processed.Add(1)

		if reason != walker.SkipNone {
			// Already reported by the walker; counts as processed.
			return nil
		}

		digest, err := checksum.File(rec.Path, b.opts.Algorithm, b.opts.ChunkSize)
		if err != nil {
			logger.Error("error processing file", "path", rec.Path, "error", err)
			ix.Errors = append(ix.Errors, ScanError{Path: rec.Path, Error: err.Error()})
			return nil
		}

		ix.add(digest, rec.Path, rec.Size)
		ix.Stats.FilesHashed++
		ix.Stats.BytesHashed += rec.Size
		return nil
	})
	if err != nil {
		return nil, err
	}

	ix.Stats.FilesProcessed = b.processed.Load()
	ix.Stats.Elapsed = time.Since(start)

	logger.Info("scan finished",
		"session", ix.SessionID,
		"processed", ix.Stats.FilesProcessed,
		"hashed", ix.Stats.FilesHashed,
		"groups", len(ix.Groups()),
		"elapsed", ix.Stats.Elapsed)

	return ix, nil
}
