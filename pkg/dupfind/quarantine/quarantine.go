// Package quarantine relocates duplicate copies into a quarantine
// subdirectory, leaving the first-discovered file of each group in place.
// Moves are best-effort filesystem operations without rollback; a failed
// move never aborts the remaining ones.
package quarantine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rgeddes/dupfind/pkg/dupfind/index"
	"github.com/rgeddes/dupfind/pkg/dupfind/logging"
	"github.com/rgeddes/dupfind/pkg/dupfind/types"
)

var logger = logging.Get("quarantine")

// DefaultDirName is the quarantine subdirectory created under the scan root.
const DefaultDirName = "dup"

// digestPrefixLen is the number of digest characters used to disambiguate
// colliding destination names.
const digestPrefixLen = 8

// Options configures relocation.
type Options struct {
	// DirName is the quarantine subdirectory name. Empty uses DefaultDirName.
	DirName string

	// DryRun plans moves without touching the filesystem.
	DryRun bool
}

// Move records the outcome of relocating one duplicate.
type Move struct {
	// Source is the original path of the duplicate.
	Source string `json:"source"`

	// Dest is the path under the quarantine directory, empty if no
	// destination could be chosen.
	Dest string `json:"dest,omitempty"`

	// Err is the failure, if any. Successful moves have a nil Err.
	Err error `json:"-"`
}

// Relocate moves every non-keeper path of each duplicate group in ix into
// the quarantine directory under root, creating the directory if needed
// (a pre-existing directory is not an error). Destination basename
// collisions are resolved deterministically by prefixing a short form of
// the group digest and, beyond that, a numeric suffix; destinations are
// never overwritten. Returns one Move per attempted relocation, in group
// order.
func Relocate(ix *index.Index, root string, opts Options) ([]Move, error) {
	dirName := opts.DirName
	if dirName == "" {
		dirName = DefaultDirName
	}
	dupDir := filepath.Join(root, dirName)

	groups := ix.Groups()
	if len(groups) == 0 {
		return nil, nil
	}

	if !opts.DryRun {
		if err := os.MkdirAll(dupDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating quarantine directory %q: %w", dupDir, err)
		}
	}

	// Destinations claimed during this run, so two duplicates sharing a
	// basename disambiguate even before the first move lands on disk.
	claimed := make(map[string]bool)

	var moves []Move
	for _, g := range groups {
		for _, src := range g.Duplicates() {
			m := relocateOne(src, dupDir, g.Digest, claimed, opts.DryRun)
			if m.Err != nil {
				logger.Error("error moving file", "path", src, "error", m.Err)
			} else {
				logger.Info("moved duplicate", "from", src, "to", m.Dest)
			}
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// relocateOne picks a collision-free destination for src and performs the
// move unless dryRun is set.
func relocateOne(src, dupDir string, digest types.Digest, claimed map[string]bool, dryRun bool) Move {
	dest := chooseDest(src, dupDir, digest, claimed)
	claimed[dest] = true

	if dryRun {
		return Move{Source: src, Dest: dest}
	}
	if err := moveFile(src, dest); err != nil {
		return Move{Source: src, Dest: dest, Err: err}
	}
	return Move{Source: src, Dest: dest}
}

// chooseDest returns the destination path for src: the plain basename if
// free, then the basename prefixed with a short digest, then numbered
// variants of the prefixed form. Disambiguation is total, so every
// duplicate gets a destination no matter how many share a basename. A
// name is taken when it exists on disk or was claimed earlier in this run.
func chooseDest(src, dupDir string, digest types.Digest, claimed map[string]bool) string {
	base := filepath.Base(src)

	plain := filepath.Join(dupDir, base)
	if !taken(plain, claimed) {
		return plain
	}

	short := digest.Short(digestPrefixLen)
	prefixed := filepath.Join(dupDir, short+"-"+base)
	if !taken(prefixed, claimed) {
		return prefixed
	}

	for n := 2; ; n++ {
		numbered := filepath.Join(dupDir, fmt.Sprintf("%s-%d-%s", short, n, base))
		if !taken(numbered, claimed) {
			return numbered
		}
	}
}

// taken reports whether a destination exists on disk or is already claimed.
func taken(dest string, claimed map[string]bool) bool {
	if claimed[dest] {
		return true
	}
	_, err := os.Lstat(dest)
	return err == nil
}

// moveFile renames src to dest, falling back to copy-and-remove when the
// rename fails (for example across filesystems).
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	return copyAndRemove(src, dest)
}

// copyAndRemove copies src to dest preserving the file mode, then removes
// the source. Used when a plain rename is not possible.
func copyAndRemove(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %q: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %q: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %q: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("copying %q: %w", src, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("flushing %q: %w", dest, err)
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("removing source %q: %w", src, err)
	}
	return nil
}
