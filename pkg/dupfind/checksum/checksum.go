// Package checksum streams file contents through a selectable hash algorithm
// and produces lowercase hexadecimal digests. Algorithms are registered by
// name so callers can swap them without changing the calling contract.
package checksum

import (
	"crypto/md5"  //nolint:gosec // content fingerprinting, not authentication
	"crypto/sha1" //nolint:gosec // content fingerprinting, not authentication
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/rgeddes/dupfind/pkg/dupfind/types"
)

// DefaultChunkSize is the read buffer size used when streaming file contents.
const DefaultChunkSize = 1024

// DefaultAlgorithm is the algorithm used when none is configured.
const DefaultAlgorithm = "md5"

// ErrUnknownAlgorithm indicates that no hash constructor is registered
// under the requested name.
var ErrUnknownAlgorithm = errors.New("unknown checksum algorithm")

// algorithms maps algorithm names to hash constructors.
var algorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"xxh64":  func() hash.Hash { return xxhash.New() },
}

// New returns a fresh hash accumulator for the named algorithm.
func New(algorithm string) (hash.Hash, error) {
	ctor, ok := algorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownAlgorithm, algorithm, Supported())
	}
	return ctor(), nil
}

// Supported returns the sorted list of registered algorithm names.
func Supported() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// File streams the file at path through the named algorithm in chunkSize
// blocks and returns the digest as lowercase hexadecimal. If chunkSize is
// not positive, DefaultChunkSize is used. The file is only read; there are
// no other side effects.
func File(path, algorithm string, chunkSize int) (types.Digest, error) {
	h, err := New(algorithm)
	if err != nil {
		return "", err
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, chunkSize)
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error.
			h.Write(buf[:n])
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", fmt.Errorf("reading %q: %w", path, rerr)
		}
	}

	return types.Digest(hex.EncodeToString(h.Sum(nil))), nil
}
