package checksum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with the given content and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile_MD5(t *testing.T) {
	path := writeFile(t, "hello.txt", "hello world")

	digest, err := File(path, "md5", 0)
	require.NoError(t, err)
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", string(digest))
}

func TestFile_KnownDigests(t *testing.T) {
	tests := []struct {
		algorithm string
		want      string
	}{
		{"md5", "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{"sha1", "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{"sha256", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	}

	path := writeFile(t, "data.bin", "hello world")
	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			digest, err := File(path, tt.algorithm, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(digest))
		})
	}
}

func TestFile_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "")

	digest, err := File(path, "md5", 0)
	require.NoError(t, err)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", string(digest))
}

func TestFile_ChunkSizeDoesNotChangeDigest(t *testing.T) {
	// Content larger than the smallest chunk so streaming spans reads.
	content := strings.Repeat("abcdefgh", 1000)
	path := writeFile(t, "big.txt", content)

	small, err := File(path, "sha256", 7)
	require.NoError(t, err)
	large, err := File(path, "sha256", 64*1024)
	require.NoError(t, err)

	assert.Equal(t, small, large)
}

func TestFile_XXH64(t *testing.T) {
	path := writeFile(t, "fast.txt", "hello world")

	digest, err := File(path, "xxh64", 0)
	require.NoError(t, err)
	// xxh64 digests are 8 bytes, 16 hex chars.
	assert.Len(t, string(digest), 16)

	again, err := File(path, "xxh64", 0)
	require.NoError(t, err)
	assert.Equal(t, digest, again)
}

func TestFile_LowercaseHex(t *testing.T) {
	path := writeFile(t, "case.txt", "HELLO")

	digest, err := File(path, "sha1", 0)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(string(digest)), string(digest))
}

func TestFile_UnknownAlgorithm(t *testing.T) {
	path := writeFile(t, "x.txt", "x")

	_, err := File(path, "crc999", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestFile_MissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.txt"), "md5", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := New("whirlpool")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSupported(t *testing.T) {
	supported := Supported()
	assert.Contains(t, supported, "md5")
	assert.Contains(t, supported, "sha1")
	assert.Contains(t, supported, "sha256")
	assert.Contains(t, supported, "xxh64")
	assert.IsIncreasing(t, supported)
}
