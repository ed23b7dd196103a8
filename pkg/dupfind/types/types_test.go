package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_Short(t *testing.T) {
	d := Digest("5d41402abc4b2a76b9719d911017c592")
	assert.Equal(t, "5d41402a", d.Short(8))
	assert.Equal(t, string(d), d.Short(100))
}

func TestNewFileRecord(t *testing.T) {
	root := filepath.Join("/", "scan")
	rec := NewFileRecord(root, filepath.Join(root, "sub", "Report.PDF"), 42)

	assert.Equal(t, int64(42), rec.Size)
	assert.Equal(t, ".pdf", rec.Ext)
	assert.Equal(t, 1, rec.Depth)
}

func TestDepth(t *testing.T) {
	root := filepath.Join("/", "scan")
	tests := []struct {
		name string
		path string
		want int
	}{
		{"file at root", filepath.Join(root, "a.txt"), 0},
		{"one level down", filepath.Join(root, "x", "a.txt"), 1},
		{"three levels down", filepath.Join(root, "x", "y", "z", "a.txt"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Depth(root, tt.path))
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "1.0 KiB", FormatSize(1024))
	assert.Equal(t, "1.5 MiB", FormatSize(1536*1024))
}
