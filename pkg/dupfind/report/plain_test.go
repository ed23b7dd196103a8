package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlain_DuplicateGroups(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PlainFormatter{}).Format(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "Checksum: 5d41402abc4b2a76b9719d911017c592")
	assert.Contains(t, out, "  /scan/root/A.txt")
	assert.Contains(t, out, "  /scan/root/B.txt")
	assert.Contains(t, out, "Moved duplicate: /scan/root/B.txt -> /scan/root/dup/B.txt")
	assert.NotContains(t, out, "No duplicate files found.")
}

func TestPlain_NoDuplicates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PlainFormatter{}).Format(&buf, &Result{Root: "/scan"}))

	assert.Equal(t, "No duplicate files found.\n", buf.String())
}

func TestPlain_MoveError(t *testing.T) {
	r := sampleResult()
	r.Moves = []MoveInfo{{Source: "/scan/root/B.txt", Error: "permission denied"}}

	var buf bytes.Buffer
	require.NoError(t, (&PlainFormatter{}).Format(&buf, r))
	assert.Contains(t, buf.String(), "Error moving file /scan/root/B.txt: permission denied")
}
