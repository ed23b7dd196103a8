package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleResult returns a result with one duplicate group and one move.
func sampleResult() *Result {
	return &Result{
		Root:      "/scan/root",
		SessionID: "3f1d9a66-0000-0000-0000-000000000000",
		Algorithm: "md5",
		Groups: []GroupInfo{
			{
				Digest:        "5d41402abc4b2a76b9719d911017c592",
				Paths:         []string{"/scan/root/A.txt", "/scan/root/B.txt"},
				FileSize:      5,
				FileSizeHuman: "5 B",
			},
		},
		Stats: ScanStats{
			FilesProcessed:  3,
			FilesHashed:     3,
			DuplicateGroups: 1,
			Singletons:      1,
			WastedBytes:     5,
			Elapsed:         12 * time.Millisecond,
		},
		Moves: []MoveInfo{
			{Source: "/scan/root/B.txt", Dest: "/scan/root/dup/B.txt"},
		},
	}
}

func TestRegistry_GetKnownFormatters(t *testing.T) {
	for _, name := range []string{"plain", "pretty", "json", "yaml"} {
		t.Run(name, func(t *testing.T) {
			f, err := Get(name)
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestRegistry_UnknownFormatter(t *testing.T) {
	_, err := Get("csv")
	assert.Error(t, err)
}

func TestRegistry_Available(t *testing.T) {
	available := Available()
	assert.Contains(t, available, "plain")
	assert.Contains(t, available, "json")
	assert.IsIncreasing(t, available)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register("x", func() Formatter { return &PlainFormatter{} })
	reg.Register("x", func() Formatter { return &JSONFormatter{} })

	f, err := reg.Get("x")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, f)
}

// All formatters must be pure: rendering the same result twice gives
// identical bytes.
func TestFormat_Idempotent(t *testing.T) {
	r := sampleResult()
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			f, err := Get(name)
			require.NoError(t, err)

			var first, second bytes.Buffer
			require.NoError(t, f.Format(&first, r))
			require.NoError(t, f.Format(&second, r))
			assert.Equal(t, first.String(), second.String())
		})
	}
}
