package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAML_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLFormatter{}).Format(&buf, sampleResult()))

	var decoded yamlOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "/scan/root", decoded.Root)
	require.Len(t, decoded.Groups, 1)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", decoded.Groups[0].Digest)
	assert.Equal(t, int64(3), decoded.Stats.FilesProcessed)
}
