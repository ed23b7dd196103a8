package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgeddes/dupfind/pkg/dupfind/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree creates files under root from a map of relative path to content.
func buildTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func build(t *testing.T, root string, opts Options) *Index {
	t.Helper()
	opts.Root = root
	ix, err := NewBuilder(opts).Build(context.Background())
	require.NoError(t, err)
	return ix
}

func TestBuild_GroupsIdenticalContent(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"A.txt": "hello",
		"B.txt": "hello",
		"C.txt": "world",
	})

	ix := build(t, root, Options{})

	groups := ix.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, []string{
		filepath.Join(root, "A.txt"),
		filepath.Join(root, "B.txt"),
	}, groups[0].Paths)
	assert.Equal(t, filepath.Join(root, "A.txt"), groups[0].Keeper())
	assert.Equal(t, []string{filepath.Join(root, "B.txt")}, groups[0].Duplicates())

	assert.Equal(t, 1, ix.Singletons())
	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, int64(3), ix.Stats.FilesProcessed)
	assert.Equal(t, int64(3), ix.Stats.FilesHashed)
}

func TestBuild_SameContentAcrossDepths(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"one.dat":              "payload",
		"deep/nested/two.dat":  "payload",
		"deep/other/three.dat": "payload",
	})

	ix := build(t, root, Options{})

	groups := ix.Groups()
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Paths, 3)
}

func TestBuild_DifferentContentNeverShareKey(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"a/report.txt": "first version",
		"b/report.txt": "second version",
	})

	ix := build(t, root, Options{})

	// Same basename, different content: two separate singletons.
	assert.Empty(t, ix.Groups())
	assert.Equal(t, 2, ix.Singletons())
}

func TestBuild_EmptyFolder(t *testing.T) {
	ix := build(t, t.TempDir(), Options{})

	assert.Zero(t, ix.Len())
	assert.Empty(t, ix.Groups())
	assert.Zero(t, ix.Stats.FilesProcessed)
}

func TestBuild_ExtensionFilteredFilesNotCounted(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"doc.pdf":  "x",
		"note.txt": "y",
	})

	ix := build(t, root, Options{Walk: walker.Options{Extensions: []string{"pdf"}}})

	assert.Equal(t, int64(1), ix.Stats.FilesProcessed)
	assert.Equal(t, int64(1), ix.Stats.FilesHashed)
}

func TestBuild_OversizeFilesCountedButNotHashed(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"small.txt": "tiny",
		"big.txt":   string(make([]byte, 8192)),
	})

	ix := build(t, root, Options{Walk: walker.Options{MaxSize: 1024}})

	assert.Equal(t, int64(2), ix.Stats.FilesProcessed)
	assert.Equal(t, int64(1), ix.Stats.FilesHashed)
	assert.Equal(t, 1, ix.Singletons())
}

func TestBuild_AlgorithmSelectable(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{"a.txt": "hello"})

	md5ix := build(t, root, Options{Algorithm: "md5"})
	shaix := build(t, root, Options{Algorithm: "sha256"})

	require.Equal(t, 1, md5ix.Len())
	require.Equal(t, 1, shaix.Len())

	_, ok := md5ix.Lookup("5d41402abc4b2a76b9719d911017c592")
	assert.True(t, ok)
	_, ok = shaix.Lookup("5d41402abc4b2a76b9719d911017c592")
	assert.False(t, ok)
}

func TestBuild_UnknownAlgorithmFailsFast(t *testing.T) {
	_, err := NewBuilder(Options{Root: t.TempDir(), Algorithm: "bogus"}).Build(context.Background())
	assert.Error(t, err)
}

func TestBuild_CancelledContextAbortsWithError(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"a.txt": "1",
		"b.txt": "2",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder(Options{Root: root}).Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_InvalidRoot(t *testing.T) {
	_, err := NewBuilder(Options{Root: filepath.Join(t.TempDir(), "missing")}).Build(context.Background())
	assert.ErrorIs(t, err, walker.ErrNotDirectory)
}

func TestBuild_SessionIDAssigned(t *testing.T) {
	ix := build(t, t.TempDir(), Options{})
	assert.NotEmpty(t, ix.SessionID)
}

func TestProcessed_SnapshotsDuringBuild(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"a.txt": "1",
		"b.txt": "2",
		"c.txt": "3",
	})

	b := NewBuilder(Options{Root: root})
	assert.Zero(t, b.Processed())

	_, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.Processed())
}

func TestGroup_WastedBytes(t *testing.T) {
	g := Group{Digest: "d", Paths: []string{"a", "b", "c"}, FileSize: 10}
	assert.Equal(t, int64(20), g.WastedBytes())
}
