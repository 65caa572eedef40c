package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTree builds:
//
//	root/example-1.txt
//	root/example-2.txt
//	root/sub_dir/sub-example-1.txt
//	root/sub_dir/sub-example-2.txt
func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub_dir"), 0o755))
	for _, p := range []string{
		"example-1.txt",
		"example-2.txt",
		"sub_dir/sub-example-1.txt",
		"sub_dir/sub-example-2.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(root, p), []byte("content\n"), 0o644))
	}
	return root
}

func TestCollectGlob(t *testing.T) {
	root := fixtureTree(t)

	files, err := New([]string{filepath.Join(root, "**", "*.txt")}).Collect()
	require.NoError(t, err)
	assert.Len(t, files, 4)
	assert.Contains(t, files, filepath.Join(root, "sub_dir", "sub-example-1.txt"))
}

func TestCollectDirectoryRecurses(t *testing.T) {
	root := fixtureTree(t)

	files, err := New([]string{root}).Collect()
	require.NoError(t, err)
	assert.Len(t, files, 4)
	assert.Contains(t, files, filepath.Join(root, "example-1.txt"))
	assert.Contains(t, files, filepath.Join(root, "sub_dir", "sub-example-2.txt"))
}

func TestCollectSubDirectoryOnly(t *testing.T) {
	root := fixtureTree(t)

	files, err := New([]string{filepath.Join(root, "sub_dir")}).Collect()
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.NotContains(t, files, filepath.Join(root, "example-1.txt"))
}

func TestCollectSingleFile(t *testing.T) {
	root := fixtureTree(t)
	path := filepath.Join(root, "example-1.txt")

	files, err := New([]string{path}).Collect()
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectMaxDepth(t *testing.T) {
	root := fixtureTree(t)

	files, err := New([]string{root}).MaxDepth(0).Collect()
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.NotContains(t, files, filepath.Join(root, "sub_dir", "sub-example-1.txt"))
}

func TestCollectSkipsHiddenByDefault(t *testing.T) {
	root := fixtureTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".secret"), []byte("x\n"), 0o644))

	files, err := New([]string{root}).Collect()
	require.NoError(t, err)
	assert.NotContains(t, files, filepath.Join(root, ".secret"))

	files, err = New([]string{root}).IncludeHidden(true).Collect()
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(root, ".secret"))
}

func TestCollectHonorsGitignore(t *testing.T) {
	root := fixtureTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("sub_dir/\nexample-2.txt\n"), 0o644))

	files, err := New([]string{root}).Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(root, "example-1.txt")}, files)

	files, err = New([]string{root}).NoIgnore(true).Collect()
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

func TestCollectReportsMissingQuery(t *testing.T) {
	_, err := New([]string{"/does/not/exist-anywhere"}).Collect()
	assert.Error(t, err)
}
