package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nodegen/schema"
)

type staticGenerator struct {
	output string
}

func (g *staticGenerator) GenerateFile(_ *schema.Schema) string { return g.output }
func (g *staticGenerator) FileExtension() string                { return "rs" }
func (g *staticGenerator) Language() string                     { return "rust" }

func TestCheckFileUpToDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.rs")
	require.NoError(t, os.WriteFile(path, []byte("pub enum Node {}\n"), 0644))

	result, err := CheckFile(&staticGenerator{output: "pub enum Node {}\n"}, &schema.Schema{}, path)
	require.NoError(t, err)

	assert.True(t, result.UpToDate)
	assert.Equal(t, path, result.Path)
	assert.Empty(t, result.Reason)
}

func TestCheckFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.rs")

	result, err := CheckFile(&staticGenerator{output: "anything"}, &schema.Schema{}, path)
	require.NoError(t, err)

	assert.False(t, result.UpToDate)
	assert.Equal(t, "output file does not exist", result.Reason)
}

func TestCheckFileContentDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.rs")
	require.NoError(t, os.WriteFile(path, []byte("line one\nstale\n"), 0644))

	result, err := CheckFile(&staticGenerator{output: "line one\nfresh\n"}, &schema.Schema{}, path)
	require.NoError(t, err)

	assert.False(t, result.UpToDate)
	assert.Equal(t, "content differs starting at line 2", result.Reason)
}

func TestCheckFileTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "node.rs")
	require.NoError(t, os.WriteFile(path, []byte("line one"), 0644))

	result, err := CheckFile(&staticGenerator{output: "line one\nline two"}, &schema.Schema{}, path)
	require.NoError(t, err)

	assert.False(t, result.UpToDate)
	assert.Equal(t, "line count differs: have 1, want 2", result.Reason)
}
