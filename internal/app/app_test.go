package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwils/scribe/internal/config"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func run(t *testing.T, cfg config.Config) (Summary, string) {
	t.Helper()
	summary, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	return summary, string(data)
}

func TestRun_SingleRecognizedFile(t *testing.T) {
	root := writeTree(t, map[string]string{"main.py": "print(1)"})

	summary, doc := run(t, config.Default(root))

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 1, summary.Languages)
	assert.Equal(t, filepath.Join(root, filepath.Base(root)+".codebase.md"), summary.OutputPath)

	assert.Contains(t, doc, "PYTHON")
	assert.Contains(t, doc, "main.py\n"+root+"\n```python\nprint(1)\n```")
	assert.Equal(t, 1, strings.Count(doc, "main.py"))
}

func TestRun_ExcludedDirNeverAppears(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app.js":              "console.log(1)",
		"node_modules/lib.js": "module.exports = {}",
	})

	_, doc := run(t, config.Default(root))

	assert.Equal(t, 1, strings.Count(doc, "```javascript"))
	assert.Contains(t, doc, "app.js")
	assert.NotContains(t, doc, "lib.js")
	assert.NotContains(t, doc, "node_modules")
}

func TestRun_UnrecognizedFileCreatesNoSection(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.py":   "print(1)",
		"image.png": "not really a png",
	})

	summary, doc := run(t, config.Default(root))

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 1, summary.Skipped)
	assert.NotContains(t, doc, "image.png")
}

// The larger language comes first.
func TestRun_LanguagesOrderedByVolume(t *testing.T) {
	root := writeTree(t, map[string]string{
		"small.py": strings.Repeat("#", 50),
		"big.rs":   strings.Repeat("/", 100),
	})

	_, doc := run(t, config.Default(root))

	rs := strings.Index(doc, "RUST")
	py := strings.Index(doc, "PYTHON")
	require.NotEqual(t, -1, rs)
	require.NotEqual(t, -1, py)
	assert.Less(t, rs, py)
}

func TestRun_Idempotent(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.py":     "print(1)",
		"sub/util.rs": "fn main() {}",
		"app.js":      "console.log(1)",
	})
	cfg := config.Default(root)

	_, first := run(t, cfg)
	_, second := run(t, cfg)

	assert.Equal(t, first, second)
}

// A second run must not swallow the manifest produced by the first: the
// output file excludes itself by name.
func TestRun_OutputFileNotReingested(t *testing.T) {
	root := writeTree(t, map[string]string{"main.py": "print(1)"})
	cfg := config.Default(root)

	first, _ := run(t, cfg)
	second, _ := run(t, cfg)

	assert.Equal(t, first.Files, second.Files)
}

func TestRun_WriteFailureIsFatal(t *testing.T) {
	root := writeTree(t, map[string]string{"main.py": "print(1)"})
	cfg := config.Default(root)
	cfg.OutputPath = filepath.Join(root, "missing", "out.codebase.md")

	_, err := Run(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRun_UnreadableRootIsFatal(t *testing.T) {
	cfg := config.Default(filepath.Join(t.TempDir(), "nope"))
	_, err := Run(context.Background(), cfg)
	assert.Error(t, err)
}
