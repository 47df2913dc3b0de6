package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		ext  string
		want Label
		ok   bool
	}{
		{name: "python", ext: ".py", want: "Python", ok: true},
		{name: "uppercase_extension", ext: ".PY", want: "Python", ok: true},
		{name: "rust", ext: ".rs", want: "Rust", ok: true},
		{name: "jsx", ext: ".jsx", want: "JavaScript", ok: true},
		{name: "tsx", ext: ".tsx", want: "TypeScript", ok: true},
		{name: "csharp", ext: ".cs", want: "C#", ok: true},
		{name: "r_upper", ext: ".R", want: "R", ok: true},
		{name: "sql", ext: ".sql", want: "SQL", ok: true},
		{name: "unrecognized", ext: ".png", ok: false},
		{name: "empty", ext: "", ok: false},
		{name: "no_dot", ext: "py", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Lookup(tt.ext)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// ".h" is claimed by both the C++ and C definitions; the first declaration
// wins, so it must always resolve to C++.
func TestRegistry_FirstClaimWins(t *testing.T) {
	r := NewRegistry()

	label, ok := r.Lookup(".h")
	require.True(t, ok)
	assert.Equal(t, Label("C++"), label)

	// The rest of the C set is untouched by the collision.
	label, ok = r.Lookup(".c")
	require.True(t, ok)
	assert.Equal(t, Label("C"), label)
}

func TestLabel_FenceAndBanner(t *testing.T) {
	assert.Equal(t, "python", Label("Python").Fence())
	assert.Equal(t, "c++", Label("C++").Fence())
	assert.Equal(t, "PYTHON", Label("Python").Banner())
	assert.Equal(t, "JAVASCRIPT", Label("JavaScript").Banner())
}
