package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/devkit/internal/model"
)

// TestGenerate_InvalidLengths verifies that constraint violations fail with
// an error and produce no output.
func TestGenerate_InvalidLengths(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"below minimum", 7},
		{"not divisible by four", 10},
		{"zero", 0},
		{"negative", -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Generate(model.DefaultPasswordPolicy(tt.length))
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

// TestGenerate_Length checks that valid lengths produce exactly that many
// characters.
func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{8, 12, 16, 20, 32, 64} {
		out, err := Generate(model.DefaultPasswordPolicy(length))
		require.NoError(t, err)
		assert.Len(t, out, length)
	}
}

// TestGenerate_ClassUnion verifies that every character belongs to the
// union of enabled classes.
func TestGenerate_ClassUnion(t *testing.T) {
	union := Lowercase + Uppercase + Digits + Symbols

	out, err := Generate(model.DefaultPasswordPolicy(32))
	require.NoError(t, err)
	for _, ch := range out {
		assert.Contains(t, union, string(ch))
	}
}

// TestGenerate_EveryClassPresent checks the at-least-one-per-class
// guarantee across repeated runs.
func TestGenerate_EveryClassPresent(t *testing.T) {
	for i := 0; i < 50; i++ {
		out, err := Generate(model.DefaultPasswordPolicy(8))
		require.NoError(t, err)

		assert.True(t, strings.ContainsAny(out, Lowercase), "missing lowercase in %q", out)
		assert.True(t, strings.ContainsAny(out, Uppercase), "missing uppercase in %q", out)
		assert.True(t, strings.ContainsAny(out, Digits), "missing digit in %q", out)
		assert.True(t, strings.ContainsAny(out, Symbols), "missing symbol in %q", out)
	}
}

// TestGenerate_DisabledClassesExcluded verifies that disabled classes never
// contribute characters.
func TestGenerate_DisabledClassesExcluded(t *testing.T) {
	policy := model.PasswordPolicy{Length: 24, Lower: true, Digits: true}

	out, err := Generate(policy)
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(out, Uppercase), "unexpected uppercase in %q", out)
	assert.False(t, strings.ContainsAny(out, Symbols), "unexpected symbol in %q", out)
	assert.True(t, strings.ContainsAny(out, Lowercase))
	assert.True(t, strings.ContainsAny(out, Digits))
}

// TestGenerate_NotConstant is a sanity check that two runs differ. A 20
// character password colliding twice in a row would indicate a broken
// entropy source.
func TestGenerate_NotConstant(t *testing.T) {
	a, err := Generate(model.DefaultPasswordPolicy(20))
	require.NoError(t, err)
	b, err := Generate(model.DefaultPasswordPolicy(20))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
