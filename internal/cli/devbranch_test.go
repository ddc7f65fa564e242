package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComposeReference verifies the clipboard payload with and without a
// configured issue link.
func TestComposeReference(t *testing.T) {
	assert.Equal(t, "refs: #123 Fix login bug",
		composeReference("refs: #123 Fix login bug", ""))

	assert.Equal(t,
		"refs: #123 Fix login bug\nBased on issues [#123](https://example.com/user/myproject/issues/123)",
		composeReference(
			"refs: #123 Fix login bug",
			"Based on issues [#123](https://example.com/user/myproject/issues/123)"))
}
