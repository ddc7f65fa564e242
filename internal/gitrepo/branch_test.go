package gitrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlugifyTitle verifies lowercasing, collapsing of non-alphanumeric
// runs, and trimming of edge underscores.
func TestSlugifyTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple", "Fix login bug", "fix_login_bug"},
		{"punctuation", "Add OAuth2 / SSO!", "add_oauth2_sso"},
		{"ampersand and pipe", "Users & Groups | cleanup", "users_groups_cleanup"},
		{"multiple spaces", "a   b", "a_b"},
		{"leading and trailing junk", "  (WIP) tidy up  ", "wip_tidy_up"},
		{"already clean", "refactor", "refactor"},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlugifyTitle(tt.title))
		})
	}
}

// TestBranchName checks the derived branch name format with the default
// and a custom prefix.
func TestBranchName(t *testing.T) {
	assert.Equal(t, "issues/123_fix_login_bug", BranchName("issues", 123, "Fix login bug"))
	assert.Equal(t, "feature/7_add_search", BranchName("feature", 7, "Add search"))
}

// TestReferenceMessage checks the commit-reference line format.
func TestReferenceMessage(t *testing.T) {
	assert.Equal(t, "refs: #123 Fix login bug", ReferenceMessage("refs:", 123, "Fix login bug"))
}

// TestIssueLink verifies the composed issue URL, including trailing-slash
// normalization and the disabled case.
func TestIssueLink(t *testing.T) {
	assert.Equal(t,
		"https://example.com/user/myproject/issues/123",
		IssueLink("https://example.com/user", "myproject", 123))
	assert.Equal(t,
		"https://example.com/user/myproject/issues/123",
		IssueLink("https://example.com/user/", "myproject", 123))
	assert.Empty(t, IssueLink("", "myproject", 123))
}

// TestLinkDescription verifies the Markdown description line.
func TestLinkDescription(t *testing.T) {
	link := IssueLink("https://example.com/user", "myproject", 123)
	assert.Equal(t,
		"Based on issues [#123](https://example.com/user/myproject/issues/123)",
		LinkDescription("issues", 123, link))
	assert.Empty(t, LinkDescription("issues", 123, ""))
}

// TestParseBranchList parses `git branch --list` output with the current
// branch marker and surrounding whitespace.
func TestParseBranchList(t *testing.T) {
	output := "  develop\n* main\n  issues/42_fix_typo\n\n"

	branches := ParseBranchList(output)
	require.Len(t, branches, 3)

	assert.Equal(t, "develop", branches[0].Name)
	assert.False(t, branches[0].IsCurrent)

	assert.Equal(t, "main", branches[1].Name)
	assert.True(t, branches[1].IsCurrent)

	assert.Equal(t, "issues/42_fix_typo", branches[2].Name)
	assert.False(t, branches[2].IsCurrent)
}

// TestParseBranchList_Empty returns no branches for empty output.
func TestParseBranchList_Empty(t *testing.T) {
	assert.Empty(t, ParseBranchList(""))
	assert.Empty(t, ParseBranchList("\n\n"))
}
