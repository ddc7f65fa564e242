package gitrepo

import (
	"fmt"
	"regexp"
	"strings"
)

// nonAlphanumeric matches runs of characters that cannot appear in a
// branch slug.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// SlugifyTitle normalizes a free-text issue title into a branch slug:
// lowercased, with every run of non-alphanumeric characters collapsed to a
// single underscore, and leading/trailing underscores trimmed.
//
//	"Fix login bug"  → "fix_login_bug"
//	"Add OAuth2 / SSO!" → "add_oauth2_sso"
func SlugifyTitle(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "_")
	return strings.Trim(slug, "_")
}

// BranchName derives the branch name for an issue:
// {prefix}/{issue-number}_{slugified-title}.
func BranchName(prefix string, issueNumber int, issueTitle string) string {
	return fmt.Sprintf("%s/%d_%s", prefix, issueNumber, SlugifyTitle(issueTitle))
}

// ReferenceMessage composes the commit-reference line copied to the
// clipboard after a successful push: "{request-prefix} #{number} {title}".
func ReferenceMessage(requestPrefix string, issueNumber int, issueTitle string) string {
	return fmt.Sprintf("%s #%d %s", requestPrefix, issueNumber, issueTitle)
}

// IssueLink composes the issue URL from the configured base path, the
// current repository folder name, and the issue number:
// {base}/{folder}/issues/{number}. Returns the empty string when no base
// path is configured.
func IssueLink(basePath, folder string, issueNumber int) string {
	if basePath == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/issues/%d", strings.TrimRight(basePath, "/"), folder, issueNumber)
}

// LinkDescription composes the Markdown description line that accompanies
// the reference message when an issue base path is configured:
// "Based on {branch-prefix} [#{number}]({link})".
func LinkDescription(branchPrefix string, issueNumber int, link string) string {
	if link == "" {
		return ""
	}
	return fmt.Sprintf("Based on %s [#%d](%s)", branchPrefix, issueNumber, link)
}
