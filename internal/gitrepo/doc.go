// Package gitrepo provides the Git operations used by the devbranch tool.
//
// All Git operations are performed via os/exec calls to the git binary,
// rather than using a Git library like go-git. This approach:
//   - Avoids CGO dependencies (libgit2)
//   - Uses the exact same Git behavior the user sees in their terminal
//
// The package also contains the pure branch-naming helpers: title
// slugification, derived branch names, and the composed commit-reference
// message and issue link.
package gitrepo
