package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/devkit/internal/model"
)

// IsRepository reports whether dir is inside a Git working tree.
// Uses `git rev-parse --is-inside-work-tree`, which also covers worktrees
// and subdirectories, unlike checking for a .git folder.
func IsRepository(dir string) bool {
	output, err := runGit(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(output) == "true"
}

// Branches returns all local branches. The currently checked-out branch is
// flagged via the "*" marker in `git branch --list` output.
func Branches(dir string) ([]model.Branch, error) {
	output, err := runGit(dir, "branch", "--list")
	if err != nil {
		return nil, err
	}

	branches := ParseBranchList(output)
	if len(branches) == 0 {
		return nil, model.NewCLIError(model.ExitNotFound, "no local branches found")
	}
	return branches, nil
}

// ParseBranchList parses `git branch --list` output into Branch values.
// Each line is a branch name, with the current branch prefixed by "* ".
func ParseBranchList(output string) []model.Branch {
	var branches []model.Branch
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		current := strings.HasPrefix(line, "*")
		name := strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if name == "" {
			continue
		}
		branches = append(branches, model.Branch{Name: name, IsCurrent: current})
	}
	return branches
}

// Checkout switches the working tree to the given branch.
func Checkout(dir, branch string) error {
	_, err := runGit(dir, "checkout", branch)
	return err
}

// Pull updates the current branch from its upstream.
func Pull(dir string) error {
	_, err := runGit(dir, "pull")
	return err
}

// CreateBranch creates a new branch at the current HEAD without
// checking it out.
func CreateBranch(dir, name string) error {
	_, err := runGit(dir, "branch", name)
	return err
}

// DeleteBranch force-deletes a local branch. Used to roll back a branch
// that was created during a run the user then cancelled.
func DeleteBranch(dir, name string) error {
	_, err := runGit(dir, "branch", "-D", name)
	return err
}

// Push publishes the branch to the given remote and sets its upstream.
func Push(dir, remote, branch string) error {
	_, err := runGit(dir, "push", "-u", remote, branch)
	return err
}

// runGit executes a git command with the given arguments in the specified
// directory.
//
// It captures both stdout and stderr. On success it returns the stdout
// output. On failure it returns a model.CLIError with ExitExternalTool,
// including the stderr output in the error message for diagnostics.
//
// The dir parameter is passed via the -C flag, which causes git to change
// to that directory before doing anything else — safer than mutating the
// process working directory.
func runGit(dir string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", dir}, args...)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command("git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitExternalTool, message, err)
	}

	return stdout.String(), nil
}
