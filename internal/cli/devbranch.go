// devbranch.go implements the devbranch binary: Git feature-branch
// scaffolding from an issue number and title.
//
// Orchestration steps:
//  1. Validate the two positional arguments and the repository state
//  2. Let the user pick the base branch from the local branch list
//  3. Derive the new branch name ({prefix}/{number}_{slug})
//  4. Confirm, then checkout base, pull, create and checkout the branch
//  5. Optionally push, guarded by a second confirmation
//  6. Compose the commit-reference message (and issue link, if configured)
//     and copy it to the clipboard
//
// Cancelling at any prompt aborts cleanly: a branch that was already
// created is deleted again, so no partial state is left behind.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/devkit/internal/clipboard"
	"github.com/mmr-tortoise/devkit/internal/config"
	"github.com/mmr-tortoise/devkit/internal/gitrepo"
	"github.com/mmr-tortoise/devkit/internal/model"
	"github.com/mmr-tortoise/devkit/internal/prompt"
)

// NewDevBranchCommand creates the devbranch root command.
func NewDevBranchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devbranch <issue-number> <issue-title>",
		Short: "Create a Git feature branch for an issue",
		Long: `Create a new Git branch for an issue and optionally push it to the remote.

The branch name is derived from the issue number and title:
{prefix}/{issue-number}_{slugified-title}, with the prefix taken from
BRANCH_PREFIX (default "issues").

Examples:
  devbranch 123 "Fix login bug"
  BRANCH_PREFIX=feature devbranch 7 "Add search"`,

		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return model.NewCLIError(model.ExitUsageError,
					"both issue-number and issue-title are required")
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDevBranch(cmd, args[0], args[1])
		},
	}

	return configureRoot(cmd)
}

// runDevBranch is the main orchestration function for the devbranch command.
func runDevBranch(cmd *cobra.Command, numberArg, title string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	number, err := strconv.Atoi(numberArg)
	if err != nil {
		return model.WrapCLIError(model.ExitUsageError,
			fmt.Sprintf("issue-number must be a positive integer, got %q", numberArg), err)
	}
	request := model.BranchRequest{IssueNumber: number, IssueTitle: title}
	if err := request.Validate(); err != nil {
		return model.WrapCLIError(model.ExitUsageError, "invalid arguments", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load configuration", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}
	folder := filepath.Base(cwd)
	fmt.Fprintf(out, "Located in directory: %s\n\n", folder)

	// Everything below has side effects, so the repository check comes first.
	if !gitrepo.IsRepository(cwd) {
		return model.NewCLIError(model.ExitGeneralError, "not inside a Git repository")
	}

	branches, err := gitrepo.Branches(cwd)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Available branches:")
	for i, b := range branches {
		marker := ""
		if b.IsCurrent {
			marker = " *"
		}
		fmt.Fprintf(out, "%d. %s%s\n", i+1, b.Name, marker)
	}

	p := prompt.New(cmd.InOrStdin(), out)
	idx, err := p.SelectIndex(ctx, "\nSelect the branch number to create the new branch from", len(branches))
	if err != nil {
		return err
	}
	base := branches[idx].Name

	target := gitrepo.BranchName(cfg.BranchPrefix, request.IssueNumber, request.IssueTitle)
	fmt.Fprintf(out, "\nWill create branch %s from %s\n", target, base)

	decision, err := p.Confirm(ctx, "Do you wish to proceed?")
	if err != nil {
		return err
	}
	if decision == prompt.Cancel {
		fmt.Fprintln(out, "Aborted, nothing created.")
		return nil
	}

	if err := gitrepo.Checkout(cwd, base); err != nil {
		return err
	}
	// A pull failure (offline, no upstream) should not block branching
	// from the local state.
	if err := gitrepo.Pull(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: pull failed, branching from local state: %v\n", err)
	}

	if err := gitrepo.CreateBranch(cwd, target); err != nil {
		return err
	}

	// From here on a cancellation must remove the branch again.
	rollback := func() {
		VerboseLog("Rolling back branch %s", target)
		_ = gitrepo.Checkout(cwd, base)
		_ = gitrepo.DeleteBranch(cwd, target)
	}

	if err := gitrepo.Checkout(cwd, target); err != nil {
		rollback()
		return err
	}
	fmt.Fprintf(out, "Created and checked out %s\n\n", target)

	decision, err = p.Confirm(ctx, fmt.Sprintf("Push the new branch to %s?", cfg.GitRemote))
	if err != nil {
		rollback()
		return err
	}
	if decision == prompt.Cancel {
		rollback()
		fmt.Fprintln(out, "Branch discarded.")
		return nil
	}

	if err := gitrepo.Push(cwd, cfg.GitRemote, target); err != nil {
		return err
	}

	message := gitrepo.ReferenceMessage(cfg.RequestPrefix, request.IssueNumber, request.IssueTitle)
	link := gitrepo.IssueLink(cfg.IssueBasePath, folder, request.IssueNumber)
	description := gitrepo.LinkDescription(cfg.BranchPrefix, request.IssueNumber, link)

	clip := composeReference(message, description)
	if err := clipboard.Copy(clip); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
	}

	fmt.Fprintf(out, "Copied the following to the clipboard:\n\n%s\n", clip)
	return nil
}

// composeReference joins the commit-reference message and the optional
// Markdown link description into the clipboard payload.
func composeReference(message, description string) string {
	if description == "" {
		return message
	}
	return strings.Join([]string{message, description}, "\n")
}
