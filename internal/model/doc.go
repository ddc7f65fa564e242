// Package model defines the domain types and value objects shared by the
// devkit command-line tools.
//
// This package contains pure data structures with no external dependencies:
// password policies, branch requests, interpreter versions, and backup run
// results. Every entity is constructed, used once, and discarded within a
// single process invocation — there is no persistent state.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
