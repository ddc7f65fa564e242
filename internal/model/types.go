package model

import "fmt"

// Password length constraints. A password is split across the enabled
// character classes, so the length must be large enough and evenly
// divisible to give every class a share.
const (
	// MinimumPasswordLength is the shortest accepted password length.
	MinimumPasswordLength = 8

	// PasswordLengthMultiple is the required divisor for password lengths.
	PasswordLengthMultiple = 4
)

// PasswordPolicy describes one password generation request: the desired
// length and the set of enabled character classes. The produced string is
// consumed immediately (printed and copied to the clipboard) and never
// stored.
type PasswordPolicy struct {
	// Length is the exact length of the generated password.
	Length int

	// Lower enables lowercase ASCII letters.
	Lower bool

	// Upper enables uppercase ASCII letters.
	Upper bool

	// Digits enables decimal digits.
	Digits bool

	// Symbols enables ASCII punctuation characters.
	Symbols bool
}

// DefaultPasswordPolicy returns a policy with all four character classes
// enabled, matching the CLI default.
func DefaultPasswordPolicy(length int) PasswordPolicy {
	return PasswordPolicy{
		Length:  length,
		Lower:   true,
		Upper:   true,
		Digits:  true,
		Symbols: true,
	}
}

// EnabledClassCount returns how many character classes the policy enables.
func (p PasswordPolicy) EnabledClassCount() int {
	n := 0
	for _, enabled := range []bool{p.Lower, p.Upper, p.Digits, p.Symbols} {
		if enabled {
			n++
		}
	}
	return n
}

// Validate checks the policy against the documented constraints:
// the length must be at least MinimumPasswordLength, divisible by
// PasswordLengthMultiple, and at least one character class must be enabled.
func (p PasswordPolicy) Validate() error {
	if p.Length < MinimumPasswordLength {
		return fmt.Errorf("password length must be at least %d, got %d", MinimumPasswordLength, p.Length)
	}
	if p.Length%PasswordLengthMultiple != 0 {
		return fmt.Errorf("password length must be divisible by %d (8, 12, 16, 20, ...), got %d", PasswordLengthMultiple, p.Length)
	}
	if p.EnabledClassCount() == 0 {
		return fmt.Errorf("at least one character class must be enabled")
	}
	return nil
}

// BranchRequest holds the two positional arguments of the devbranch tool.
// It is ephemeral — it exists only for the duration of one invocation.
type BranchRequest struct {
	// IssueNumber is the tracker issue number. Must be positive.
	IssueNumber int

	// IssueTitle is the free-text issue title used to derive the branch slug.
	IssueTitle string
}

// Validate checks that the request carries a positive issue number and a
// non-empty title.
func (r BranchRequest) Validate() error {
	if r.IssueNumber <= 0 {
		return fmt.Errorf("issue number must be a positive integer, got %d", r.IssueNumber)
	}
	if r.IssueTitle == "" {
		return fmt.Errorf("issue title must not be empty")
	}
	return nil
}

// Branch represents a single local Git branch as parsed from
// `git branch --list` output.
type Branch struct {
	// Name is the short branch name (e.g., "main").
	Name string

	// IsCurrent is true for the currently checked-out branch
	// (marked with "*" in the git output).
	IsCurrent bool
}

// InterpreterVersion describes one installed interpreter alternative,
// enumerated read-only from OS state. Switching the active version happens
// via the external alternatives tool, never by mutating this value.
type InterpreterVersion struct {
	// Label is the short version label extracted from the path (e.g., "8.3").
	Label string

	// Path is the filesystem path of the interpreter binary.
	Path string

	// Active is true if this version is the currently selected alternative.
	Active bool
}
