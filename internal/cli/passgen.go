// passgen.go implements the passgen binary: secure password generation.
//
// The tool validates the requested length (at least 8, divisible by 4),
// generates a random password from all four character classes, copies it to
// the clipboard best-effort, and prints it to stdout.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/devkit/internal/clipboard"
	"github.com/mmr-tortoise/devkit/internal/model"
	"github.com/mmr-tortoise/devkit/internal/password"
)

// passgenFlags holds the flag values for the passgen command.
type passgenFlags struct {
	length int // -l/--length: desired password length
}

// NewPassgenCommand creates the passgen root command.
func NewPassgenCommand() *cobra.Command {
	flags := &passgenFlags{}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate a strong random password",
		Long: fmt.Sprintf(`Generate a strong random password and copy it to the clipboard.

The length must be at least %d and divisible by %d (8, 12, 16, 20, ...).
The password draws from lowercase, uppercase, digit, and symbol characters,
with every class guaranteed to appear at least once.

Examples:
  passgen
  passgen --length 32`, model.MinimumPasswordLength, model.PasswordLengthMultiple),

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassgen(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.length, "length", "l", 20, "Length of the password")

	return configureRoot(cmd)
}

// runPassgen validates the policy, generates the password, and emits it.
func runPassgen(cmd *cobra.Command, flags *passgenFlags) error {
	policy := model.DefaultPasswordPolicy(flags.length)
	if err := policy.Validate(); err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid password length", err)
	}

	generated, err := password.Generate(policy)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "password generation failed", err)
	}

	// Clipboard failures are reported but never fatal — the password is
	// still printed below.
	if err := clipboard.Copy(generated); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), generated)
	return nil
}
