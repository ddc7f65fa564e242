// phpswitch.go implements the phpswitch binary: switching the active PHP
// interpreter via the OS alternatives tool.
//
// The tool enumerates the installed alternatives, shows the active version,
// and switches either to a version given as a positional argument or to one
// picked interactively by number. Switching to the already-active version
// is a no-op that exits 0.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/devkit/internal/alternatives"
	"github.com/mmr-tortoise/devkit/internal/model"
	"github.com/mmr-tortoise/devkit/internal/prompt"
)

// alternativeName is the update-alternatives entry this tool manages.
const alternativeName = "php"

// NewPHPSwitchCommand creates the phpswitch root command.
func NewPHPSwitchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phpswitch [version]",
		Short: "Switch between installed PHP versions",
		Long: `Switch between installed PHP versions using the OS alternatives tool.

Only versions already registered as alternatives can be selected. Without
an argument, the installed versions are listed for interactive selection.

Examples:
  phpswitch
  phpswitch 8.3`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			requested := ""
			if len(args) == 1 {
				requested = args[0]
			}
			return runPHPSwitch(cmd, requested)
		},
	}

	return configureRoot(cmd)
}

// runPHPSwitch enumerates versions, resolves the target, and switches.
func runPHPSwitch(cmd *cobra.Command, requested string) error {
	ctx := cmd.Context()

	paths, err := alternatives.List(ctx, alternativeName)
	if err != nil {
		return err
	}
	VerboseLog("Found %d alternative path(s)", len(paths))

	activePath, err := alternatives.Active(ctx, alternativeName)
	if err != nil {
		return err
	}

	versions := alternatives.BuildVersions(paths, activePath)
	if len(versions) == 0 {
		return model.NewCLIError(model.ExitNotFound,
			fmt.Sprintf("no %s versions found", alternativeName))
	}

	out := cmd.OutOrStdout()
	if active := activeVersion(versions); active != nil {
		fmt.Fprintf(out, "Active PHP version: %s (%s)\n", active.Label, active.Path)
	}

	target, err := resolveTarget(ctx, cmd, versions, requested)
	if err != nil {
		return err
	}

	if target.Active {
		fmt.Fprintf(out, "PHP %s is already active.\n", target.Label)
		return nil
	}

	if err := alternatives.Set(ctx, alternativeName, target.Path); err != nil {
		return err
	}

	// Re-query so the confirmation reflects the actual OS state, not just
	// the request.
	newActive, err := alternatives.Active(ctx, alternativeName)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Switched to PHP %s (%s).\n", alternatives.ExtractVersion(newActive), newActive)
	return nil
}

// resolveTarget picks the version to switch to, either from the positional
// argument or via an interactive numbered selection.
func resolveTarget(ctx context.Context, cmd *cobra.Command, versions []model.InterpreterVersion, requested string) (*model.InterpreterVersion, error) {
	out := cmd.OutOrStdout()

	if requested != "" {
		target := alternatives.Find(versions, requested)
		if target == nil {
			printVersionList(cmd, versions)
			return nil, model.NewCLIError(model.ExitNotFound,
				fmt.Sprintf("PHP version %s is not among the installed alternatives", requested))
		}
		return target, nil
	}

	fmt.Fprintln(out, "Installed PHP versions:")
	printVersionList(cmd, versions)

	p := prompt.New(cmd.InOrStdin(), out)
	idx, err := p.SelectIndex(ctx, "Select the PHP version to switch to (by number)", len(versions))
	if err != nil {
		return nil, err
	}
	return &versions[idx], nil
}

// printVersionList writes the numbered version list, marking the active one.
func printVersionList(cmd *cobra.Command, versions []model.InterpreterVersion) {
	out := cmd.OutOrStdout()
	for i, v := range versions {
		marker := ""
		if v.Active {
			marker = " (active)"
		}
		fmt.Fprintf(out, "%d. PHP %s (%s)%s\n", i+1, v.Label, v.Path, marker)
	}
}

// activeVersion returns the active entry, or nil when none is flagged.
func activeVersion(versions []model.InterpreterVersion) *model.InterpreterVersion {
	for i := range versions {
		if versions[i].Active {
			return &versions[i]
		}
	}
	return nil
}
