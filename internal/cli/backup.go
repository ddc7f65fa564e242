// backup.go implements the backup binary: configuration-driven file backup.
//
// Categories, source paths, and the destination root all come from
// environment variables (optionally via a local .env file). Every configured
// item is attempted; failures are collected and reported at the end, and the
// process exits non-zero only when at least one item failed.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/devkit/internal/backup"
	"github.com/mmr-tortoise/devkit/internal/config"
	"github.com/mmr-tortoise/devkit/internal/model"
)

// backupFlags holds the flag values for the backup command.
type backupFlags struct {
	dryRun bool // --dry-run: report what would be copied without copying
}

// NewBackupCommand creates the backup root command.
func NewBackupCommand() *cobra.Command {
	flags := &backupFlags{}

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up configured files and folders",
		Long: `Back up configured files and folders into a destination tree organized
by category.

Configuration is environment-based (a local .env file is honored):
  BACKUP_LOCATION                     destination root (required)
  SYSTEM_SOURCE_PATHS                 comma-separated source paths
  SYSTEM_DESTINATION_FOLDER_NAME      category folder name
  VSCODE_SOURCE_PATHS / VSCODE_DESTINATION_FOLDER_NAME
  PROJECTS_SOURCE_PATHS / PROJECTS_DESTINATION_FOLDER_NAME
  DEPLOYMENT_SOURCE_PATHS / DEPLOYMENTS_DESTINATION_FOLDER_NAME

Every configured item is attempted even when earlier ones fail; a summary
of failures is printed at the end. A manifest of the run is written at the
backup location root.

Examples:
  backup
  backup --dry-run`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report what would be copied without copying")

	return configureRoot(cmd)
}

// runBackup loads the configuration, runs the engine, and reports.
func runBackup(cmd *cobra.Command, flags *backupFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load configuration", err)
	}

	out := cmd.OutOrStdout()
	engine := backup.NewEngine(cfg, out, flags.dryRun)

	summary, err := engine.Run(cmd.Context())
	if err != nil {
		return err
	}

	printBackupSummary(out, summary)

	if failures := summary.Failures(); len(failures) > 0 {
		return model.NewCLIError(model.ExitBackupIncomplete,
			fmt.Sprintf("%d of %d backup items failed", len(failures), summary.ItemCount()))
	}

	// An interrupt without failures is a clean cancellation (exit 0); the
	// engine already announced the abort.
	if !summary.Interrupted {
		fmt.Fprintln(out, "Completed all backup steps.")
	}
	return nil
}

// printBackupSummary writes the consolidated per-category results.
func printBackupSummary(out io.Writer, summary *model.BackupSummary) {
	fmt.Fprintf(out, "\nBackup run %s\n", summary.RunID)
	for _, cat := range summary.Categories {
		failed := 0
		for _, item := range cat.Items {
			if item.Failed() {
				failed++
			}
		}
		fmt.Fprintf(out, "  %-12s %d item(s), %d failed\n", cat.Name, len(cat.Items), failed)
		for _, item := range cat.Items {
			if item.Failed() {
				fmt.Fprintf(out, "    FAILED %s: %s\n", item.Source, item.Error)
			} else if item.Warning != "" {
				fmt.Fprintf(out, "    WARN   %s: %s\n", item.Source, item.Warning)
			}
		}
	}
}
