package backup

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/devkit/internal/model"
)

// ManifestFileName is the manifest written at the backup location root
// after every run.
const ManifestFileName = "backup-manifest.yml"

// WriteManifest serializes the run summary as YAML into the backup
// location. The manifest lives inside the destination tree, so it travels
// with the backup itself.
func WriteManifest(backupLocation string, summary *model.BackupSummary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to serialize backup manifest: %w", err)
	}

	header := fmt.Sprintf("# Backup run %s\n# Auto-generated - overwritten on every run\n", summary.RunID)

	path := filepath.Join(backupLocation, ManifestFileName)
	if err := os.WriteFile(path, []byte(header+string(data)), 0o644); err != nil {
		return fmt.Errorf("failed to write backup manifest %s: %w", path, err)
	}
	return nil
}
