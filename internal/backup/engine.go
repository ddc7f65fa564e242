package backup

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mmr-tortoise/devkit/internal/config"
	"github.com/mmr-tortoise/devkit/internal/model"
)

// Engine runs one backup pass over the configured categories.
//
// The engine is single-shot: build it, call Run once, inspect the summary.
// Failures local to one item are recorded in the summary and never abort
// the remaining items; only an unset backup location aborts before any
// side effect.
type Engine struct {
	cfg    *config.Config
	out    io.Writer
	dryRun bool

	// elevate runs a command through sudo. Swapped out in tests.
	elevate func(ctx context.Context, args ...string) error

	// newRunID produces the manifest run identifier. Swapped out in tests.
	newRunID func() string
}

// NewEngine builds an Engine for the given configuration. Progress and
// per-item errors are written to out as they happen. With dryRun set, the
// engine reports what it would copy without touching the destination.
func NewEngine(cfg *config.Config, out io.Writer, dryRun bool) *Engine {
	return &Engine{
		cfg:      cfg,
		out:      out,
		dryRun:   dryRun,
		elevate:  sudoRun,
		newRunID: newRunID,
	}
}

// Run executes the backup: simple categories first, then projects, then
// deployments, then the manifest. The context is checked between items so
// an interrupt aborts the remaining queue immediately. The returned summary
// is always non-nil on a started run, even when interrupted.
func (e *Engine) Run(ctx context.Context) (*model.BackupSummary, error) {
	if e.cfg.BackupLocation == "" {
		return nil, model.NewCLIError(model.ExitUsageError, "BACKUP_LOCATION is not set")
	}

	summary := &model.BackupSummary{
		RunID:     e.newRunID(),
		StartedAt: time.Now().UTC(),
	}

	e.runCategories(ctx, summary)

	if !e.dryRun {
		if err := WriteManifest(e.cfg.BackupLocation, summary); err != nil {
			// A manifest failure is recorded like any other item failure.
			summary.Categories = append(summary.Categories, model.BackupCategoryResult{
				Name: "MANIFEST",
				Items: []model.BackupItemResult{{
					Source:      ManifestFileName,
					Destination: filepath.Join(e.cfg.BackupLocation, ManifestFileName),
					Error:       err.Error(),
				}},
			})
			fmt.Fprintf(e.out, "Error writing backup manifest: %v\n", err)
		}
	}

	summary.FinishedAt = time.Now().UTC()
	return summary, nil
}

// runCategories walks every configured category in order, stopping early
// when the context is cancelled.
func (e *Engine) runCategories(ctx context.Context, summary *model.BackupSummary) {
	for _, spec := range e.cfg.Simple {
		if spec.IsEmpty() {
			continue
		}
		if e.cancelled(ctx, summary) {
			return
		}
		summary.Categories = append(summary.Categories, e.runSimple(ctx, spec, summary))
	}

	if !e.cfg.Projects.IsEmpty() {
		if e.cancelled(ctx, summary) {
			return
		}
		summary.Categories = append(summary.Categories, e.runProjects(ctx, e.cfg.Projects, summary))
	}

	if !e.cfg.Deployments.IsEmpty() {
		if e.cancelled(ctx, summary) {
			return
		}
		summary.Categories = append(summary.Categories, e.runDeployments(ctx, e.cfg.Deployments, summary))
	}
}

// runSimple copies each source of a flat category directly into the
// category's destination folder.
func (e *Engine) runSimple(ctx context.Context, spec model.BackupSpec, summary *model.BackupSummary) model.BackupCategoryResult {
	result := model.BackupCategoryResult{Name: spec.Name}

	destDir, err := e.categoryDir(ctx, spec)
	if err != nil {
		// Destination unavailable: every item of the category fails by name.
		for _, src := range spec.SourcePaths {
			result.Items = append(result.Items, model.BackupItemResult{
				Source:      src,
				Destination: destDir,
				Error:       err.Error(),
			})
		}
		fmt.Fprintf(e.out, "Error in %s backup: %v\n", spec.Name, err)
		return result
	}

	for _, src := range spec.SourcePaths {
		if e.cancelled(ctx, summary) {
			return result
		}
		dst := filepath.Join(destDir, filepath.Base(src))
		result.Items = append(result.Items, e.copyItem(spec.Name, src, dst))
	}
	return result
}

// runProjects backs up each project's environment file and editor settings.
// The project sources act as markers: the project tree itself is under
// version control, so only its unversioned companions are copied.
func (e *Engine) runProjects(ctx context.Context, spec model.BackupSpec, summary *model.BackupSummary) model.BackupCategoryResult {
	result := model.BackupCategoryResult{Name: spec.Name}

	projectsDir, err := e.categoryDir(ctx, spec)
	if err != nil {
		for _, src := range spec.SourcePaths {
			result.Items = append(result.Items, model.BackupItemResult{
				Source:      src,
				Destination: projectsDir,
				Error:       err.Error(),
			})
		}
		fmt.Fprintf(e.out, "Error in %s backup: %v\n", spec.Name, err)
		return result
	}

	for _, project := range spec.SourcePaths {
		if e.cancelled(ctx, summary) {
			return result
		}

		projectDst := filepath.Join(projectsDir, ProjectName(project))
		if err := e.ensureDir(ctx, projectDst); err != nil {
			result.Items = append(result.Items, model.BackupItemResult{
				Source:      project,
				Destination: projectDst,
				Error:       err.Error(),
			})
			fmt.Fprintf(e.out, "Unable to back up %s: %v\n", project, err)
			continue
		}

		// Environment file: first existing candidate wins (.env before .env.rb).
		if envName := EnvFileFor(project, e.cfg.ProjectEnvFiles); envName != "" {
			src := filepath.Join(project, envName)
			dst := filepath.Join(projectDst, envName)
			result.Items = append(result.Items, e.copyItem(spec.Name, src, dst))
		}

		// Editor settings folder, looked up at the project root (the parent
		// directory for api/frontend/backend component folders).
		root := ProjectRoot(project)
		srcSettings := filepath.Join(root, ".vscode")
		if info, err := os.Stat(srcSettings); err == nil && info.IsDir() {
			owner := filepath.Base(root)
			dstSettings := filepath.Join(projectsDir, owner, ".vscode")
			result.Items = append(result.Items, e.copyEditorSettings(ctx, spec.Name, srcSettings, dstSettings))
		}
	}
	return result
}

// copyEditorSettings replaces the destination editor-settings folder with a
// fresh copy of the source, validating settings.json first. A validation
// failure is a warning on the item, not a copy failure.
func (e *Engine) copyEditorSettings(ctx context.Context, category, src, dst string) model.BackupItemResult {
	item := model.BackupItemResult{Source: src, Destination: dst}

	if err := ValidateEditorSettings(src); err != nil {
		item.Warning = err.Error()
		fmt.Fprintf(e.out, "Warning in %s backup: %v\n", category, err)
	}

	if e.dryRun {
		fmt.Fprintf(e.out, "[dry-run] would copy %s -> %s\n", src, dst)
		return item
	}

	// Remove the previous copy so deleted settings files do not linger.
	if err := e.removeAll(ctx, dst); err != nil {
		item.Error = err.Error()
		fmt.Fprintf(e.out, "Error in %s backup: unable to replace %s: %v\n", category, dst, err)
		return item
	}
	if err := CopyDir(src, dst); err != nil {
		item.Error = err.Error()
		fmt.Fprintf(e.out, "Error in %s backup: unable to copy %s: %v\n", category, src, err)
	}
	return item
}

// runDeployments copies each deployment directory under the name of its
// parent folder.
func (e *Engine) runDeployments(ctx context.Context, spec model.BackupSpec, summary *model.BackupSummary) model.BackupCategoryResult {
	result := model.BackupCategoryResult{Name: spec.Name}

	deploymentsDir, err := e.categoryDir(ctx, spec)
	if err != nil {
		for _, src := range spec.SourcePaths {
			result.Items = append(result.Items, model.BackupItemResult{
				Source:      src,
				Destination: deploymentsDir,
				Error:       err.Error(),
			})
		}
		fmt.Fprintf(e.out, "Error in %s backup: %v\n", spec.Name, err)
		return result
	}

	for _, deployment := range spec.SourcePaths {
		if e.cancelled(ctx, summary) {
			return result
		}
		dst := filepath.Join(deploymentsDir, ParentFolderName(deployment))
		result.Items = append(result.Items, e.copyItem(spec.Name, deployment, dst))
	}
	return result
}

// copyItem copies one configured source and records the outcome. Failures
// are logged immediately with the offending path and never abort the run.
func (e *Engine) copyItem(category, src, dst string) model.BackupItemResult {
	item := model.BackupItemResult{Source: src, Destination: dst}

	if e.dryRun {
		fmt.Fprintf(e.out, "[dry-run] would copy %s -> %s\n", src, dst)
		return item
	}

	if err := CopyPath(src, dst); err != nil {
		item.Error = err.Error()
		fmt.Fprintf(e.out, "Error in %s backup: unable to copy %s: %v\n", category, src, err)
	}
	return item
}

// cancelled checks the context between items and flags the summary once.
func (e *Engine) cancelled(ctx context.Context, summary *model.BackupSummary) bool {
	if ctx.Err() == nil {
		return false
	}
	if !summary.Interrupted {
		summary.Interrupted = true
		fmt.Fprintln(e.out, "Backup interrupted, skipping remaining items.")
	}
	return true
}

// categoryDir resolves and creates the category's destination folder. A
// category with sources but no configured folder name is rejected so its
// items never land in the backup-location root.
func (e *Engine) categoryDir(ctx context.Context, spec model.BackupSpec) (string, error) {
	dir := filepath.Join(e.cfg.BackupLocation, spec.DestinationFolder)
	if spec.DestinationFolder == "" {
		return dir, fmt.Errorf("%s_DESTINATION_FOLDER_NAME is not set", spec.Name)
	}
	if err := e.ensureDir(ctx, dir); err != nil {
		return dir, fmt.Errorf("unable to create %s: %w", dir, err)
	}
	return dir, nil
}

// ensureDir creates a directory tree, retrying once through sudo when the
// plain create fails on permissions. The elevation is announced first.
func (e *Engine) ensureDir(ctx context.Context, path string) error {
	if e.dryRun {
		return nil
	}

	err := os.MkdirAll(path, 0o755)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrPermission) {
		return err
	}

	fmt.Fprintf(e.out, "Permission denied creating %s, retrying with sudo.\n", path)
	if sudoErr := e.elevate(ctx, "mkdir", "-p", path); sudoErr != nil {
		return fmt.Errorf("sudo mkdir -p %s: %w", path, sudoErr)
	}
	return nil
}

// removeAll deletes a path tree, retrying once through sudo when the plain
// removal fails on permissions.
func (e *Engine) removeAll(ctx context.Context, path string) error {
	err := os.RemoveAll(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrPermission) {
		return err
	}

	fmt.Fprintf(e.out, "Permission denied removing %s, retrying with sudo.\n", path)
	if sudoErr := e.elevate(ctx, "rm", "-rf", path); sudoErr != nil {
		return fmt.Errorf("sudo rm -rf %s: %w", path, sudoErr)
	}
	return nil
}

// sudoRun executes a command through sudo, surfacing stderr in the error.
func sudoRun(ctx context.Context, args ...string) error {
	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.CommandContext(ctx, "sudo", args...)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return fmt.Errorf("%s: %w", stderrStr, err)
		}
		return err
	}
	return nil
}

// newRunID returns a fresh ULID for the manifest.
func newRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
