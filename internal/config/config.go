package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mmr-tortoise/devkit/internal/model"
)

// Defaults for the optional environment variables.
const (
	// DefaultBranchPrefix is the prefix for derived branch names.
	DefaultBranchPrefix = "issues"

	// DefaultRequestPrefix leads the composed commit-reference message.
	DefaultRequestPrefix = "refs:"

	// DefaultGitRemote is the remote new branches are pushed to.
	DefaultGitRemote = "origin"

	// DefaultProjectEnvFiles lists the env-file candidates looked up next to
	// each project, in preference order.
	DefaultProjectEnvFiles = ".env,.env.rb"
)

// simpleCategories are the flat backup categories: each copies its
// configured source paths directly into one destination folder.
var simpleCategories = []string{"SYSTEM", "VSCODE"}

// Config holds every environment-driven setting used by the devkit tools.
// It is loaded once by Load and never mutated afterwards.
type Config struct {
	// BranchPrefix is the first path segment of derived branch names
	// (BRANCH_PREFIX, default "issues").
	BranchPrefix string

	// RequestPrefix leads the composed commit-reference message
	// (REQUEST_PREFIX, default "refs:").
	RequestPrefix string

	// IssueBasePath is the base URL for composed issue links
	// (ISSUE_BASE_PATH, empty disables link composition).
	IssueBasePath string

	// GitRemote is the push target for new branches (GIT_REMOTE).
	GitRemote string

	// BackupLocation is the root of the backup destination tree
	// (BACKUP_LOCATION). Required by the backup tool only.
	BackupLocation string

	// Simple holds the flat backup categories (SYSTEM, VSCODE).
	Simple []model.BackupSpec

	// Projects is the per-project backup category. Besides plain copies,
	// each project gets its env file and editor settings backed up.
	Projects model.BackupSpec

	// Deployments is the deployment backup category. Each source directory
	// is copied under the name of its parent folder.
	Deployments model.BackupSpec

	// ProjectEnvFiles are the env-file names probed per project, in
	// preference order (PROJECT_ENV_FILES, comma-separated).
	ProjectEnvFiles []string
}

// Load reads a local .env file if present, then builds the Config from the
// process environment. Missing optional variables fall back to the
// documented defaults; missing category variables produce empty categories.
func Load() (*Config, error) {
	// godotenv returns an error when no .env file exists; that is the
	// common case and not a failure.
	_ = godotenv.Load()
	return FromEnviron(os.Getenv)
}

// FromEnviron builds a Config from the given environment lookup function.
// Split out from Load so tests can supply a synthetic environment.
func FromEnviron(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		BranchPrefix:    getOrDefault(getenv, "BRANCH_PREFIX", DefaultBranchPrefix),
		RequestPrefix:   getOrDefault(getenv, "REQUEST_PREFIX", DefaultRequestPrefix),
		IssueBasePath:   getenv("ISSUE_BASE_PATH"),
		GitRemote:       getOrDefault(getenv, "GIT_REMOTE", DefaultGitRemote),
		BackupLocation:  expandHome(getenv("BACKUP_LOCATION")),
		ProjectEnvFiles: splitList(getOrDefault(getenv, "PROJECT_ENV_FILES", DefaultProjectEnvFiles)),
	}

	for _, name := range simpleCategories {
		cfg.Simple = append(cfg.Simple, loadCategory(getenv, name, name))
	}

	cfg.Projects = loadCategory(getenv, "PROJECTS", "PROJECTS")

	// The deployments category historically uses a singular prefix for its
	// source list and a plural prefix for its destination folder.
	cfg.Deployments = loadCategory(getenv, "DEPLOYMENTS", "DEPLOYMENT")

	return cfg, nil
}

// loadCategory reads one backup category. The destination folder name comes
// from <name>_DESTINATION_FOLDER_NAME and the source list from
// <sourcePrefix>_SOURCE_PATHS (comma-separated, items trimmed, home-expanded).
func loadCategory(getenv func(string) string, name, sourcePrefix string) model.BackupSpec {
	spec := model.BackupSpec{
		Name:              name,
		DestinationFolder: getenv(name + "_DESTINATION_FOLDER_NAME"),
	}
	for _, path := range splitList(getenv(sourcePrefix + "_SOURCE_PATHS")) {
		spec.SourcePaths = append(spec.SourcePaths, expandHome(path))
	}
	return spec
}

// getOrDefault returns the environment value or the fallback when unset
// or blank.
func getOrDefault(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return fallback
}

// splitList splits a comma-separated value into trimmed, non-empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// expandHome replaces a leading "~" with the current user's home directory.
// Paths that do not start with "~" are returned unchanged.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
