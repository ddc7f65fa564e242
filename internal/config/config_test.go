package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnv returns a getenv function backed by a map, so tests don't touch
// the real process environment.
func fakeEnv(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

// TestFromEnviron_Defaults verifies that every optional variable falls back
// to its documented default when the environment is empty.
func TestFromEnviron_Defaults(t *testing.T) {
	cfg, err := FromEnviron(fakeEnv(nil))
	require.NoError(t, err)

	assert.Equal(t, "issues", cfg.BranchPrefix)
	assert.Equal(t, "refs:", cfg.RequestPrefix)
	assert.Equal(t, "origin", cfg.GitRemote)
	assert.Empty(t, cfg.IssueBasePath)
	assert.Empty(t, cfg.BackupLocation)
	assert.Equal(t, []string{".env", ".env.rb"}, cfg.ProjectEnvFiles)

	// Unconfigured categories are empty, not errors.
	require.Len(t, cfg.Simple, 2)
	assert.True(t, cfg.Simple[0].IsEmpty())
	assert.True(t, cfg.Projects.IsEmpty())
	assert.True(t, cfg.Deployments.IsEmpty())
}

// TestFromEnviron_Overrides checks that explicit values win over defaults.
func TestFromEnviron_Overrides(t *testing.T) {
	cfg, err := FromEnviron(fakeEnv(map[string]string{
		"BRANCH_PREFIX":   "feature",
		"REQUEST_PREFIX":  "closes:",
		"GIT_REMOTE":      "upstream",
		"ISSUE_BASE_PATH": "https://example.com/user",
	}))
	require.NoError(t, err)

	assert.Equal(t, "feature", cfg.BranchPrefix)
	assert.Equal(t, "closes:", cfg.RequestPrefix)
	assert.Equal(t, "upstream", cfg.GitRemote)
	assert.Equal(t, "https://example.com/user", cfg.IssueBasePath)
}

// TestFromEnviron_Categories verifies list splitting, trimming, and the
// per-category variable names — including the singular DEPLOYMENT_ source
// prefix paired with the plural DEPLOYMENTS_ destination prefix.
func TestFromEnviron_Categories(t *testing.T) {
	cfg, err := FromEnviron(fakeEnv(map[string]string{
		"SYSTEM_SOURCE_PATHS":              "/etc/hosts, /etc/fstab ,,",
		"SYSTEM_DESTINATION_FOLDER_NAME":   "system",
		"VSCODE_SOURCE_PATHS":              "/home/u/.config/Code/User/settings.json",
		"VSCODE_DESTINATION_FOLDER_NAME":   "vscode",
		"PROJECTS_SOURCE_PATHS":            "/home/u/work/app,/home/u/work/site/api",
		"PROJECTS_DESTINATION_FOLDER_NAME": "projects",
		"DEPLOYMENT_SOURCE_PATHS":          "/srv/app/deploy",
		"DEPLOYMENTS_DESTINATION_FOLDER_NAME": "deployments",
	}))
	require.NoError(t, err)

	require.Len(t, cfg.Simple, 2)
	system := cfg.Simple[0]
	assert.Equal(t, "SYSTEM", system.Name)
	assert.Equal(t, "system", system.DestinationFolder)
	assert.Equal(t, []string{"/etc/hosts", "/etc/fstab"}, system.SourcePaths)

	vscode := cfg.Simple[1]
	assert.Equal(t, "VSCODE", vscode.Name)
	assert.Equal(t, []string{"/home/u/.config/Code/User/settings.json"}, vscode.SourcePaths)

	assert.Equal(t, "projects", cfg.Projects.DestinationFolder)
	assert.Len(t, cfg.Projects.SourcePaths, 2)

	assert.Equal(t, "deployments", cfg.Deployments.DestinationFolder)
	assert.Equal(t, []string{"/srv/app/deploy"}, cfg.Deployments.SourcePaths)
}

// TestFromEnviron_HomeExpansion checks that a leading "~" expands to the
// user home directory in the backup location and source paths.
func TestFromEnviron_HomeExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg, err := FromEnviron(fakeEnv(map[string]string{
		"BACKUP_LOCATION":                "~/backups",
		"SYSTEM_SOURCE_PATHS":            "~/notes.txt,/etc/hosts",
		"SYSTEM_DESTINATION_FOLDER_NAME": "system",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/home/tester/backups", cfg.BackupLocation)
	assert.Equal(t, []string{"/home/tester/notes.txt", "/etc/hosts"}, cfg.Simple[0].SourcePaths)
}

// TestSplitList covers edge cases of the comma-separated list format.
func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "/a", []string{"/a"}},
		{"spaces and empties", " /a , , /b ,", []string{"/a", "/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitList(tt.input))
		})
	}
}
