package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// componentDirs are project subfolder names that are backed up under their
// parent project's name, e.g. /work/shop/api → "shop/api".
var componentDirs = map[string]bool{
	"api":      true,
	"frontend": true,
	"backend":  true,
}

// IsComponentDir reports whether the path's base name marks it as a
// component subfolder of a larger project.
func IsComponentDir(path string) bool {
	return componentDirs[filepath.Base(path)]
}

// ProjectName derives the backup folder name for a project path. Component
// subfolders keep their parent folder as a namespace; everything else uses
// its own folder name.
//
//	/home/u/work/app      → "app"
//	/home/u/work/shop/api → "shop/api"
func ProjectName(path string) string {
	base := filepath.Base(path)
	if IsComponentDir(path) {
		return filepath.Join(ParentFolderName(path), base)
	}
	return base
}

// ProjectRoot returns the directory holding the project's shared files
// (editor settings). For component subfolders that is the parent directory.
func ProjectRoot(path string) string {
	if IsComponentDir(path) {
		return filepath.Dir(path)
	}
	return path
}

// ParentFolderName returns the name of the path's parent directory.
//
//	/srv/shop/deploy → "shop"
func ParentFolderName(path string) string {
	return filepath.Base(filepath.Dir(path))
}

// EnvFileFor returns the name of the first env-file candidate that exists
// as a regular file inside the project directory, or the empty string when
// none do. Candidates are probed in preference order, so when both .env and
// .env.rb exist the first configured name wins.
func EnvFileFor(projectPath string, candidates []string) string {
	for _, name := range candidates {
		info, err := os.Stat(filepath.Join(projectPath, name))
		if err == nil && info.Mode().IsRegular() {
			return name
		}
	}
	return ""
}

// ValidateEditorSettings checks that the settings.json inside an editor
// settings folder parses as JSONC. A missing settings.json is fine; an
// unparsable one returns an error the engine records as a warning so a
// corrupted file is noticed before it silently overwrites a good backup.
func ValidateEditorSettings(settingsDir string) error {
	settingsPath := filepath.Join(settingsDir, "settings.json")

	raw, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not read %s: %w", settingsPath, err)
	}

	// Strip JSONC comments and trailing commas, then parse.
	var settings map[string]interface{}
	if err := json.Unmarshal(jsonc.ToJSON(raw), &settings); err != nil {
		return fmt.Errorf("%s is not valid JSONC: %w", settingsPath, err)
	}
	return nil
}
