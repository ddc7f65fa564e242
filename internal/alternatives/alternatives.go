package alternatives

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"sort"
	"strings"

	"github.com/mmr-tortoise/devkit/internal/model"
)

// List returns the installed alternative paths for the given name, one per
// line of `update-alternatives --list <name>` output. An error or empty
// result means no versions are installed.
//
// List, Active, and Set are variables so command tests can stub the
// shell-outs, the same way clipboard.Copy is stubbed.
var List = func(ctx context.Context, name string) ([]string, error) {
	output, err := run(ctx, "update-alternatives", "--list", name)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitNotFound,
			fmt.Sprintf("could not list %s alternatives", name), err)
	}

	var paths []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	if len(paths) == 0 {
		return nil, model.NewCLIError(model.ExitNotFound,
			fmt.Sprintf("no %s versions found", name))
	}
	return paths, nil
}

// Active returns the path of the currently selected alternative by parsing
// the "Value:" line of `update-alternatives --query <name>` output. An
// empty string means the active value could not be determined.
var Active = func(ctx context.Context, name string) (string, error) {
	output, err := run(ctx, "update-alternatives", "--query", name)
	if err != nil {
		return "", model.WrapCLIError(model.ExitExternalTool,
			fmt.Sprintf("could not query %s alternatives", name), err)
	}
	return ParseActiveValue(output), nil
}

// Set switches the active alternative to the given path. The operation
// needs root, so it runs through sudo. A non-zero exit surfaces the tool's
// stderr verbatim.
var Set = func(ctx context.Context, name, path string) error {
	if _, err := run(ctx, "sudo", "update-alternatives", "--set", name, path); err != nil {
		return model.WrapCLIError(model.ExitExternalTool,
			fmt.Sprintf("could not switch %s to %s", name, path), err)
	}
	return nil
}

// ParseActiveValue extracts the active path from `--query` output.
// The relevant line has the form "Value: /usr/bin/php8.3".
func ParseActiveValue(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if value, ok := strings.CutPrefix(line, "Value:"); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// versionRegex matches version labels like "8.3" either after a "php"
// prefix or a "php/" directory segment.
var versionRegex = regexp.MustCompile(`php(?:/|)(\d+\.\d+)`)

// ExtractVersion pulls a version label like "8.3" out of an alternative
// path. Returns the empty string when no version can be recognized.
func ExtractVersion(path string) string {
	if m := versionRegex.FindStringSubmatch(path); m != nil {
		return m[1]
	}
	return ""
}

// BuildVersions converts alternative paths into InterpreterVersion values,
// sorted by label. Paths without a recognizable version label are dropped.
// The entry matching activePath has its Active flag set.
func BuildVersions(paths []string, activePath string) []model.InterpreterVersion {
	var versions []model.InterpreterVersion
	for _, path := range paths {
		label := ExtractVersion(path)
		if label == "" {
			continue
		}
		versions = append(versions, model.InterpreterVersion{
			Label:  label,
			Path:   path,
			Active: path == activePath,
		})
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Label < versions[j].Label
	})
	return versions
}

// Find returns the version with the given label, or nil when not installed.
func Find(versions []model.InterpreterVersion, label string) *model.InterpreterVersion {
	for i := range versions {
		if versions[i].Label == label {
			return &versions[i]
		}
	}
	return nil
}

// run executes a command and returns its stdout. On failure the stderr
// output is folded into the returned error for diagnostics.
func run(ctx context.Context, name string, args ...string) (string, error) {
	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("%s %s: %s: %w", name, strings.Join(args, " "), stderrStr, err)
		}
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}
