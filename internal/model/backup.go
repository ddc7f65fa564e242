package model

import "time"

// BackupSpec is one named backup category: a destination folder name and
// the ordered list of source paths that are copied into it.
type BackupSpec struct {
	// Name is the category identifier (e.g., "SYSTEM", "PROJECTS").
	Name string

	// DestinationFolder is the folder name created under the backup location.
	DestinationFolder string

	// SourcePaths is the ordered list of absolute source paths to copy.
	SourcePaths []string
}

// IsEmpty reports whether the category has nothing to copy. Empty
// categories are skipped silently — a missing environment variable simply
// produces no copies for that category.
func (s BackupSpec) IsEmpty() bool {
	return len(s.SourcePaths) == 0
}

// BackupItemResult records the outcome of copying a single configured item.
// Failures are collected here instead of aborting the run, so every
// configured item is attempted.
type BackupItemResult struct {
	// Source is the configured source path.
	Source string `yaml:"source"`

	// Destination is the resolved target path.
	Destination string `yaml:"destination"`

	// Error holds the failure description, empty on success.
	Error string `yaml:"error,omitempty"`

	// Warning holds a non-fatal notice (e.g., unparsable editor settings).
	Warning string `yaml:"warning,omitempty"`
}

// Failed reports whether the item could not be copied.
func (r BackupItemResult) Failed() bool {
	return r.Error != ""
}

// BackupCategoryResult groups the item results of one category.
type BackupCategoryResult struct {
	// Name is the category name (e.g., "SYSTEM").
	Name string `yaml:"name"`

	// Items are the per-item outcomes in copy order.
	Items []BackupItemResult `yaml:"items"`
}

// BackupSummary is the consolidated result of one backup run. It is printed
// at the end of the run and serialized into the run manifest.
type BackupSummary struct {
	// RunID is a ULID identifying this run.
	RunID string `yaml:"runId"`

	// StartedAt and FinishedAt bound the run wall-clock time.
	StartedAt  time.Time `yaml:"startedAt"`
	FinishedAt time.Time `yaml:"finishedAt"`

	// Interrupted is true when a signal aborted the remaining queue.
	Interrupted bool `yaml:"interrupted,omitempty"`

	// Categories holds the per-category results in execution order.
	Categories []BackupCategoryResult `yaml:"categories"`
}

// Failures returns all failed item results across categories.
func (s *BackupSummary) Failures() []BackupItemResult {
	var failed []BackupItemResult
	for _, cat := range s.Categories {
		for _, item := range cat.Items {
			if item.Failed() {
				failed = append(failed, item)
			}
		}
	}
	return failed
}

// ItemCount returns the total number of attempted items.
func (s *BackupSummary) ItemCount() int {
	n := 0
	for _, cat := range s.Categories {
		n += len(cat.Items)
	}
	return n
}
