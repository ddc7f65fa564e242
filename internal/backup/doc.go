// Package backup implements the configuration-driven file backup engine.
//
// The engine copies each configured source path into a destination tree
// organized by category folder. Files are copied as files; directories are
// copied recursively, merging into an existing destination. Every copy
// failure is caught individually, recorded with the offending path, and does
// not abort the remaining copies — the run attempts every configured item
// and reports a consolidated summary at the end.
//
// Directory creation and removal fall back to sudo once when a plain
// attempt fails on permissions; the elevation is announced, never silent.
// After each run a YAML manifest (run ID, timestamps, per-item results) is
// written at the backup location root.
package backup
