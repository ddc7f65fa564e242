// Package clipboard is a thin wrapper over the system clipboard.
//
// Clipboard writes are best-effort everywhere in devkit: a failure (e.g., no
// display server, missing xclip/xsel) is reported as a warning and never
// fails the command. The Copy function is a package variable so tests can
// stub it out.
package clipboard
