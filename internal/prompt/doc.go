// Package prompt implements the small interactive layer shared by the
// devkit tools: yes/no confirmations and numbered list selections.
//
// Prompts are modeled as an explicit confirm-or-abort step returning a
// Decision (Proceed or Cancel) rather than relying on exceptions or panics
// for interruption. Input reads race against the command context, so an
// interrupt signal during a blocking prompt surfaces as ErrCancelled and the
// caller can exit cleanly.
package prompt
