// Package alternatives wraps the OS alternatives tool
// (update-alternatives) for enumerating and switching interpreter versions.
//
// All operations shell out to the update-alternatives binary via os/exec.
// Switching requires root, so Set runs through sudo — the same elevation the
// user would type by hand. Enumeration and querying never mutate OS state.
package alternatives
