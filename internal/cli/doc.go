// Package cli holds the process-level plumbing shared by the puzzle programs:
// positional argument handling, input loading, error kinds and exit codes,
// and the logrus logger every program writes its diagnostics to.
package cli
