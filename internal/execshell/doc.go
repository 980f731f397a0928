// Package execshell provides structured helpers for invoking the git binary.
//
// It wraps os/exec behind CommandRunner, exposes ShellExecutor for logged and
// observable command execution, and defines the typed errors the rest of oops
// uses to distinguish git exit failures from process launch failures.
package execshell
