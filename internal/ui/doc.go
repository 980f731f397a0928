// Package ui provides the terminal-facing pieces of oops.
//
// It offers the confirmation prompter used before destructive git operations,
// a lipgloss style palette that degrades to plain text off-terminal, and a
// console observer that renders command lifecycle events for humans.
package ui
