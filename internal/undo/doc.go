// Package undo implements the destructive oops operations: undoing the last
// pushed or local commit, force-pushing, and deleting branches or remotes.
//
// It defines the fixed command catalog (CommandPlan), the confirmation gate
// applied before any plan executes, and the Cobra command builders that expose
// each operation.
package undo
