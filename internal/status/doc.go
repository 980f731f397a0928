// Package status renders the read-only repository summary: current branch,
// last commit subject, and origin remote. Nothing here mutates the repository.
package status
