// Package gitrepo answers questions about the current repository by shelling
// out through execshell: worktree probing, branch and revision lookups, and
// remote URL inspection.
package gitrepo
