// Package cli assembles the oops command-line application: the Cobra command
// tree, configuration loading, structured logging, and exit code mapping.
package cli
