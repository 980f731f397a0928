package cli

import (
	"errors"

	"github.com/temirov/oops/internal/execshell"
	"github.com/temirov/oops/internal/gitrepo"
	"github.com/temirov/oops/internal/undo"
)

// Exit codes distinguish failure classes so scripts can branch on them.
const (
	exitCodeSuccess                = 0
	exitCodeGenericFailure         = 1
	exitCodeNotARepository         = 2
	exitCodeUserCancelled          = 3
	exitCodeUnrecognizedSubcommand = 4
	exitCodeMissingTarget          = 5
)

// determineExitCode maps an execution error to its process exit code. Failed
// git commands propagate the child exit code when it is positive.
func determineExitCode(executionError error) int {
	if executionError == nil {
		return exitCodeSuccess
	}

	var notARepositoryError gitrepo.NotARepositoryError
	if errors.As(executionError, &notARepositoryError) {
		return exitCodeNotARepository
	}

	if errors.Is(executionError, undo.ErrUserCancelled) {
		return exitCodeUserCancelled
	}

	var unrecognizedSubcommandError undo.UnrecognizedSubcommandError
	if errors.As(executionError, &unrecognizedSubcommandError) {
		return exitCodeUnrecognizedSubcommand
	}

	var missingTargetError undo.MissingTargetError
	if errors.As(executionError, &missingTargetError) {
		return exitCodeMissingTarget
	}

	var commandFailedError execshell.CommandFailedError
	if errors.As(executionError, &commandFailedError) {
		if commandFailedError.Result.ExitCode > 0 {
			return commandFailedError.Result.ExitCode
		}
		return exitCodeGenericFailure
	}

	return exitCodeGenericFailure
}
