package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/oops/internal/execshell"
	"github.com/temirov/oops/internal/ui"
)

const (
	testEventStartedCaseNameConstant       = "command_started"
	testEventCompletedCaseNameConstant     = "command_completed"
	testEventFailedCaseNameConstant        = "command_failed_exit_code"
	testEventLaunchFailureCaseNameConstant = "command_launch_failure"
	testEventWorkingDirectoryConstant      = "/workspace/project"
)

func TestConsoleCommandEventLoggerRendersLifecycle(testInstance *testing.T) {
	command := execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:        []string{"push", "--force"},
			WorkingDirectory: testEventWorkingDirectoryConstant,
		},
	}

	testCases := []struct {
		name         string
		emitEvent    func(eventLogger *ui.ConsoleCommandEventLogger)
		expectedLine string
	}{
		{
			name: testEventStartedCaseNameConstant,
			emitEvent: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandStarted(command)
			},
			expectedLine: "Force pushing from /workspace/project\n",
		},
		{
			name: testEventCompletedCaseNameConstant,
			emitEvent: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 0})
			},
			expectedLine: "Force pushed from /workspace/project\n",
		},
		{
			name: testEventFailedCaseNameConstant,
			emitEvent: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(command, execshell.ExecutionResult{ExitCode: 1, StandardError: "rejected"})
			},
			expectedLine: "Failed to force push from /workspace/project (exit code 1: rejected)\n",
		},
		{
			name: testEventLaunchFailureCaseNameConstant,
			emitEvent: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandExecutionFailed(command, errors.New("git binary missing"))
			},
			expectedLine: "git push --force (in /workspace/project) failed: git binary missing\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			eventLogger := ui.NewConsoleCommandEventLogger(outputBuffer, ui.NewOutputStyler(false))

			testCase.emitEvent(eventLogger)

			require.Equal(testInstance, testCase.expectedLine, outputBuffer.String())
		})
	}
}
