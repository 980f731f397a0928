package undo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/oops/internal/undo"
)

const (
	testUndoPushedPlanCaseNameConstant   = "undo_pushed"
	testUndoCommitPlanCaseNameConstant   = "undo_commit"
	testForcePushPlanCaseNameConstant    = "force_push"
	testDeleteBranchPlanCaseNameConstant = "delete_branch"
	testRemoveRemotePlanCaseNameConstant = "remove_remote"
	testPlanWorkingDirectoryConstant     = "/workspace/project"
	testPlanBranchNameConstant           = "feature"
	testPlanRemoteNameConstant           = "origin"
)

func TestCatalogPlansRecognizedOperations(testInstance *testing.T) {
	catalog := undo.NewCatalog(testPlanWorkingDirectoryConstant)

	testCases := []struct {
		name                 string
		operation            undo.Operation
		target               string
		expectedCommandLines []string
	}{
		{
			name:      testUndoPushedPlanCaseNameConstant,
			operation: undo.OperationUndoPushed,
			expectedCommandLines: []string{
				"reset --hard HEAD~1",
				"push --force",
			},
		},
		{
			name:      testUndoCommitPlanCaseNameConstant,
			operation: undo.OperationUndoCommit,
			expectedCommandLines: []string{
				"reset --soft HEAD~1",
			},
		},
		{
			name:      testForcePushPlanCaseNameConstant,
			operation: undo.OperationForcePush,
			target:    testPlanBranchNameConstant,
			expectedCommandLines: []string{
				"push --force",
			},
		},
		{
			name:      testDeleteBranchPlanCaseNameConstant,
			operation: undo.OperationDeleteBranch,
			target:    testPlanBranchNameConstant,
			expectedCommandLines: []string{
				"branch -D feature",
			},
		},
		{
			name:      testRemoveRemotePlanCaseNameConstant,
			operation: undo.OperationRemoveRemote,
			target:    testPlanRemoteNameConstant,
			expectedCommandLines: []string{
				"remote remove origin",
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			plan, planError := catalog.PlanFor(testCase.operation, testCase.target)
			require.NoError(testInstance, planError)
			require.Equal(testInstance, testCase.operation, plan.Operation())

			plannedCommands := plan.Commands()
			require.Len(testInstance, plannedCommands, len(testCase.expectedCommandLines))
			for commandIndex, plannedCommand := range plannedCommands {
				require.Equal(testInstance, testCase.expectedCommandLines[commandIndex], strings.Join(plannedCommand.Details.Arguments, " "))
				require.Equal(testInstance, testPlanWorkingDirectoryConstant, plannedCommand.Details.WorkingDirectory)
				require.NotEmpty(testInstance, plannedCommand.Announcement)
			}
		})
	}
}

func TestCatalogDryRunLines(testInstance *testing.T) {
	catalog := undo.NewCatalog(testPlanWorkingDirectoryConstant)

	plan, planError := catalog.PlanFor(undo.OperationUndoPushed, "")
	require.NoError(testInstance, planError)

	expectedLines := []string{
		"[dry-run] Would run: git reset --hard HEAD~1",
		"[dry-run] Would run: git push --force",
	}
	require.Equal(testInstance, expectedLines, plan.DryRunLines())
}

func TestCatalogRejectsMissingTargets(testInstance *testing.T) {
	catalog := undo.NewCatalog(testPlanWorkingDirectoryConstant)

	for _, operation := range []undo.Operation{undo.OperationDeleteBranch, undo.OperationRemoveRemote} {
		testInstance.Run(string(operation), func(testInstance *testing.T) {
			_, planError := catalog.PlanFor(operation, "  ")

			var missingTargetError undo.MissingTargetError
			require.ErrorAs(testInstance, planError, &missingTargetError)
			require.Equal(testInstance, string(operation), missingTargetError.Operation)
		})
	}
}

func TestCatalogRejectsUnknownOperations(testInstance *testing.T) {
	catalog := undo.NewCatalog(testPlanWorkingDirectoryConstant)

	_, planError := catalog.PlanFor(undo.Operation("rebase"), "")

	var unrecognizedSubcommandError undo.UnrecognizedSubcommandError
	require.ErrorAs(testInstance, planError, &unrecognizedSubcommandError)
	require.Equal(testInstance, "rebase", unrecognizedSubcommandError.Name)
}
