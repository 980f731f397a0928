package undo_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/oops/internal/undo"
)

const (
	testUnknownSubcommandNameConstant = "nonsense"
)

func newCommandBuilderUnderTest(executor *recordingGitExecutor, prompter *scriptedPrompter, output *bytes.Buffer) *undo.CommandBuilder {
	return &undo.CommandBuilder{
		Executor:         executor,
		Repository:       pushedRepository(),
		Prompter:         prompter,
		Output:           output,
		WorkingDirectory: testServiceWorkingDirectoryConstant,
	}
}

func newRootCommandUnderTest(builder *undo.CommandBuilder) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "oops",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.RunDefault(command, arguments)
		},
	}
	rootCommand.SetContext(context.Background())
	undo.RegisterPersistentFlags(rootCommand)
	return rootCommand
}

func TestRunDefaultRejectsUnknownSubcommand(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	prompter := &scriptedPrompter{responses: []bool{true}}
	output := &bytes.Buffer{}
	builder := newCommandBuilderUnderTest(executor, prompter, output)
	rootCommand := newRootCommandUnderTest(builder)

	rootCommand.SetArgs([]string{testUnknownSubcommandNameConstant})
	executionError := rootCommand.Execute()

	var unrecognizedSubcommandError undo.UnrecognizedSubcommandError
	require.ErrorAs(testInstance, executionError, &unrecognizedSubcommandError)
	require.Equal(testInstance, testUnknownSubcommandNameConstant, unrecognizedSubcommandError.Name)
	require.Empty(testInstance, executor.recordedCommands)
	require.Empty(testInstance, prompter.recordedPrompts)
}

func TestRunDefaultWithoutArgumentsRunsUndoPushed(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	prompter := &scriptedPrompter{responses: []bool{true}}
	output := &bytes.Buffer{}
	builder := newCommandBuilderUnderTest(executor, prompter, output)
	rootCommand := newRootCommandUnderTest(builder)

	rootCommand.SetArgs([]string{})
	executionError := rootCommand.Execute()

	require.NoError(testInstance, executionError)
	require.Equal(testInstance, []string{"reset --hard HEAD~1", "push --force"}, executor.recordedCommandLines())
}

func TestPersistentFlagsMergeIntoOptions(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	prompter := &scriptedPrompter{}
	output := &bytes.Buffer{}
	builder := newCommandBuilderUnderTest(executor, prompter, output)
	rootCommand := newRootCommandUnderTest(builder)

	rootCommand.SetArgs([]string{"--yes", "--dry-run"})
	executionError := rootCommand.Execute()

	require.NoError(testInstance, executionError)
	require.Empty(testInstance, executor.recordedCommands)
	require.Empty(testInstance, prompter.recordedPrompts)
	require.Contains(testInstance, output.String(), "Auto-confirmed yes by --yes/--force.")
	require.Contains(testInstance, output.String(), "[dry-run] Would run: git reset --hard HEAD~1")
	require.Contains(testInstance, output.String(), "[dry-run] Would run: git push --force")
}

func TestBranchCommandRequiresTarget(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	prompter := &scriptedPrompter{responses: []bool{true}}
	output := &bytes.Buffer{}
	builder := newCommandBuilderUnderTest(executor, prompter, output)

	branchCommand := builder.BuildBranchCommand()
	branchCommand.SetContext(context.Background())
	executionError := branchCommand.RunE(branchCommand, []string{})

	var missingTargetError undo.MissingTargetError
	require.ErrorAs(testInstance, executionError, &missingTargetError)
	require.Equal(testInstance, "branch", missingTargetError.TargetKind)
	require.Empty(testInstance, executor.recordedCommands)
}

func TestRemoteCommandRequiresTarget(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	prompter := &scriptedPrompter{responses: []bool{true}}
	output := &bytes.Buffer{}
	builder := newCommandBuilderUnderTest(executor, prompter, output)

	remoteCommand := builder.BuildRemoteCommand()
	remoteCommand.SetContext(context.Background())
	executionError := remoteCommand.RunE(remoteCommand, []string{})

	var missingTargetError undo.MissingTargetError
	require.ErrorAs(testInstance, executionError, &missingTargetError)
	require.Equal(testInstance, "remote", missingTargetError.TargetKind)
	require.Empty(testInstance, executor.recordedCommands)
}

func TestBranchCommandDeletesNamedBranch(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	prompter := &scriptedPrompter{responses: []bool{true}}
	output := &bytes.Buffer{}
	builder := newCommandBuilderUnderTest(executor, prompter, output)

	branchCommand := builder.BuildBranchCommand()
	branchCommand.SetContext(context.Background())
	executionError := branchCommand.RunE(branchCommand, []string{"feature"})

	require.NoError(testInstance, executionError)
	require.Equal(testInstance, []string{"branch -D feature"}, executor.recordedCommandLines())
}
