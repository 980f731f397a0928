package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitRevParseSubcommandNameConstant = "rev-parse"
	gitWorkTreeFlagConstant           = "--is-inside-work-tree"
	gitAbbrevRefFlagConstant          = "--abbrev-ref"
	gitResetSubcommandNameConstant    = "reset"
	gitResetHardFlagConstant          = "--hard"
	gitResetSoftFlagConstant          = "--soft"
	gitPushSubcommandNameConstant     = "push"
	gitPushForceFlagConstant          = "--force"
	gitBranchSubcommandNameConstant   = "branch"
	gitBranchForceDeleteFlagConstant  = "-D"
	gitRemoteSubcommandNameConstant   = "remote"
	gitRemoteRemoveVerbConstant       = "remove"
	gitRemoteGetURLVerbConstant       = "get-url"
	gitLogSubcommandNameConstant      = "log"
)

const (
	gitWorkTreeStartTemplateConstant          = "Analyzing repository at %s"
	gitWorkTreeSuccessTemplateConstant        = "%s is a Git repository"
	gitWorkTreeFailureTemplateConstant        = "Could not confirm %s is a Git repository (exit code %d%s)"
	gitCurrentBranchStartTemplateConstant     = "Identifying current branch in %s"
	gitCurrentBranchSuccessTemplateConstant   = "Current branch in %s is %s"
	gitCurrentBranchDetachedTemplateConstant  = "%s is in a detached HEAD state"
	gitCurrentBranchFailureTemplateConstant   = "Failed to identify current branch in %s (exit code %d%s)"
	gitRevisionStartTemplateConstant          = "Resolving %s in %s"
	gitRevisionSuccessTemplateConstant        = "%s in %s resolved to %s"
	gitRevisionFailureTemplateConstant        = "Failed to resolve %s in %s (exit code %d%s)"
	gitResetStartTemplateConstant             = "Resetting %s to %s in %s"
	gitResetSuccessTemplateConstant           = "Reset %s to %s in %s"
	gitResetFailureTemplateConstant           = "Failed to reset %s to %s in %s (exit code %d%s)"
	gitResetHardModeLabelConstant             = "working tree"
	gitResetSoftModeLabelConstant             = "HEAD (keeping changes staged)"
	gitForcePushStartTemplateConstant         = "Force pushing from %s"
	gitForcePushSuccessTemplateConstant       = "Force pushed from %s"
	gitForcePushFailureTemplateConstant       = "Failed to force push from %s (exit code %d%s)"
	gitBranchDeletionStartTemplateConstant    = "Force removing local branch %s in %s"
	gitBranchDeletionSuccessTemplateConstant  = "Removed local branch %s in %s"
	gitBranchDeletionFailureTemplateConstant  = "Failed to remove local branch %s in %s (exit code %d%s)"
	gitRemoteRemovalStartTemplateConstant     = "Removing remote %s in %s"
	gitRemoteRemovalSuccessTemplateConstant   = "Removed remote %s in %s"
	gitRemoteRemovalFailureTemplateConstant   = "Failed to remove remote %s in %s (exit code %d%s)"
	gitRemoteLookupStartTemplateConstant      = "Checking %s remote for %s"
	gitRemoteLookupSuccessTemplateConstant    = "%s remote for %s points to %s"
	gitRemoteLookupFailureTemplateConstant    = "Failed to read %s remote for %s (exit code %d%s)"
	gitLastCommitStartTemplateConstant        = "Reading last commit subject in %s"
	gitLastCommitSuccessTemplateConstant      = "Last commit in %s: %s"
	gitLastCommitFailureTemplateConstant      = "Failed to read last commit subject in %s (exit code %d%s)"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a
// zero exit code. The result supplies output-derived details such as the
// resolved branch name or commit subject.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

// FormatCommandLine renders the command name and arguments as a single shell line.
func (formatter CommandMessageFormatter) FormatCommandLine(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	return strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	if stage == messageStageExecutionFailure {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitRevParseSubcommandNameConstant:
		return formatter.describeGitRevParseMessage(command, result, stage)
	case gitResetSubcommandNameConstant:
		return formatter.describeGitResetMessage(command, result, stage)
	case gitPushSubcommandNameConstant:
		return formatter.describeGitPushMessage(command, result, stage)
	case gitBranchSubcommandNameConstant:
		return formatter.describeGitBranchMessage(command, result, stage)
	case gitRemoteSubcommandNameConstant:
		return formatter.describeGitRemoteMessage(command, result, stage)
	case gitLogSubcommandNameConstant:
		return formatter.describeGitLogMessage(command, result, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitRevParseMessage(command ShellCommand, result ExecutionResult, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitWorkTreeFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitWorkTreeStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitWorkTreeSuccessTemplateConstant, workingDirectory)
		default:
			return fmt.Sprintf(gitWorkTreeFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		}
	}

	if containsArgument(arguments, gitAbbrevRefFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitCurrentBranchStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			trimmed := strings.TrimSpace(result.StandardOutput)
			if len(trimmed) == 0 || strings.EqualFold(trimmed, "HEAD") {
				return fmt.Sprintf(gitCurrentBranchDetachedTemplateConstant, workingDirectory)
			}
			return fmt.Sprintf(gitCurrentBranchSuccessTemplateConstant, workingDirectory, trimmed)
		default:
			return fmt.Sprintf(gitCurrentBranchFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		}
	}

	reference := formatter.ensureValue(formatter.lastNonFlagArgument(arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRevisionStartTemplateConstant, reference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitRevisionSuccessTemplateConstant, reference, workingDirectory, formatter.ensureValue(strings.TrimSpace(result.StandardOutput)))
	default:
		return fmt.Sprintf(gitRevisionFailureTemplateConstant, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	}
}

func (formatter CommandMessageFormatter) describeGitResetMessage(command ShellCommand, result ExecutionResult, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	modeLabel := gitResetSoftModeLabelConstant
	if containsArgument(arguments, gitResetHardFlagConstant) {
		modeLabel = gitResetHardModeLabelConstant
	}
	reference := formatter.ensureValue(formatter.lastNonFlagArgument(arguments[1:]))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitResetStartTemplateConstant, modeLabel, reference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitResetSuccessTemplateConstant, modeLabel, reference, workingDirectory)
	default:
		return fmt.Sprintf(gitResetFailureTemplateConstant, modeLabel, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	}
}

func (formatter CommandMessageFormatter) describeGitPushMessage(command ShellCommand, result ExecutionResult, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitForcePushStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitForcePushSuccessTemplateConstant, workingDirectory)
	default:
		return fmt.Sprintf(gitForcePushFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	}
}

func (formatter CommandMessageFormatter) describeGitBranchMessage(command ShellCommand, result ExecutionResult, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	branchName := formatter.ensureValue(formatter.lastNonFlagArgument(command.Details.Arguments[1:]))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitBranchDeletionStartTemplateConstant, branchName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitBranchDeletionSuccessTemplateConstant, branchName, workingDirectory)
	default:
		return fmt.Sprintf(gitBranchDeletionFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	}
}

func (formatter CommandMessageFormatter) describeGitRemoteMessage(command ShellCommand, result ExecutionResult, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))

	verb := emptyStringConstant
	if len(arguments) > 1 {
		verb = strings.TrimSpace(arguments[1])
	}

	switch verb {
	case gitRemoteRemoveVerbConstant:
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitRemoteRemovalStartTemplateConstant, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitRemoteRemovalSuccessTemplateConstant, remoteName, workingDirectory)
		default:
			return fmt.Sprintf(gitRemoteRemovalFailureTemplateConstant, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		}
	case gitRemoteGetURLVerbConstant:
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitRemoteLookupStartTemplateConstant, remoteName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitRemoteLookupSuccessTemplateConstant, remoteName, workingDirectory, formatter.ensureValue(strings.TrimSpace(result.StandardOutput)))
		default:
			return fmt.Sprintf(gitRemoteLookupFailureTemplateConstant, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		}
	default:
		return formatter.buildGenericMessage(command, result, nil, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitLogMessage(command ShellCommand, result ExecutionResult, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitLastCommitStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitLastCommitSuccessTemplateConstant, workingDirectory, formatter.ensureValue(strings.TrimSpace(result.StandardOutput)))
	default:
		return fmt.Sprintf(gitLastCommitFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	return fmt.Sprintf(commandLabelTemplateConstant, formatter.FormatCommandLine(command), formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return "current directory"
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmedValue
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index < 0 || index >= len(arguments) {
		return emptyStringConstant
	}
	return arguments[index]
}

func (formatter CommandMessageFormatter) lastNonFlagArgument(arguments []string) string {
	lastValue := emptyStringConstant
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) == 0 || strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		lastValue = trimmedArgument
	}
	return lastValue
}

func containsArgument(arguments []string, candidate string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == candidate {
			return true
		}
	}
	return false
}
