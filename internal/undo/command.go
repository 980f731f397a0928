package undo

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/oops/internal/execshell"
	"github.com/temirov/oops/internal/gitrepo"
	"github.com/temirov/oops/internal/ui"
)

const (
	undoPushedCommandUseConstant   = "undo-pushed"
	undoPushedCommandShortConstant = "Undo the last pushed commit (reset HEAD~1 and force-push)"
	commitCommandUseConstant       = "commit"
	commitCommandShortConstant     = "Undo the last local commit, keeping changes staged"
	pushCommandUseConstant         = "push"
	pushCommandShortConstant       = "Force-push the current branch to its remote"
	branchCommandUseConstant       = "branch <name>"
	branchCommandShortConstant     = "Delete the named local branch"
	remoteCommandUseConstant       = "remote <name>"
	remoteCommandShortConstant     = "Remove the named remote"

	flagYesNameConstant           = "yes"
	flagYesShorthandConstant      = "y"
	flagYesDescriptionConstant    = "Skip confirmation prompts."
	flagForceNameConstant         = "force"
	flagForceShorthandConstant    = "f"
	flagForceDescriptionConstant  = "Skip confirmation prompts (alias for --yes)."
	flagDryRunNameConstant        = "dry-run"
	flagDryRunDescriptionConstant = "Show commands without running them."
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the configured undo defaults.
type ConfigurationProvider func() CommandConfiguration

// StylerProvider supplies the terminal output styler.
type StylerProvider func() ui.OutputStyler

// EventObserverProvider supplies the command lifecycle observer, if any.
type EventObserverProvider func() execshell.CommandEventObserver

// RegisterPersistentFlags attaches the confirmation and dry-run flags shared by
// every undo operation to the provided (root) command.
func RegisterPersistentFlags(command *cobra.Command) {
	command.PersistentFlags().BoolP(flagYesNameConstant, flagYesShorthandConstant, false, flagYesDescriptionConstant)
	command.PersistentFlags().BoolP(flagForceNameConstant, flagForceShorthandConstant, false, flagForceDescriptionConstant)
	command.PersistentFlags().Bool(flagDryRunNameConstant, false, flagDryRunDescriptionConstant)
}

// CommandBuilder assembles the Cobra commands for the undo operations. Unset
// seams fall back to the real executor, prompter, and standard streams.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	StylerProvider        StylerProvider
	EventObserverProvider EventObserverProvider
	Executor              GitExecutor
	Repository            RepositoryInspector
	Prompter              ui.ConfirmationPrompter
	Output                io.Writer
	Input                 io.Reader
	WorkingDirectory      string
}

// BuildUndoPushedCommand constructs the explicit undo-pushed subcommand.
func (builder *CommandBuilder) BuildUndoPushedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   undoPushedCommandUseConstant,
		Short: undoPushedCommandShortConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.runOperation(command, OperationUndoPushed, "")
		},
	}
}

// BuildCommitCommand constructs the commit subcommand.
func (builder *CommandBuilder) BuildCommitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   commitCommandUseConstant,
		Short: commitCommandShortConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.runOperation(command, OperationUndoCommit, "")
		},
	}
}

// BuildPushCommand constructs the push subcommand.
func (builder *CommandBuilder) BuildPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   pushCommandUseConstant,
		Short: pushCommandShortConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.runOperation(command, OperationForcePush, "")
		},
	}
}

// BuildBranchCommand constructs the branch deletion subcommand.
func (builder *CommandBuilder) BuildBranchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   branchCommandUseConstant,
		Short: branchCommandShortConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.runOperation(command, OperationDeleteBranch, firstArgument(arguments))
		},
	}
}

// BuildRemoteCommand constructs the remote removal subcommand.
func (builder *CommandBuilder) BuildRemoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   remoteCommandUseConstant,
		Short: remoteCommandShortConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.runOperation(command, OperationRemoveRemote, firstArgument(arguments))
		},
	}
}

// RunDefault implements the bare invocation: no arguments runs undo-pushed,
// anything else is an unrecognized subcommand.
func (builder *CommandBuilder) RunDefault(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return UnrecognizedSubcommandError{Name: arguments[0]}
	}
	return builder.runOperation(command, OperationUndoPushed, "")
}

func (builder *CommandBuilder) runOperation(command *cobra.Command, operation Operation, target string) error {
	options := builder.parseOptions(command)

	service, serviceError := builder.resolveService()
	if serviceError != nil {
		return serviceError
	}

	switch operation {
	case OperationUndoPushed:
		return service.UndoPushedCommit(command.Context(), options)
	case OperationUndoCommit:
		return service.UndoLocalCommit(command.Context(), options)
	case OperationForcePush:
		return service.ForcePush(command.Context(), options)
	case OperationDeleteBranch:
		if len(strings.TrimSpace(target)) == 0 {
			return MissingTargetError{TargetKind: branchTargetKindConstant, Operation: string(operation)}
		}
		return service.DeleteBranch(command.Context(), target, options)
	case OperationRemoveRemote:
		if len(strings.TrimSpace(target)) == 0 {
			return MissingTargetError{TargetKind: remoteTargetKindConstant, Operation: string(operation)}
		}
		return service.RemoveRemote(command.Context(), target, options)
	default:
		return UnrecognizedSubcommandError{Name: string(operation)}
	}
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) Options {
	configuration := builder.resolveConfiguration()

	assumeYes := configuration.AssumeYes
	if yesValue, flagError := command.Flags().GetBool(flagYesNameConstant); flagError == nil && yesValue {
		assumeYes = true
	}
	if forceValue, flagError := command.Flags().GetBool(flagForceNameConstant); flagError == nil && forceValue {
		assumeYes = true
	}

	dryRun := configuration.DryRun
	if dryRunValue, flagError := command.Flags().GetBool(flagDryRunNameConstant); flagError == nil && dryRunValue {
		dryRun = true
	}

	return Options{DryRun: dryRun, AssumeYes: assumeYes, RemoteName: configuration.RemoteName}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveService() (*Service, error) {
	logger := builder.resolveLogger()
	styler := builder.resolveStyler()
	workingDirectory := builder.resolveWorkingDirectory()

	executor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return nil, executorError
	}

	repository := builder.Repository
	if repository == nil {
		repositoryManager, repositoryError := gitrepo.NewRepositoryManager(executor, workingDirectory)
		if repositoryError != nil {
			return nil, repositoryError
		}
		repository = repositoryManager
	}

	output := builder.resolveOutput()

	prompter := builder.Prompter
	if prompter == nil {
		prompter = ui.NewIOConfirmationPrompter(builder.resolveInput(), output, styler)
	}

	dependencies := Dependencies{
		Logger:     logger,
		Executor:   executor,
		Repository: repository,
		Prompter:   prompter,
		Output:     output,
		Styler:     styler,
	}

	return NewService(dependencies, workingDirectory)
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (GitExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	if builder.EventObserverProvider != nil {
		if observer := builder.EventObserverProvider(); observer != nil {
			return execshell.NewShellExecutor(logger, commandRunner, observer)
		}
	}
	return execshell.NewShellExecutor(logger, commandRunner)
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveStyler() ui.OutputStyler {
	if builder.StylerProvider == nil {
		return ui.NewOutputStyler(false)
	}
	return builder.StylerProvider()
}

func (builder *CommandBuilder) resolveWorkingDirectory() string {
	if len(strings.TrimSpace(builder.WorkingDirectory)) > 0 {
		return builder.WorkingDirectory
	}
	if workingDirectory, workingDirectoryError := os.Getwd(); workingDirectoryError == nil {
		return workingDirectory
	}
	return ""
}

func (builder *CommandBuilder) resolveOutput() io.Writer {
	if builder.Output != nil {
		return builder.Output
	}
	return os.Stdout
}

func (builder *CommandBuilder) resolveInput() io.Reader {
	if builder.Input != nil {
		return builder.Input
	}
	return os.Stdin
}

func firstArgument(arguments []string) string {
	if len(arguments) == 0 {
		return ""
	}
	return arguments[0]
}
