package undo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/oops/internal/execshell"
	"github.com/temirov/oops/internal/ui"
)

const (
	serviceLoggerRequiredMessageConstant     = "undo service requires a logger"
	serviceExecutorRequiredMessageConstant   = "undo service requires an executor"
	serviceRepositoryRequiredMessageConstant = "undo service requires a repository inspector"
	servicePrompterRequiredMessageConstant   = "undo service requires a confirmation prompter"

	abortedMessageConstant        = "Aborted."
	doneMessageConstant           = "Done. Crisis averted."
	autoConfirmedTemplateConstant = "%s [y/N] Auto-confirmed yes by --yes/--force."

	notPushedWarningTemplateConstant   = "Warning: The last commit on branch '%s' does NOT appear pushed to '%s'."
	continueAnywayPromptConstant       = "Continue with undo anyway?"
	undoPushedPromptTemplateConstant   = "Are you sure you want to undo the last pushed commit on branch '%s'? This will reset HEAD~1 and force-push."
	undoCommitPromptConstant           = "Undo the last local commit, keeping changes staged?"
	forcePushPromptTemplateConstant    = "Force push branch '%s' to remote?"
	deleteBranchPromptTemplateConstant = "Are you sure you want to delete local branch '%s'?"
	removeRemotePromptTemplateConstant = "Are you sure you want to remove remote '%s'?"

	operationLogMessageConstant  = "undo operation resolved"
	operationLogFieldConstant    = "operation"
	commandCountLogFieldConstant = "command_count"
	dryRunLogFieldConstant       = "dry_run"
	assumeYesLogFieldConstant    = "assume_yes"
)

// RepositoryInspector answers the repository questions undo operations need.
type RepositoryInspector interface {
	EnsureRepository(executionContext context.Context) error
	CurrentBranch(executionContext context.Context) (string, error)
	HeadRevision(executionContext context.Context) (string, error)
	RemoteBranchRevision(executionContext context.Context, remoteName string, branchName string) (string, error)
}

// GitExecutor exposes the subset of shell execution undo plans run through.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Options carries per-invocation settings shared by every undo operation.
type Options struct {
	DryRun     bool
	AssumeYes  bool
	RemoteName string
}

// Dependencies captures the collaborators an undo Service requires.
type Dependencies struct {
	Logger     *zap.Logger
	Executor   GitExecutor
	Repository RepositoryInspector
	Prompter   ui.ConfirmationPrompter
	Output     io.Writer
	Styler     ui.OutputStyler
}

// Service orchestrates confirmation-gated git undo operations.
type Service struct {
	dependencies Dependencies
	catalog      Catalog
}

// NewService validates dependencies and assembles an undo Service whose plans
// run in workingDirectory.
func NewService(dependencies Dependencies, workingDirectory string) (*Service, error) {
	if dependencies.Logger == nil {
		return nil, errors.New(serviceLoggerRequiredMessageConstant)
	}
	if dependencies.Executor == nil {
		return nil, errors.New(serviceExecutorRequiredMessageConstant)
	}
	if dependencies.Repository == nil {
		return nil, errors.New(serviceRepositoryRequiredMessageConstant)
	}
	if dependencies.Prompter == nil {
		return nil, errors.New(servicePrompterRequiredMessageConstant)
	}

	return &Service{dependencies: dependencies, catalog: NewCatalog(workingDirectory)}, nil
}

// UndoPushedCommit resets the last commit and force-pushes the current branch.
// When the last commit does not match the remote branch tip it warns and asks
// for an extra confirmation first.
func (service *Service) UndoPushedCommit(executionContext context.Context, options Options) error {
	if repositoryError := service.dependencies.Repository.EnsureRepository(executionContext); repositoryError != nil {
		return repositoryError
	}

	branchName, branchError := service.dependencies.Repository.CurrentBranch(executionContext)
	if branchError != nil {
		return branchError
	}

	if !service.lastCommitPushed(executionContext, options.RemoteName, branchName) {
		service.printLine(service.dependencies.Styler.Warning(fmt.Sprintf(notPushedWarningTemplateConstant, branchName, options.RemoteName)))
		confirmed, confirmationError := service.confirm(continueAnywayPromptConstant, options.AssumeYes)
		if confirmationError != nil {
			return confirmationError
		}
		if !confirmed {
			return service.abort()
		}
	}

	confirmed, confirmationError := service.confirm(fmt.Sprintf(undoPushedPromptTemplateConstant, branchName), options.AssumeYes)
	if confirmationError != nil {
		return confirmationError
	}
	if !confirmed {
		return service.abort()
	}

	if executionError := service.resolveAndRun(executionContext, OperationUndoPushed, "", options); executionError != nil {
		return executionError
	}

	if !options.DryRun {
		service.printLine(service.dependencies.Styler.Progress(doneMessageConstant))
	}
	return nil
}

// UndoLocalCommit soft-resets the last commit, keeping its changes staged.
func (service *Service) UndoLocalCommit(executionContext context.Context, options Options) error {
	if repositoryError := service.dependencies.Repository.EnsureRepository(executionContext); repositoryError != nil {
		return repositoryError
	}

	confirmed, confirmationError := service.confirm(undoCommitPromptConstant, options.AssumeYes)
	if confirmationError != nil {
		return confirmationError
	}
	if !confirmed {
		return service.abort()
	}

	return service.resolveAndRun(executionContext, OperationUndoCommit, "", options)
}

// ForcePush force-pushes the current branch to its remote.
func (service *Service) ForcePush(executionContext context.Context, options Options) error {
	if repositoryError := service.dependencies.Repository.EnsureRepository(executionContext); repositoryError != nil {
		return repositoryError
	}

	branchName, branchError := service.dependencies.Repository.CurrentBranch(executionContext)
	if branchError != nil {
		return branchError
	}

	confirmed, confirmationError := service.confirm(fmt.Sprintf(forcePushPromptTemplateConstant, branchName), options.AssumeYes)
	if confirmationError != nil {
		return confirmationError
	}
	if !confirmed {
		return service.abort()
	}

	return service.resolveAndRun(executionContext, OperationForcePush, branchName, options)
}

// DeleteBranch force-deletes the named local branch.
func (service *Service) DeleteBranch(executionContext context.Context, branchName string, options Options) error {
	if repositoryError := service.dependencies.Repository.EnsureRepository(executionContext); repositoryError != nil {
		return repositoryError
	}

	plan, planError := service.catalog.PlanFor(OperationDeleteBranch, branchName)
	if planError != nil {
		return planError
	}

	confirmed, confirmationError := service.confirm(fmt.Sprintf(deleteBranchPromptTemplateConstant, branchName), options.AssumeYes)
	if confirmationError != nil {
		return confirmationError
	}
	if !confirmed {
		return service.abort()
	}

	return service.runPlan(executionContext, plan, options)
}

// RemoveRemote removes the named remote from the repository configuration.
func (service *Service) RemoveRemote(executionContext context.Context, remoteName string, options Options) error {
	if repositoryError := service.dependencies.Repository.EnsureRepository(executionContext); repositoryError != nil {
		return repositoryError
	}

	plan, planError := service.catalog.PlanFor(OperationRemoveRemote, remoteName)
	if planError != nil {
		return planError
	}

	confirmed, confirmationError := service.confirm(fmt.Sprintf(removeRemotePromptTemplateConstant, remoteName), options.AssumeYes)
	if confirmationError != nil {
		return confirmationError
	}
	if !confirmed {
		return service.abort()
	}

	return service.runPlan(executionContext, plan, options)
}

func (service *Service) resolveAndRun(executionContext context.Context, operation Operation, target string, options Options) error {
	plan, planError := service.catalog.PlanFor(operation, target)
	if planError != nil {
		return planError
	}
	return service.runPlan(executionContext, plan, options)
}

func (service *Service) runPlan(executionContext context.Context, plan CommandPlan, options Options) error {
	service.dependencies.Logger.Debug(
		operationLogMessageConstant,
		zap.String(operationLogFieldConstant, string(plan.Operation())),
		zap.Int(commandCountLogFieldConstant, len(plan.Commands())),
		zap.Bool(dryRunLogFieldConstant, options.DryRun),
		zap.Bool(assumeYesLogFieldConstant, options.AssumeYes),
	)

	if options.DryRun {
		for _, dryRunLine := range plan.DryRunLines() {
			service.printLine(service.dependencies.Styler.Warning(dryRunLine))
		}
		return nil
	}

	for _, plannedCommand := range plan.Commands() {
		service.printLine(service.dependencies.Styler.Progress(plannedCommand.Announcement))
		if _, executionError := service.dependencies.Executor.ExecuteGit(executionContext, plannedCommand.Details); executionError != nil {
			return executionError
		}
	}
	return nil
}

// lastCommitPushed reports whether HEAD matches the remote branch tip. Lookup
// failures (no upstream, unreachable remote) count as not pushed.
func (service *Service) lastCommitPushed(executionContext context.Context, remoteName string, branchName string) bool {
	localRevision, localError := service.dependencies.Repository.HeadRevision(executionContext)
	if localError != nil {
		return false
	}
	remoteRevision, remoteError := service.dependencies.Repository.RemoteBranchRevision(executionContext, remoteName, branchName)
	if remoteError != nil {
		return false
	}
	return len(localRevision) > 0 && localRevision == remoteRevision
}

func (service *Service) confirm(prompt string, assumeYes bool) (bool, error) {
	if assumeYes {
		service.printLine(service.dependencies.Styler.Prompt(fmt.Sprintf(autoConfirmedTemplateConstant, prompt)))
		return true, nil
	}
	return service.dependencies.Prompter.Confirm(prompt)
}

func (service *Service) abort() error {
	service.printLine(abortedMessageConstant)
	return ErrUserCancelled
}

func (service *Service) printLine(message string) {
	if service.dependencies.Output == nil {
		return
	}
	fmt.Fprintln(service.dependencies.Output, message)
}
