package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/oops/internal/execshell"
)

const (
	insideWorkTreeOutputConstant          = "true"
	headReferenceConstant                 = "HEAD"
	remoteReferenceTemplateConstant       = "%s/%s"
	notARepositoryMessageTemplateConstant = "not a git repository: %s"
	currentDirectoryLabelConstant         = "current directory"
	executorNotConfiguredMessageConstant  = "repository manager requires an executor"

	revParseSubcommandConstant   = "rev-parse"
	insideWorkTreeFlagConstant   = "--is-inside-work-tree"
	abbreviatedRefFlagConstant   = "--abbrev-ref"
	logSubcommandConstant        = "log"
	logLimitFlagConstant         = "-1"
	logSubjectFormatFlagConstant = "--pretty=%s"
	remoteSubcommandConstant     = "remote"
	remoteGetURLVerbConstant     = "get-url"
)

// ErrExecutorNotConfigured reports a RepositoryManager constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// NotARepositoryError indicates the working directory is outside any git worktree.
type NotARepositoryError struct {
	Path string
}

// Error names the probed path.
func (repositoryError NotARepositoryError) Error() string {
	describedPath := strings.TrimSpace(repositoryError.Path)
	if len(describedPath) == 0 {
		describedPath = currentDirectoryLabelConstant
	}
	return fmt.Sprintf(notARepositoryMessageTemplateConstant, describedPath)
}

// GitExecutor exposes the subset of shell execution repository queries need.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager resolves repository facts for a fixed working directory.
type RepositoryManager struct {
	executor         GitExecutor
	workingDirectory string
}

// NewRepositoryManager validates dependencies and assembles a RepositoryManager.
func NewRepositoryManager(executor GitExecutor, workingDirectory string) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor, workingDirectory: workingDirectory}, nil
}

// EnsureRepository probes the working directory and returns NotARepositoryError
// when it is not inside a git worktree.
func (manager *RepositoryManager) EnsureRepository(executionContext context.Context) error {
	executionResult, executionError := manager.run(executionContext, revParseSubcommandConstant, insideWorkTreeFlagConstant)
	if executionError != nil {
		return NotARepositoryError{Path: manager.workingDirectory}
	}
	if strings.TrimSpace(executionResult.StandardOutput) != insideWorkTreeOutputConstant {
		return NotARepositoryError{Path: manager.workingDirectory}
	}
	return nil
}

// CurrentBranch resolves the abbreviated name of the checked-out branch.
func (manager *RepositoryManager) CurrentBranch(executionContext context.Context) (string, error) {
	executionResult, executionError := manager.run(executionContext, revParseSubcommandConstant, abbreviatedRefFlagConstant, headReferenceConstant)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// HeadRevision resolves the commit hash the local HEAD points at.
func (manager *RepositoryManager) HeadRevision(executionContext context.Context) (string, error) {
	executionResult, executionError := manager.run(executionContext, revParseSubcommandConstant, headReferenceConstant)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// RemoteBranchRevision resolves the commit hash of branchName on remoteName.
func (manager *RepositoryManager) RemoteBranchRevision(executionContext context.Context, remoteName string, branchName string) (string, error) {
	remoteReference := fmt.Sprintf(remoteReferenceTemplateConstant, remoteName, branchName)
	executionResult, executionError := manager.run(executionContext, revParseSubcommandConstant, remoteReference)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// LastCommitSubject reads the subject line of the most recent commit.
func (manager *RepositoryManager) LastCommitSubject(executionContext context.Context) (string, error) {
	executionResult, executionError := manager.run(executionContext, logSubcommandConstant, logLimitFlagConstant, logSubjectFormatFlagConstant)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// RemoteURL reads the fetch URL configured for remoteName.
func (manager *RepositoryManager) RemoteURL(executionContext context.Context, remoteName string) (string, error) {
	executionResult, executionError := manager.run(executionContext, remoteSubcommandConstant, remoteGetURLVerbConstant, remoteName)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

func (manager *RepositoryManager) run(executionContext context.Context, arguments ...string) (execshell.ExecutionResult, error) {
	commandDetails := execshell.CommandDetails{Arguments: arguments, WorkingDirectory: manager.workingDirectory}
	return manager.executor.ExecuteGit(executionContext, commandDetails)
}
