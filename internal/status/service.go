package status

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/oops/internal/gitrepo"
	"github.com/temirov/oops/internal/ui"
)

const (
	serviceLoggerRequiredMessageConstant     = "status service requires a logger"
	serviceRepositoryRequiredMessageConstant = "status service requires a repository inspector"

	branchLineTemplateConstant         = "Branch: %s"
	lastCommitLineTemplateConstant     = "Last commit: %s"
	remoteLineTemplateConstant         = "Remote %s: %s"
	parsedRemoteSuffixTemplateConstant = " (%s, %s)"
	unavailableValueConstant           = "N/A"

	summaryLogMessageConstant = "repository summary collected"
	branchLogFieldConstant    = "branch"
	remoteLogFieldConstant    = "remote"
)

// RepositoryInspector answers the repository questions the summary needs.
type RepositoryInspector interface {
	EnsureRepository(executionContext context.Context) error
	CurrentBranch(executionContext context.Context) (string, error)
	LastCommitSubject(executionContext context.Context) (string, error)
	RemoteURL(executionContext context.Context, remoteName string) (string, error)
}

// Options configures one summary invocation.
type Options struct {
	RemoteName string
}

// Dependencies captures the collaborators a status Service requires.
type Dependencies struct {
	Logger     *zap.Logger
	Repository RepositoryInspector
	Output     io.Writer
	Styler     ui.OutputStyler
}

// Service prints repository summaries.
type Service struct {
	dependencies Dependencies
}

// NewService validates dependencies and assembles a status Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Logger == nil {
		return nil, errors.New(serviceLoggerRequiredMessageConstant)
	}
	if dependencies.Repository == nil {
		return nil, errors.New(serviceRepositoryRequiredMessageConstant)
	}
	return &Service{dependencies: dependencies}, nil
}

// Summarize prints the branch, last commit subject, and remote URL. Fields
// that cannot be resolved render as N/A; only a failed repository probe or an
// unresolvable branch abort the summary.
func (service *Service) Summarize(executionContext context.Context, options Options) error {
	if repositoryError := service.dependencies.Repository.EnsureRepository(executionContext); repositoryError != nil {
		return repositoryError
	}

	branchName, branchError := service.dependencies.Repository.CurrentBranch(executionContext)
	if branchError != nil {
		return branchError
	}

	lastCommitSubject := unavailableValueConstant
	if subject, subjectError := service.dependencies.Repository.LastCommitSubject(executionContext); subjectError == nil && len(subject) > 0 {
		lastCommitSubject = subject
	}

	remoteDisplay := unavailableValueConstant
	if remoteURL, remoteError := service.dependencies.Repository.RemoteURL(executionContext, options.RemoteName); remoteError == nil && len(remoteURL) > 0 {
		remoteDisplay = service.describeRemote(remoteURL)
	}

	service.dependencies.Logger.Debug(
		summaryLogMessageConstant,
		zap.String(branchLogFieldConstant, branchName),
		zap.String(remoteLogFieldConstant, options.RemoteName),
	)

	service.printLine(fmt.Sprintf(branchLineTemplateConstant, branchName))
	service.printLine(fmt.Sprintf(lastCommitLineTemplateConstant, lastCommitSubject))
	service.printLine(fmt.Sprintf(remoteLineTemplateConstant, options.RemoteName, remoteDisplay))
	return nil
}

// describeRemote appends the parsed protocol and owner/repository tuple when
// the remote URL has a shape the parser understands.
func (service *Service) describeRemote(remoteURL string) string {
	parsedRemote, parseError := gitrepo.ParseRemoteURL(remoteURL)
	if parseError != nil {
		return remoteURL
	}
	return remoteURL + fmt.Sprintf(parsedRemoteSuffixTemplateConstant, parsedRemote.Protocol, parsedRemote.OwnerRepository())
}

func (service *Service) printLine(message string) {
	if service.dependencies.Output == nil {
		return
	}
	fmt.Fprintln(service.dependencies.Output, service.dependencies.Styler.Prompt(message))
}
