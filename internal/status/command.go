package status

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
	statusCommandUseConstant   = "status"
	statusCommandShortConstant = "Show the current branch, last commit, and remote"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the configured status defaults.
type ConfigurationProvider func() CommandConfiguration

// StylerProvider supplies the terminal output styler.
type StylerProvider func() ui.OutputStyler

// CommandConfiguration captures configuration values for the status command.
type CommandConfiguration struct {
	RemoteName string `mapstructure:"remote"`
}

const defaultRemoteNameConstant = "origin"

// DefaultCommandConfiguration provides baseline configuration values.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{RemoteName: defaultRemoteNameConstant}
}

// DefaultConfigurationValues exposes defaults keyed for the configuration loader.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + ".remote": defaults.RemoteName,
	}
}

// CommandBuilder assembles the Cobra status command. Unset seams fall back to
// the real executor and standard output.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	StylerProvider        StylerProvider
	Executor              gitrepo.GitExecutor
	Repository            RepositoryInspector
	Output                io.Writer
	WorkingDirectory      string
}

// Build constructs the status subcommand.
func (builder *CommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:   statusCommandUseConstant,
		Short: statusCommandShortConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			service, serviceError := builder.resolveService()
			if serviceError != nil {
				return serviceError
			}
			return service.Summarize(command.Context(), Options{RemoteName: builder.resolveConfiguration().RemoteName})
		},
	}
}

func (builder *CommandBuilder) resolveService() (*Service, error) {
	logger := builder.resolveLogger()

	repository := builder.Repository
	if repository == nil {
		executor, executorError := builder.resolveExecutor(logger)
		if executorError != nil {
			return nil, executorError
		}
		repositoryManager, repositoryError := gitrepo.NewRepositoryManager(executor, builder.resolveWorkingDirectory())
		if repositoryError != nil {
			return nil, repositoryError
		}
		repository = repositoryManager
	}

	return NewService(Dependencies{
		Logger:     logger,
		Repository: repository,
		Output:     builder.resolveOutput(),
		Styler:     builder.resolveStyler(),
	})
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (gitrepo.GitExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}
	return execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration.RemoteName = strings.TrimSpace(configuration.RemoteName)
	if len(configuration.RemoteName) == 0 {
		configuration.RemoteName = defaultRemoteNameConstant
	}
	return configuration
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
