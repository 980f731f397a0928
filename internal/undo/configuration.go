package undo

import "strings"

const (
	defaultRemoteNameConstant = "origin"

	assumeYesConfigurationKeySuffixConstant = ".assume_yes"
	dryRunConfigurationKeySuffixConstant    = ".dry_run"
	remoteConfigurationKeySuffixConstant    = ".remote"
)

// CommandConfiguration captures configuration values shared by the undo commands.
type CommandConfiguration struct {
	AssumeYes  bool   `mapstructure:"assume_yes"`
	DryRun     bool   `mapstructure:"dry_run"`
	RemoteName string `mapstructure:"remote"`
}

// DefaultCommandConfiguration provides baseline configuration values.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		AssumeYes:  false,
		DryRun:     false,
		RemoteName: defaultRemoteNameConstant,
	}
}

// DefaultConfigurationValues exposes defaults keyed for the configuration loader.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + assumeYesConfigurationKeySuffixConstant: defaults.AssumeYes,
		configurationKeyPrefix + dryRunConfigurationKeySuffixConstant:    defaults.DryRun,
		configurationKeyPrefix + remoteConfigurationKeySuffixConstant:    defaults.RemoteName,
	}
}

// sanitize trims configuration values and restores required defaults.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = defaultRemoteNameConstant
	}
	return sanitized
}
