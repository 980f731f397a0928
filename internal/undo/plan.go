package undo

import (
	"fmt"
	"strings"

	"github.com/temirov/oops/internal/execshell"
)

// Operation enumerates the subcommands the catalog recognizes.
type Operation string

// Catalog operations.
const (
	OperationUndoPushed   Operation = "undo-pushed"
	OperationUndoCommit   Operation = "commit"
	OperationForcePush    Operation = "push"
	OperationDeleteBranch Operation = "branch"
	OperationRemoveRemote Operation = "remote"
)

const (
	branchTargetKindConstant   = "branch"
	remoteTargetKindConstant   = "remote"
	dryRunLineTemplateConstant = "[dry-run] Would run: %s"

	resetSubcommandConstant       = "reset"
	resetHardFlagConstant         = "--hard"
	resetSoftFlagConstant         = "--soft"
	previousHeadRefConstant       = "HEAD~1"
	pushSubcommandConstant        = "push"
	pushForceFlagConstant         = "--force"
	branchSubcommandConstant      = "branch"
	branchForceDeleteFlagConstant = "-D"
	remoteSubcommandConstant      = "remote"
	remoteRemoveVerbConstant      = "remove"

	resetPushedAnnouncementConstant             = "Resetting last commit locally..."
	forcePushAnnouncementConstant               = "Force pushing branch to remote..."
	resetSoftAnnouncementConstant               = "Resetting last commit softly (keeping changes)..."
	forcePushBranchAnnouncementTemplateConstant = "Force pushing branch '%s'..."
	deleteBranchAnnouncementTemplateConstant    = "Deleting branch '%s'..."
	removeRemoteAnnouncementTemplateConstant    = "Removing remote '%s'..."
)

// PlannedCommand pairs one git invocation with the progress line announced
// before it executes.
type PlannedCommand struct {
	Announcement string
	Details      execshell.CommandDetails
}

// CommandPlan is the ordered, immutable list of git commands resolved for one
// invocation. It is non-empty for every recognized operation.
type CommandPlan struct {
	operation Operation
	commands  []PlannedCommand
}

// Operation identifies the catalog entry the plan was resolved from.
func (plan CommandPlan) Operation() Operation {
	return plan.operation
}

// Commands returns a copy of the planned command sequence.
func (plan CommandPlan) Commands() []PlannedCommand {
	duplicated := make([]PlannedCommand, len(plan.commands))
	copy(duplicated, plan.commands)
	return duplicated
}

// DryRunLines renders the plan the way dry-run mode prints it, one line per
// planned command, verbatim.
func (plan CommandPlan) DryRunLines() []string {
	lines := make([]string, 0, len(plan.commands))
	for _, plannedCommand := range plan.commands {
		commandLine := execshell.ShellCommand{Name: execshell.CommandGit, Details: plannedCommand.Details}.String()
		lines = append(lines, fmt.Sprintf(dryRunLineTemplateConstant, commandLine))
	}
	return lines
}

// Catalog resolves operations into command plans for a fixed working directory.
type Catalog struct {
	workingDirectory string
}

// NewCatalog constructs a catalog whose plans run in workingDirectory.
func NewCatalog(workingDirectory string) Catalog {
	return Catalog{workingDirectory: workingDirectory}
}

// PlanFor resolves the plan for the named operation. Operations that act on a
// branch or remote require a non-empty target; anything outside the catalog is
// an UnrecognizedSubcommandError.
func (catalog Catalog) PlanFor(operation Operation, target string) (CommandPlan, error) {
	trimmedTarget := strings.TrimSpace(target)

	switch operation {
	case OperationUndoPushed:
		return catalog.plan(operation,
			PlannedCommand{
				Announcement: resetPushedAnnouncementConstant,
				Details:      catalog.details(resetSubcommandConstant, resetHardFlagConstant, previousHeadRefConstant),
			},
			PlannedCommand{
				Announcement: forcePushAnnouncementConstant,
				Details:      catalog.details(pushSubcommandConstant, pushForceFlagConstant),
			},
		), nil
	case OperationUndoCommit:
		return catalog.plan(operation,
			PlannedCommand{
				Announcement: resetSoftAnnouncementConstant,
				Details:      catalog.details(resetSubcommandConstant, resetSoftFlagConstant, previousHeadRefConstant),
			},
		), nil
	case OperationForcePush:
		return catalog.plan(operation,
			PlannedCommand{
				Announcement: fmt.Sprintf(forcePushBranchAnnouncementTemplateConstant, trimmedTarget),
				Details:      catalog.details(pushSubcommandConstant, pushForceFlagConstant),
			},
		), nil
	case OperationDeleteBranch:
		if len(trimmedTarget) == 0 {
			return CommandPlan{}, MissingTargetError{TargetKind: branchTargetKindConstant, Operation: string(operation)}
		}
		return catalog.plan(operation,
			PlannedCommand{
				Announcement: fmt.Sprintf(deleteBranchAnnouncementTemplateConstant, trimmedTarget),
				Details:      catalog.details(branchSubcommandConstant, branchForceDeleteFlagConstant, trimmedTarget),
			},
		), nil
	case OperationRemoveRemote:
		if len(trimmedTarget) == 0 {
			return CommandPlan{}, MissingTargetError{TargetKind: remoteTargetKindConstant, Operation: string(operation)}
		}
		return catalog.plan(operation,
			PlannedCommand{
				Announcement: fmt.Sprintf(removeRemoteAnnouncementTemplateConstant, trimmedTarget),
				Details:      catalog.details(remoteSubcommandConstant, remoteRemoveVerbConstant, trimmedTarget),
			},
		), nil
	default:
		return CommandPlan{}, UnrecognizedSubcommandError{Name: string(operation)}
	}
}

func (catalog Catalog) plan(operation Operation, commands ...PlannedCommand) CommandPlan {
	return CommandPlan{operation: operation, commands: commands}
}

func (catalog Catalog) details(arguments ...string) execshell.CommandDetails {
	return execshell.CommandDetails{Arguments: arguments, WorkingDirectory: catalog.workingDirectory}
}
