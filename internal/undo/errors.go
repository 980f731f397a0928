package undo

import (
	"errors"
	"fmt"
)

const (
	userCancelledMessageConstant                  = "aborted by user"
	unrecognizedSubcommandMessageTemplateConstant = "unrecognized subcommand %q"
	missingTargetMessageTemplateConstant          = "%s name required for '%s'"
)

// ErrUserCancelled indicates the user declined a confirmation prompt.
var ErrUserCancelled = errors.New(userCancelledMessageConstant)

// UnrecognizedSubcommandError reports a subcommand name outside the catalog.
type UnrecognizedSubcommandError struct {
	Name string
}

// Error names the unrecognized subcommand.
func (subcommandError UnrecognizedSubcommandError) Error() string {
	return fmt.Sprintf(unrecognizedSubcommandMessageTemplateConstant, subcommandError.Name)
}

// MissingTargetError reports an operation invoked without its required target.
type MissingTargetError struct {
	TargetKind string
	Operation  string
}

// Error names the missing target and the operation that needs it.
func (targetError MissingTargetError) Error() string {
	return fmt.Sprintf(missingTargetMessageTemplateConstant, targetError.TargetKind, targetError.Operation)
}
