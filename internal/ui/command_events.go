package ui

import (
	"fmt"
	"io"

	"github.com/temirov/oops/internal/execshell"
)

// ConsoleCommandEventLogger renders command lifecycle events for humans. It is
// installed as the execshell observer when console logging is selected.
type ConsoleCommandEventLogger struct {
	writer    io.Writer
	styler    OutputStyler
	formatter execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger writing to the provided destination.
func NewConsoleCommandEventLogger(writer io.Writer, styler OutputStyler) *ConsoleCommandEventLogger {
	return &ConsoleCommandEventLogger{writer: writer, styler: styler, formatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted implements execshell.CommandEventObserver by announcing command start.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	eventLogger.writeLine(eventLogger.styler.Progress(eventLogger.formatter.BuildStartedMessage(command)))
}

// CommandCompleted implements execshell.CommandEventObserver by announcing completion or failure.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if result.ExitCode == 0 {
		eventLogger.writeLine(eventLogger.styler.Progress(eventLogger.formatter.BuildSuccessMessage(command, result)))
		return
	}
	eventLogger.writeLine(eventLogger.styler.Error(eventLogger.formatter.BuildFailureMessage(command, result)))
}

// CommandExecutionFailed implements execshell.CommandEventObserver by announcing launch failures.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	eventLogger.writeLine(eventLogger.styler.Error(eventLogger.formatter.BuildExecutionFailureMessage(command, failure)))
}

func (eventLogger *ConsoleCommandEventLogger) writeLine(message string) {
	if eventLogger == nil || eventLogger.writer == nil {
		return
	}
	fmt.Fprintln(eventLogger.writer, message)
}
