package cli

import "fmt"

// ConfigError reports a problem with a configuration value before any
// command work starts. Field names the offending YAML path (for example
// "server.listen_address") so the user can find the line to fix.
type ConfigError struct {
	Field   string
	Message string
}

// NewConfigError creates a ConfigError for the given field.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError wraps a failure from a command that got past argument and
// configuration validation, tagging it with the command name for the
// top-level error printer.
type CommandError struct {
	Command string
	Err     error
}

// NewCommandError wraps err as a failure of the named command.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err}
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
