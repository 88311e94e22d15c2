package cmdmcp

import "errors"

// Sentinel errors for configuration validation
var (
	ErrEmptyCommand       = errors.New("command cannot be empty")
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrInvalidHelpCommand = errors.New("help command is not a valid command line")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptyVersion       = errors.New("version cannot be empty")
	ErrNilRunner          = errors.New("runner cannot be nil")
	ErrNilLogger          = errors.New("logger cannot be nil")
	ErrNilServer          = errors.New("server cannot be nil")
)

// ErrLaunchFailed marks an invocation that never produced a Result: the
// executable could not be found or started, or its I/O plumbing failed.
// It is distinct from a command that ran and exited non-zero, which is
// reported as data in the Result.
var ErrLaunchFailed = errors.New("failed to launch command")
