package cmdmcp

import (
	"fmt"
	"log/slog"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option is a functional option for configuring handlers
type Option func(*handlerConfig) error

// WithDescription sets the description shown for the command tool. Without
// it the tool carries a generic fallback naming the wrapped command.
func WithDescription(description string) Option {
	return func(cfg *handlerConfig) error {
		if description == "" {
			return ErrEmptyDescription
		}
		cfg.description = description
		return nil
	}
}

// WithHelpCommand configures a command line whose stdout documents the
// wrapped command's usage (e.g. "git --help"). It is run once at handler
// construction to seed the server instructions, and re-run on every read of
// the help resource. The string is split into an argument vector with
// shell-style quoting rules; it is never handed to a shell.
func WithHelpCommand(commandLine string) Option {
	return func(cfg *handlerConfig) error {
		argv, err := shellwords.Parse(commandLine)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHelpCommand, err)
		}
		if len(argv) == 0 {
			return ErrInvalidHelpCommand
		}
		cfg.helpArgv = argv
		cfg.helpDisplay = commandLine
		return nil
	}
}

// WithName sets the server implementation name
func WithName(name string) Option {
	return func(cfg *handlerConfig) error {
		if name == "" {
			return ErrEmptyName
		}
		cfg.name = name
		return nil
	}
}

// WithVersion sets the server implementation version
func WithVersion(version string) Option {
	return func(cfg *handlerConfig) error {
		if version == "" {
			return ErrEmptyVersion
		}
		cfg.version = version
		return nil
	}
}

// WithRunner replaces the process runner, primarily for testing
func WithRunner(runner Runner) Option {
	return func(cfg *handlerConfig) error {
		if runner == nil {
			return ErrNilRunner
		}
		cfg.runner = runner
		return nil
	}
}

// WithLogger sets the slog logger used for startup and per-call diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *handlerConfig) error {
		if logger == nil {
			return ErrNilLogger
		}
		cfg.logger = logger
		return nil
	}
}

// WithServer allows injecting a custom server for testing. Server-level
// instructions are only set on servers the handler creates itself.
func WithServer(server *mcp.Server) Option {
	return func(cfg *handlerConfig) error {
		if server == nil {
			return ErrNilServer
		}
		cfg.server = server
		return nil
	}
}
