// Package cmdmcp exposes a single configured shell command as an MCP tool
package cmdmcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Runner executes an external command to completion and reports its outcome.
// The real implementation is ExecRunner; tests substitute fakes.
type Runner interface {
	// Run spawns name with args as a literal argument vector (no shell).
	// A nil stdin closes the child's standard input immediately; a non-nil
	// stdin is written fully before close. Run blocks until the child exits
	// and both output streams are drained. A non-zero exit is not an error:
	// it is reported in the Result. A non-nil error means the command could
	// not be launched or its I/O failed, and no Result is returned.
	Run(ctx context.Context, name string, args []string, stdin *string) (*Result, error)
}

// Result is the complete outcome of one command invocation.
type Result struct {
	ExitCode int    // process exit status; 0 normally signals success
	Stdout   string // full captured standard output
	Stderr   string // full captured standard error
}

// ExecInput is the tool's input payload received from MCP clients.
type ExecInput struct {
	Arguments []string `json:"arguments,omitempty" jsonschema:"Command-line arguments appended to the base command"`
	Stdin     *string  `json:"stdin,omitempty"     jsonschema:"Optional standard input string piped to the command"`
}

// ExecOutput is the tool's structured result returned to MCP clients.
// A non-zero ExitCode is ordinary data, not a protocol error.
type ExecOutput struct {
	ExitCode int    `json:"exit_code" jsonschema:"Process exit code"`
	Stdout   string `json:"stdout"    jsonschema:"Captured standard output"`
	Stderr   string `json:"stderr"    jsonschema:"Captured standard error"`
}

// handlerConfig holds the configuration built by options
type handlerConfig struct {
	command     string
	description string
	helpArgv    []string // parsed help invocation; empty when not configured
	helpDisplay string   // help invocation as the operator wrote it
	name        string
	version     string
	runner      Runner
	logger      *slog.Logger
	server      *mcp.Server // the MCP-SDK server instance
}
