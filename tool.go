package cmdmcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerCommandTool registers the single generic "execute the configured
// command" tool. The tool's name is the command name itself; the schema is
// the fixed arguments/stdin shape.
func registerCommandTool(server *mcp.Server, cfg *handlerConfig) {
	description := cfg.description
	if description == "" {
		description = fmt.Sprintf("Execute the `%s` command", cfg.command)
	}

	tool := &mcp.Tool{
		Name:        cfg.command,
		Description: description,
		InputSchema: ExecInputSchema(),
	}
	mcp.AddTool(server, tool, createExecHandler(cfg))
}

// createExecHandler adapts the Runner to the MCP ToolHandlerFor signature.
//
// Error classification follows the invocation contract:
//   - launch or I/O failure: returned as a Go error, which the SDK surfaces
//     as an error outcome to the caller, never as a zero-exit result
//   - non-zero exit: a normal ExecOutput; the caller inspects exit_code
func createExecHandler(cfg *handlerConfig) mcp.ToolHandlerFor[ExecInput, ExecOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExecInput) (*mcp.CallToolResult, ExecOutput, error) {
		result, err := cfg.runner.Run(ctx, cfg.command, input.Arguments, input.Stdin)
		if err != nil {
			cfg.logger.Error("command invocation failed",
				"command", cfg.command,
				"error", err)
			return nil, ExecOutput{}, err
		}

		cfg.logger.Debug("command invocation complete",
			"command", cfg.command,
			"exit_code", result.ExitCode,
			"stdout_bytes", len(result.Stdout),
			"stderr_bytes", len(result.Stderr))

		return nil, ExecOutput{
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}, nil
	}
}
