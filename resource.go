package cmdmcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// helpURIScheme prefixes the deterministic resource address derived from the
// command name. Clients may cache the address, so it must be stable across
// restarts.
const helpURIScheme = "cmdhelp"

// HelpResourceURI returns the address of the help resource for command.
func HelpResourceURI(command string) string {
	return fmt.Sprintf("%s://%s", helpURIScheme, command)
}

// registerHelpResource registers a resource that re-runs the configured help
// command on every read and returns its captured stdout. There is no cache:
// each read reflects the current output. Only stdout is returned; the help
// command's stderr and exit code are documentation noise, not payload.
func registerHelpResource(server *mcp.Server, cfg *handlerConfig) {
	uri := HelpResourceURI(cfg.command)

	resource := &mcp.Resource{
		URI:         uri,
		Name:        fmt.Sprintf("%s-help", cfg.command),
		Description: fmt.Sprintf("Usage documentation for the `%s` command, from `%s`", cfg.command, cfg.helpDisplay),
		MIMEType:    "text/plain",
	}

	handler := func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		result, err := cfg.runner.Run(ctx, cfg.helpArgv[0], cfg.helpArgv[1:], nil)
		if err != nil {
			cfg.logger.Error("help command failed to launch",
				"help_command", cfg.helpDisplay,
				"error", err)
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     result.Stdout,
			}},
		}, nil
	}

	server.AddResource(resource, handler)
}
