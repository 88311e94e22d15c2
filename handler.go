package cmdmcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler bridges one configured shell command to MCP callers: a tool named
// after the command that executes it per call, and (when a help command is
// configured) a read-only resource serving its usage text.
type Handler struct {
	server      *mcp.Server
	httpHandler http.Handler
}

// New creates a handler exposing command as an MCP tool. The command name is
// not validated against PATH here; resolution happens at call time. Only the
// optional help command is exercised once, to seed the server instructions.
func New(command string, opts ...Option) (*Handler, error) {
	if command == "" {
		return nil, ErrEmptyCommand
	}

	cfg := &handlerConfig{
		command: command,
		name:    "cmd-mcp",
		version: "1.0.0",
		runner:  ExecRunner{},
		logger:  slog.Default(),
	}

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	// Create a new MCP server if not provided
	if cfg.server == nil {
		impl := &mcp.Implementation{
			Name:    cfg.name,
			Version: cfg.version,
		}
		cfg.server = mcp.NewServer(impl, &mcp.ServerOptions{
			Instructions: buildInstructions(cfg),
		})
	}

	registerCommandTool(cfg.server, cfg)
	if len(cfg.helpArgv) > 0 {
		registerHelpResource(cfg.server, cfg)
	}

	// Create transport handler
	httpHandler := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return cfg.server },
		nil,
	)

	return &Handler{
		server:      cfg.server,
		httpHandler: httpHandler,
	}, nil
}

// buildInstructions assembles the server-level instructions text shown to
// clients at session start. When a help command is configured it is run once
// and its stdout embedded verbatim; if that single run cannot be launched,
// the usage section is omitted and the failure logged, so a valid primary
// command still serves. No placeholder text is emitted in either case.
func buildInstructions(cfg *handlerConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This server wraps the `%s` shell command.\n", cfg.command)
	fmt.Fprintf(&b, "Invoke the `%s` tool to run it. Provide arguments via the `arguments` parameter; optional stdin can be set via `stdin`.\n", cfg.command)

	if len(cfg.helpArgv) == 0 {
		return b.String()
	}

	result, err := cfg.runner.Run(context.Background(), cfg.helpArgv[0], cfg.helpArgv[1:], nil)
	if err != nil {
		cfg.logger.Error("help command failed to launch, omitting usage from instructions",
			"help_command", cfg.helpDisplay,
			"error", err)
		return b.String()
	}

	fmt.Fprintf(&b, "\nOutput of `%s`:\n\n%s", cfg.helpDisplay, result.Stdout)
	return b.String()
}

// GetServer returns the underlying MCP server for advanced usage
func (h *Handler) GetServer() *mcp.Server {
	return h.server
}

// ServeHTTP implements http.Handler for the streamable HTTP transport
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.httpHandler.ServeHTTP(w, r)
}

// ServeSSE implements SSE transport by delegating to ServeHTTP
// The MCP SDK handles the transport differences internally
func (h *Handler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	h.ServeHTTP(w, r)
}

// ServeStdio serves MCP over stdin/stdout until ctx is canceled or the
// client disconnects
func (h *Handler) ServeStdio(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return h.server.Run(ctx, transport)
}
