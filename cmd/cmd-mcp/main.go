// cmd-mcp exposes a single shell command as an MCP server.
//
// The configured command becomes a tool named after it, taking an ordered
// `arguments` array and an optional `stdin` string, and returning the exit
// code and captured output streams. An optional help command seeds the
// server instructions and backs a re-readable help resource.
//
// By default the server speaks MCP over stdio; --listen switches to the
// streamable HTTP transport.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	cmdmcp "github.com/robbyt/go-cmdmcp"
)

const version = "1.0.0"

type cliConfig struct {
	command     string
	description string
	helpCommand string
	listenAddr  string
	logLevel    string
	showVersion bool
	showHelp    bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, flagSet, err := parseFlags("cmd-mcp", args)
	if err != nil {
		return err
	}

	if cfg.showHelp {
		printUsage(flagSet)
		return nil
	}
	if cfg.showVersion {
		fmt.Println("cmd-mcp " + version)
		return nil
	}
	if cfg.command == "" {
		return errors.New("--command is required")
	}

	level, err := parseLogLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	// Logs go to stderr: stdout belongs to the stdio transport.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []cmdmcp.Option{
		cmdmcp.WithName("cmd-mcp"),
		cmdmcp.WithVersion(version),
		cmdmcp.WithLogger(logger),
	}
	if cfg.description != "" {
		opts = append(opts, cmdmcp.WithDescription(cfg.description))
	}
	if cfg.helpCommand != "" {
		opts = append(opts, cmdmcp.WithHelpCommand(cfg.helpCommand))
	}

	handler, err := cmdmcp.New(cfg.command, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.listenAddr != "" {
		return serveHTTP(ctx, logger, handler, cfg.listenAddr)
	}

	logger.Info("serving MCP over stdio", "command", cfg.command)
	if err := handler.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func parseFlags(name string, args []string) (*cliConfig, *pflag.FlagSet, error) {
	cfg := &cliConfig{}

	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVar(&cfg.command, "command", "", "command to expose as an MCP tool (e.g. 'git')")
	flagSet.StringVar(&cfg.description, "description", "", "description shown for the tool")
	flagSet.StringVar(&cfg.helpCommand, "command-help", "", "help command whose stdout documents usage (e.g. 'git --help')")
	flagSet.StringVar(&cfg.listenAddr, "listen", "", "serve MCP over HTTP on this address instead of stdio")
	flagSet.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flagSet.BoolVar(&cfg.showVersion, "version", false, "print version")
	flagSet.BoolVarP(&cfg.showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cfg.showHelp = true
			return cfg, flagSet, nil
		}
		return nil, nil, err
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, nil, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	return cfg, flagSet, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", level)
	}
}

func serveHTTP(ctx context.Context, logger *slog.Logger, handler http.Handler, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving MCP over HTTP", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Printf(`cmd-mcp %s — expose a shell command via MCP

USAGE:
  cmd-mcp --command COMMAND [FLAGS]

FLAGS:
%s
EXAMPLES:
  # Expose git over stdio, with usage docs from 'git --help'
  cmd-mcp --command git --command-help 'git --help'

  # Expose jq over HTTP
  cmd-mcp --command jq --listen 127.0.0.1:8080
`, version, flagSet.FlagUsages())
}
