package cmdmcp

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and replays scripted outcomes.
type fakeRunner struct {
	mu     sync.Mutex
	calls  []fakeCall
	result *Result
	err    error
}

type fakeCall struct {
	name  string
	args  []string
	stdin *string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string, stdin *string) (*Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{name: name, args: args, stdin: stdin})
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &Result{}, nil
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestHandlerConstruction(t *testing.T) {
	tests := []struct {
		name           string
		command        string
		opts           []Option
		wantErr        error
		wantNilHandler bool
	}{
		{
			name:    "basic handler",
			command: "echo",
			wantErr: nil,
		},
		{
			name:    "with description and metadata",
			command: "echo",
			opts: []Option{
				WithDescription("Echo text back"),
				WithName("echo-server"),
				WithVersion("1.2.3"),
			},
			wantErr: nil,
		},
		{
			name:           "empty command error",
			command:        "",
			wantErr:        ErrEmptyCommand,
			wantNilHandler: true,
		},
		{
			name:           "empty description error",
			command:        "echo",
			opts:           []Option{WithDescription("")},
			wantErr:        ErrEmptyDescription,
			wantNilHandler: true,
		},
		{
			name:           "empty name error",
			command:        "echo",
			opts:           []Option{WithName("")},
			wantErr:        ErrEmptyName,
			wantNilHandler: true,
		},
		{
			name:           "empty version error",
			command:        "echo",
			opts:           []Option{WithVersion("")},
			wantErr:        ErrEmptyVersion,
			wantNilHandler: true,
		},
		{
			name:           "empty help command error",
			command:        "echo",
			opts:           []Option{WithHelpCommand("")},
			wantErr:        ErrInvalidHelpCommand,
			wantNilHandler: true,
		},
		{
			name:           "unterminated quote in help command",
			command:        "echo",
			opts:           []Option{WithHelpCommand(`git "--help`)},
			wantErr:        ErrInvalidHelpCommand,
			wantNilHandler: true,
		},
		{
			name:           "nil runner error",
			command:        "echo",
			opts:           []Option{WithRunner(nil)},
			wantErr:        ErrNilRunner,
			wantNilHandler: true,
		},
		{
			name:           "nil logger error",
			command:        "echo",
			opts:           []Option{WithLogger(nil)},
			wantErr:        ErrNilLogger,
			wantNilHandler: true,
		},
		{
			name:           "nil server error",
			command:        "echo",
			opts:           []Option{WithServer(nil)},
			wantErr:        ErrNilServer,
			wantNilHandler: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := New(tt.command, tt.opts...)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantNilHandler {
					assert.Nil(t, handler)
				}
			} else {
				require.NoError(t, err)
				assert.NotNil(t, handler)
				assert.NotNil(t, handler.server)
			}
		})
	}
}

func TestBuildInstructions(t *testing.T) {
	t.Run("without help command", func(t *testing.T) {
		runner := &fakeRunner{}
		cfg := &handlerConfig{
			command: "jq",
			runner:  runner,
			logger:  slog.Default(),
		}

		instructions := buildInstructions(cfg)
		assert.Contains(t, instructions, "wraps the `jq` shell command")
		assert.Contains(t, instructions, "`arguments`")
		assert.Contains(t, instructions, "`stdin`")
		assert.NotContains(t, instructions, "Output of")
		assert.Equal(t, 0, runner.callCount(), "no help command, no invocation")
	})

	t.Run("help output embedded verbatim", func(t *testing.T) {
		runner := &fakeRunner{result: &Result{Stdout: "usage: jq [OPTIONS] FILTER"}}
		cfg := &handlerConfig{
			command:     "jq",
			helpArgv:    []string{"jq", "--help"},
			helpDisplay: "jq --help",
			runner:      runner,
			logger:      slog.Default(),
		}

		instructions := buildInstructions(cfg)
		assert.Contains(t, instructions, "Output of `jq --help`:")
		assert.Contains(t, instructions, "usage: jq [OPTIONS] FILTER")

		require.Equal(t, 1, runner.callCount())
		call := runner.calls[0]
		assert.Equal(t, "jq", call.name)
		assert.Equal(t, []string{"--help"}, call.args)
		assert.Nil(t, call.stdin)
	})

	t.Run("launch failure degrades and logs", func(t *testing.T) {
		var logBuf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logBuf, nil))

		runner := &fakeRunner{err: ErrLaunchFailed}
		cfg := &handlerConfig{
			command:     "jq",
			helpArgv:    []string{"jq", "--help"},
			helpDisplay: "jq --help",
			runner:      runner,
			logger:      logger,
		}

		instructions := buildInstructions(cfg)
		assert.Contains(t, instructions, "wraps the `jq` shell command")
		assert.NotContains(t, instructions, "Output of")
		assert.Contains(t, logBuf.String(), "omitting usage")
	})
}

func TestHelpCommandRunsOnceAtConstruction(t *testing.T) {
	runner := &fakeRunner{result: &Result{Stdout: "usage text"}}
	handler, err := New("mytool",
		WithHelpCommand("mytool --help"),
		WithRunner(runner),
	)
	require.NoError(t, err)
	assert.NotNil(t, handler)
	assert.Equal(t, 1, runner.callCount())
}

func TestGetServer(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-server",
		Version: "1.0.0",
	}, nil)

	handler, err := New("echo", WithServer(server))
	require.NoError(t, err)

	assert.Equal(t, server, handler.GetServer())
}

func TestServeHTTP(t *testing.T) {
	handler, err := New("echo")
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	defer server.Close()

	// The MCP handler should respond (even if with an error for GET request)
	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() {
		err := resp.Body.Close()
		require.NoError(t, err)
	}()

	assert.NotEqual(t, 0, resp.StatusCode)
}

func TestServeSSE(t *testing.T) {
	handler, err := New("echo")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(handler.ServeSSE))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() {
		err := resp.Body.Close()
		require.NoError(t, err)
	}()

	assert.NotEqual(t, 0, resp.StatusCode)
}
