package cmdmcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExecRunner runs commands as child processes via os/exec. It is stateless
// and safe for concurrent use; each call owns its own process and streams.
type ExecRunner struct{}

// Run implements Runner. Arguments are passed through as discrete tokens
// with no shell interpretation. Stdout and stderr are captured separately
// and in full; os/exec drains them concurrently with the stdin write, so a
// chatty child cannot deadlock against its own input.
func (ExecRunner) Run(ctx context.Context, name string, args []string, stdin *string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	// A nil Stdin gives the child an empty stream, so a command that reads
	// input sees EOF immediately instead of blocking forever.
	if stdin != nil {
		cmd.Stdin = strings.NewReader(*stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The command ran to completion; a non-zero exit is data for
			// the caller, not an error.
			return &Result{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}, nil
		}
		return nil, fmt.Errorf("%w: %q: %v", ErrLaunchFailed, name, err)
	}

	return &Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
