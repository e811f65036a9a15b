// Package gateways contains the production adapters behind the domain's
// collaborator interfaces: subprocess invocation, the analysis server's
// HTTP API, the git repository, and the remediation advisor.
package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"aegis/internal/domain/entities"
)

// Runner executes one external command and classifies its outcome.
// Adapters depend on this interface so tests can substitute canned
// results for real subprocesses.
type Runner interface {
	Run(ctx context.Context, spec CommandSpec) (*entities.ToolInvocationResult, error)
}

// CommandSpec describes one external invocation.
type CommandSpec struct {
	Name    string
	Args    []string
	Dir     string
	Env     map[string]string
	Timeout time.Duration

	// OKExitCodes are the codes the tool's own contract treats as valid
	// data states. Empty means only 0.
	OKExitCodes []int
}

// CommandRunner runs subprocesses with a context timeout and captured
// output, producing an immutable ToolInvocationResult per call.
type CommandRunner struct {
	defaultTimeout time.Duration
}

// NewCommandRunner creates a runner with the given fallback timeout.
func NewCommandRunner(defaultTimeout time.Duration) *CommandRunner {
	return &CommandRunner{defaultTimeout: defaultTimeout}
}

// Run implements Runner. A missing executable is entities.ErrToolNotFound
// and a timeout is entities.ErrToolExecution; an exit code outside the
// acceptable set is returned as a result with Succeeded=false, because
// some callers treat those as data, not failure.
func (r *CommandRunner) Run(ctx context.Context, spec CommandSpec) (*entities.ToolInvocationResult, error) {
	timeout := spec.Timeout
	if timeout == 0 {
		timeout = r.defaultTimeout
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	//nolint:gosec // G204: commands come from validated configuration
	cmd := exec.CommandContext(execCtx, spec.Name, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	env := os.Environ()
	for key, value := range spec.Env {
		env = append(env, key+"="+value)
	}
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &entities.ToolInvocationResult{
		Command: spec.Name,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound):
			return nil, fmt.Errorf("%w: %s", entities.ErrToolNotFound, spec.Name)
		case execCtx.Err() == context.DeadlineExceeded:
			return nil, fmt.Errorf("%w: %s timed out after %v", entities.ErrToolExecution, spec.Name, timeout)
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
		default:
			return nil, fmt.Errorf("%w: running %s: %v", entities.ErrToolExecution, spec.Name, err)
		}
	}

	result.Succeeded = exitCodeAccepted(result.ExitCode, spec.OKExitCodes)
	return result, nil
}

func exitCodeAccepted(code int, ok []int) bool {
	if len(ok) == 0 {
		return code == 0
	}
	for _, c := range ok {
		if code == c {
			return true
		}
	}
	return false
}
