package entities

import "errors"

// Error kinds surfaced by the pipeline. Stages wrap these with context;
// callers classify with errors.Is.
var (
	// ErrToolNotFound means a required external executable is missing
	// from the environment.
	ErrToolNotFound = errors.New("required tool not found")

	// ErrToolExecution means an external process exited outside its
	// tool-specific set of acceptable exit codes.
	ErrToolExecution = errors.New("tool execution failed")

	// ErrMalformedOutput means a tool produced output that could not be
	// parsed (invalid JSON/XML).
	ErrMalformedOutput = errors.New("malformed tool output")

	// ErrRemoteQuery means the analysis server could not be reached or
	// answered unusably. Fatal: the gate cannot be evaluated without it.
	ErrRemoteQuery = errors.New("remote query failed")

	// ErrGateFailed means a quality gate's thresholds were violated.
	ErrGateFailed = errors.New("quality gate failed")

	// ErrUserDeclined means the operator declined to continue. A graceful
	// early stop, not a failure.
	ErrUserDeclined = errors.New("declined by user")
)
