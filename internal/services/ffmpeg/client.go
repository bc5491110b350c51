package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"

	"seqenc/internal/encoding"
	"seqenc/internal/services"
)

var commandContext = exec.CommandContext

// Streams carries the console handles forwarded to the subprocess.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, streams Streams) error
}

// Runner is the encoder behaviour the interactive session depends on.
type Runner interface {
	Binary() string
	Encode(ctx context.Context, args []string) error
	Probe(ctx context.Context, output string) error
}

// Option configures the client.
type Option func(*Client)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary = strings.TrimSpace(binary); binary != "" {
			c.binary = binary
		}
	}
}

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithStreams sets the handles ffmpeg inherits. Nil fields discard output or
// leave stdin unattached.
func WithStreams(streams Streams) Option {
	return func(c *Client) {
		c.streams = streams
	}
}

// Client wraps ffmpeg command-line invocations.
type Client struct {
	binary  string
	exec    Executor
	streams Streams
}

// New constructs a client that runs "ffmpeg" unless overridden.
func New(opts ...Option) *Client {
	client := &Client{
		binary: "ffmpeg",
		exec:   commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Binary returns the executable the client launches.
func (c *Client) Binary() string {
	return c.binary
}

// Encode runs ffmpeg with args and waits for it to exit. A nonzero exit is
// reported as *ExitError; a failed launch is tagged services.ErrNotFound when
// the binary is missing.
func (c *Client) Encode(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return services.Wrap(services.ErrValidation, "encode", "build arguments", "no ffmpeg arguments", nil)
	}
	return classify("encode", c.exec.Run(ctx, c.binary, args, c.streams))
}

// Probe runs ffmpeg in info-only mode against output so it prints the
// container metadata. ffmpeg exits nonzero when no output file is given,
// so callers normally ignore the result.
func (c *Client) Probe(ctx context.Context, output string) error {
	output = strings.TrimSpace(output)
	if output == "" {
		return services.Wrap(services.ErrValidation, "probe", "build arguments", "empty output path", nil)
	}
	return classify("probe", c.exec.Run(ctx, c.binary, encoding.ProbeArgs(output), c.streams))
}

// ExitError reports an ffmpeg process that ran and exited unsuccessfully.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Code < 0 {
		return "ffmpeg terminated by signal"
	}
	return fmt.Sprintf("ffmpeg exited with code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func classify(step string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return services.Wrap(services.ErrExternalTool, step, "run ffmpeg", "", &ExitError{Code: exitErr.ExitCode(), Err: err})
	}
	var coded *ExitError
	if errors.As(err, &coded) {
		return services.Wrap(services.ErrExternalTool, step, "run ffmpeg", "", err)
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return services.Wrap(services.ErrNotFound, step, "start ffmpeg", "", err)
	}
	return services.Wrap(services.ErrExternalTool, step, "start ffmpeg", "", err)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, streams Streams) error {
	cmd := commandContext(ctx, binary, args...) //nolint:gosec
	if streams.Stdin != nil {
		cmd.Stdin = streams.Stdin
	}
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}
	return cmd.Wait()
}

var _ Runner = (*Client)(nil)
