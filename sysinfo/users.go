package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/qainar-projects/uptime/internal/format"
)

// UserCounter counts distinct logged-in users by running the
// platform's session-listing command (who). Binary lookup and command
// execution are overridable for testing.
type UserCounter struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger

	lookPath    func(string) (string, error)
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewUserCounter creates a UserCounter running the given binary with
// the given execution timeout. If logger is nil, a no-op logger is
// used.
func NewUserCounter(binary string, timeout time.Duration, logger *slog.Logger) *UserCounter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if binary == "" {
		binary = "who"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &UserCounter{
		binary:      binary,
		timeout:     timeout,
		logger:      logger,
		lookPath:    exec.LookPath,
		execCommand: exec.CommandContext,
	}
}

// CountUnique runs the session-listing command with no arguments and
// returns the number of distinct login names on its output: one
// session per line, first whitespace-delimited token per line.
func (c *UserCounter) CountUnique(ctx context.Context) (int, error) {
	path, err := c.lookPath(c.binary)
	if err != nil {
		return 0, fmt.Errorf("locate %s: %w", c.binary, err)
	}

	execCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := c.execCommand(execCtx, path)
	out, err := cmd.Output()
	if err != nil {
		// A timeout kill surfaces as a plain ExitError; attribute it
		// to the deadline rather than the bogus exit code.
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			return 0, fmt.Errorf("%s timed out after %s", c.binary, c.timeout)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return 0, fmt.Errorf("%s exited with code %d: %s",
				c.binary, exitErr.ExitCode(), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return 0, fmt.Errorf("run %s: %w", c.binary, err)
	}

	count := countLoginNames(string(out))
	c.logger.Debug("counted users", "command", path, "users", count)
	return count, nil
}

// countLoginNames extracts the first token of each non-blank line and
// counts the distinct names.
func countLoginNames(output string) int {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[0])
	}
	return len(format.UniqueStrings(names))
}
