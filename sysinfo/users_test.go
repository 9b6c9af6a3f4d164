package sysinfo

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCountLoginNames verifies login-name extraction and dedup.
func TestCountLoginNames(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   int
	}{
		{
			name:   "empty output",
			output: "",
			want:   0,
		},
		{
			name:   "single session",
			output: "alice    tty1         2026-08-29 09:15\n",
			want:   1,
		},
		{
			name: "same user on several terminals counts once",
			output: "alice    tty1         2026-08-29 09:15\n" +
				"alice    pts/0        2026-08-29 09:20 (:0)\n" +
				"bob      pts/1        2026-08-29 10:02 (10.0.0.5)\n",
			want: 2,
		},
		{
			name:   "blank lines are skipped",
			output: "\nalice tty1\n\n\nbob pts/0\n\n",
			want:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countLoginNames(tt.output))
		})
	}
}

// TestCountUnique verifies the full command path with an injected
// command producing canned who output.
func TestCountUnique(t *testing.T) {
	c := NewUserCounter("who", time.Second, nil)
	c.lookPath = func(name string) (string, error) {
		return name, nil
	}
	c.execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "printf",
			"alice tty1\nbob pts/0\nalice pts/1\n")
	}

	count, err := c.CountUnique(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// TestCountUniqueLookupFailure checks that a missing binary is an error.
func TestCountUniqueLookupFailure(t *testing.T) {
	c := NewUserCounter("who", time.Second, nil)
	c.lookPath = func(string) (string, error) {
		return "", exec.ErrNotFound
	}

	_, err := c.CountUnique(context.Background())
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

// TestCountUniqueTimeout checks that a command outliving its deadline
// is reported as a timeout, not as an exit-code failure.
func TestCountUniqueTimeout(t *testing.T) {
	c := NewUserCounter("who", 50*time.Millisecond, nil)
	c.lookPath = func(name string) (string, error) {
		return name, nil
	}
	c.execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sleep", "5")
	}

	_, err := c.CountUnique(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out after 50ms")
	assert.NotContains(t, err.Error(), "exited with code")
}

// TestCountUniqueCommandFailure checks that an abnormal exit is an error.
func TestCountUniqueCommandFailure(t *testing.T) {
	c := NewUserCounter("who", time.Second, nil)
	c.lookPath = func(name string) (string, error) {
		return name, nil
	}
	c.execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	}

	_, err := c.CountUnique(context.Background())
	assert.Error(t, err)
}

// TestNewUserCounterDefaults verifies constructor fallbacks.
func TestNewUserCounterDefaults(t *testing.T) {
	c := NewUserCounter("", 0, nil)
	assert.Equal(t, "who", c.binary)
	assert.Equal(t, 5*time.Second, c.timeout)
	assert.NotNil(t, c.logger)
}
