package sysinfo

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Reader reads uptime and load averages from the kernel's pseudo-files.
// The file openers are overridable for testing.
type Reader struct {
	logger *slog.Logger

	openUptime  func() (io.ReadCloser, error)
	openLoadavg func() (io.ReadCloser, error)
}

// NewReader creates a Reader for the given pseudo-file paths.
// If logger is nil, a no-op logger is used.
func NewReader(uptimePath, loadavgPath string, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Reader{
		logger: logger,
		openUptime: func() (io.ReadCloser, error) {
			return os.Open(uptimePath)
		},
		openLoadavg: func() (io.ReadCloser, error) {
			return os.Open(loadavgPath)
		},
	}
}

// Uptime returns the seconds-since-boot value: the first
// whitespace-delimited token on the pseudo-file's first line, parsed
// as a floating-point number.
func (r *Reader) Uptime() (float64, error) {
	f, err := r.openUptime()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	line, err := firstLine(f)
	if err != nil {
		return 0, err
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("no fields in uptime line %q", line)
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse uptime seconds: %w", err)
	}

	r.logger.Debug("read uptime", "seconds", seconds)
	return seconds, nil
}

// LoadAverages returns up to three verbatim tokens from the first line
// of the load-average pseudo-file. Tokens are not validated as numbers;
// a line with fewer than three fields yields fewer tokens.
func (r *Reader) LoadAverages() ([]string, error) {
	f, err := r.openLoadavg()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	line, err := firstLine(f)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(line)
	if len(fields) > 3 {
		fields = fields[:3]
	}

	r.logger.Debug("read load averages", "tokens", fields)
	return fields, nil
}

// firstLine reads the first line of r. An empty input yields an empty
// line, not an error; callers handle missing fields themselves.
func firstLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", nil
}
