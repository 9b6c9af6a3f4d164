// Package sysinfo acquires host status for one invocation: uptime
// seconds and load-average tokens from the kernel's /proc pseudo-files,
// and the distinct logged-in user count via the session-listing
// command. Every value is read fresh on each call; nothing is cached
// across runs.
package sysinfo

// Snapshot holds the host status gathered for a single run.
type Snapshot struct {
	// UptimeSeconds is the elapsed seconds since boot.
	UptimeSeconds float64

	// LoadAverages holds up to three verbatim load tokens
	// (1-, 5-, and 15-minute), in that order.
	LoadAverages []string

	// Users is the count of distinct logged-in user names.
	Users int
}
