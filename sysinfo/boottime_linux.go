//go:build linux

package sysinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

// BootTime returns the kernel boot time, computed from the sysinfo(2)
// uptime counter.
func BootTime() (time.Time, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return time.Time{}, err
	}
	return time.Now().Add(-time.Duration(info.Uptime) * time.Second), nil
}
