//go:build !linux

package sysinfo

import (
	"errors"
	"time"
)

// BootTime is unsupported off Linux. The CLI's platform gate rejects
// these hosts before it is reached.
func BootTime() (time.Time, error) {
	return time.Time{}, errors.New("boot time requires Linux")
}
