// Package output composes the final text for one invocation. Rendering
// is a pure function of the gathered snapshot, the selected options,
// and the current time; no system state is touched here.
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/qainar-projects/uptime/internal/format"
	"github.com/qainar-projects/uptime/sysinfo"
)

// Options selects which fields are rendered and how.
type Options struct {
	// Brief selects machine-friendly numeric renderings in selective mode.
	Brief bool
	// Pretty selects the day/hour/minute breakdown for selective uptime output.
	Pretty bool
	// Uptime includes the uptime field in selective mode.
	Uptime bool
	// Load includes the load averages in selective mode.
	Load bool
	// Users includes the user count in selective mode.
	Users bool
}

// Selective reports whether any individual field was requested.
func (o Options) Selective() bool {
	return o.Uptime || o.Load || o.Users
}

// Render produces the full output text for one run. Requested fields
// appear in the fixed order uptime, load, users regardless of flag
// order. With no field flags set, the classic one-line summary is
// produced and Brief and Pretty are ignored.
func Render(snap sysinfo.Snapshot, opts Options, now time.Time) string {
	if opts.Selective() {
		return renderSelective(snap, opts)
	}
	return renderDefault(snap, now)
}

func renderSelective(snap sysinfo.Snapshot, opts Options) string {
	var lines []string

	if opts.Uptime {
		switch {
		case opts.Brief:
			lines = append(lines, format.BriefSeconds(snap.UptimeSeconds))
		case opts.Pretty:
			lines = append(lines, format.Pretty(snap.UptimeSeconds))
		default:
			lines = append(lines, format.Seconds(snap.UptimeSeconds))
		}
	}

	if opts.Load {
		if opts.Brief {
			lines = append(lines, strings.Join(snap.LoadAverages, ","))
		} else {
			lines = append(lines, strings.Join(snap.LoadAverages, " "))
		}
	}

	if opts.Users {
		if opts.Brief {
			lines = append(lines, fmt.Sprintf("%d", snap.Users))
		} else {
			// The selective users line is always plural, unlike the
			// default summary.
			lines = append(lines, fmt.Sprintf("%d users", snap.Users))
		}
	}

	return strings.Join(lines, "\n")
}

func renderDefault(snap sysinfo.Snapshot, now time.Time) string {
	return fmt.Sprintf("%s up %s, %s, load average: %s",
		now.Format("15:04:05"),
		format.Pretty(snap.UptimeSeconds),
		format.Pluralize(snap.Users, "user"),
		strings.Join(snap.LoadAverages, ", "),
	)
}
