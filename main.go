// uptime reports host status: elapsed time since boot, load averages,
// and the number of distinct logged-in users.
//
// It reads /proc/uptime and /proc/loadavg and runs who(1), so it is
// Linux-only by design.
//
// Usage:
//
//	uptime [flags]
//
// Flags:
//
//	-b, --brief     Machine-friendly numerical output
//	-p, --pretty    Human-readable time format
//	-l, --load      Display load averages only
//	-u, --uptime    Display uptime only
//	-w, --users     Display user count only
//	-s, --since     Show boot time
//	-q, --quiet     Suppress diagnostic output
//	    --config    Path to configuration file
//	    --verbose   Enable debug logging
//	-h, --help      Show this help message
//	-v, --version   Show version information
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/qainar-projects/uptime/config"
	"github.com/qainar-projects/uptime/output"
	"github.com/qainar-projects/uptime/sysinfo"
)

// versionText returns the fixed three-line identification block.
// It depends on nothing but the build-time version variable, so the
// output is identical whatever other flags were passed.
func versionText(version string) string {
	return fmt.Sprintf("QCO MoreUtils uptime %s\nAuthor: AnmiTaliDev\nLicense: Apache 2.0\n", version)
}

// preflight validates the invocation before any system access. It
// returns the diagnostic for a positional argument or a non-Linux
// host, or "" when the run may proceed.
func preflight(args []string, goos string) string {
	if len(args) > 0 {
		return fmt.Sprintf("Error: unexpected argument %q", args[0])
	}
	if goos != "linux" {
		return "Error: This utility requires Linux"
	}
	return ""
}

// fatal writes one diagnostic line to stderr, unless quiet is set, and
// exits with status 1. Quiet suppresses the text only; the exit code
// still carries the failure.
func fatal(quiet bool, msg string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stderr, msg+"\n", args...)
	}
	os.Exit(1)
}

func printUsage() {
	fmt.Println("Usage: uptime [OPTIONS]")
	fmt.Println()
	fmt.Println("Flexible system uptime utility.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -b, --brief        Machine-friendly numerical output")
	fmt.Println("  -p, --pretty       Human-readable time format")
	fmt.Println("  -l, --load         Display load averages only")
	fmt.Println("  -u, --uptime       Display uptime only")
	fmt.Println("  -w, --users        Display user count only")
	fmt.Println("  -s, --since        Show boot time")
	fmt.Println("  -q, --quiet        Quiet mode (suppress diagnostics, keep exit codes)")
	fmt.Println("      --config PATH  Path to configuration file")
	fmt.Println("      --verbose      Enable debug logging")
	fmt.Println("  -h, --help         Show this help message")
	fmt.Println("  -v, --version      Show version information")
	fmt.Println()
	fmt.Println("Individual components (-u, -l, -w) may be combined; they always")
	fmt.Println("print in the order uptime, load, users.")
}

func main() {
	var (
		opts        output.Options
		showVersion bool
		showSince   bool
		showHelp    bool
		quiet       bool
		verbose     bool
		configPath  string
	)

	flag.BoolVar(&opts.Brief, "b", false, "machine-friendly numerical output")
	flag.BoolVar(&opts.Brief, "brief", false, "machine-friendly numerical output")
	flag.BoolVar(&opts.Pretty, "p", false, "human-readable time format")
	flag.BoolVar(&opts.Pretty, "pretty", false, "human-readable time format")
	flag.BoolVar(&opts.Load, "l", false, "display load averages only")
	flag.BoolVar(&opts.Load, "load", false, "display load averages only")
	flag.BoolVar(&opts.Uptime, "u", false, "display uptime only")
	flag.BoolVar(&opts.Uptime, "uptime", false, "display uptime only")
	flag.BoolVar(&opts.Users, "w", false, "display user count only")
	flag.BoolVar(&opts.Users, "users", false, "display user count only")
	flag.BoolVar(&showSince, "s", false, "show boot time")
	flag.BoolVar(&showSince, "since", false, "show boot time")
	flag.BoolVar(&quiet, "q", false, "quiet mode")
	flag.BoolVar(&quiet, "quiet", false, "quiet mode")
	flag.BoolVar(&showHelp, "h", false, "show help")
	flag.BoolVar(&showHelp, "help", false, "show help")
	flag.BoolVar(&showVersion, "v", false, "show version information")
	flag.BoolVar(&showVersion, "version", false, "show version information")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.Usage = printUsage
	flag.Parse()

	if showHelp {
		printUsage()
		os.Exit(0)
	}

	// Version short-circuits everything else, including the platform
	// gate: no system state is touched.
	if showVersion {
		fmt.Print(versionText(version))
		os.Exit(0)
	}

	if msg := preflight(flag.Args(), runtime.GOOS); msg != "" {
		fatal(quiet, "%s", msg)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	var logger *slog.Logger
	if quiet {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fatal(quiet, "Error: failed to load config: %v", err)
	}

	if showSince {
		boot, err := sysinfo.BootTime()
		if err != nil {
			fatal(quiet, "Error getting boot time: %v", err)
		}
		fmt.Println(boot.Format("2006-01-02 15:04:05"))
		os.Exit(0)
	}

	// All three acquisitions run in a fixed order so a failure is
	// attributable to the step that caused it.
	reader := sysinfo.NewReader(cfg.Proc.Uptime, cfg.Proc.Loadavg, logger)

	seconds, err := reader.Uptime()
	if err != nil {
		fatal(quiet, "Error reading uptime: %v", err)
	}

	load, err := reader.LoadAverages()
	if err != nil {
		fatal(quiet, "Error reading load average: %v", err)
	}

	counter := sysinfo.NewUserCounter(cfg.Who.Binary, cfg.WhoTimeout(), logger)
	users, err := counter.CountUnique(context.Background())
	if err != nil {
		fatal(quiet, "Error getting users: %v", err)
	}

	snap := sysinfo.Snapshot{
		UptimeSeconds: seconds,
		LoadAverages:  load,
		Users:         users,
	}

	fmt.Println(output.Render(snap, opts, time.Now()))
}
