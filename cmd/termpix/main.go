// Command termpix displays an image file in an ANSI terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/wbrown/termpix"
	"github.com/wbrown/termpix/imageutil"
)

// Exit codes.
const (
	exitOK        = 0
	exitUsage     = 1
	exitLoadError = -1
)

const surfaceUnavailableMsg = "Neither --width or --height specified, and could not determine terminal size. Giving up."

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, termpix.TerminalSize))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, surface termpix.SurfaceSizer) int {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "Run 'termpix --help' for usage.")
		}
		return exitUsage
	}

	filter, err := imageutil.ParseFilter(cfg.Filter)
	if err != nil {
		fmt.Fprintf(stderr, "Unknown filter: %s (expected one of %v)\n", cfg.Filter, imageutil.FilterNames())
		return exitLoadError
	}

	if cfg.Verbose {
		termpix.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer termpix.SetLogger(nil)
	}

	err = termpix.Display(stdout, cfg.File, termpix.Options{
		Size:       cfg.SizeRequest(),
		TrueColor:  cfg.UseTrueColor(),
		Filter:     filter,
		AutoOrient: cfg.AutoOrient,
		Surface:    surface,
	})
	return exitCode(err, stderr)
}

// exitCode reports err on stderr and maps it to an exit code.
func exitCode(err error, stderr io.Writer) int {
	var (
		verr *imageutil.VectorDecodeError
		rerr *imageutil.RasterDecodeError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, termpix.ErrSurfaceSizeUnavailable):
		fmt.Fprintln(stderr, surfaceUnavailableMsg)
		return exitUsage
	case errors.As(err, &verr), errors.As(err, &rerr):
		fmt.Fprintln(stderr, err)
		return exitLoadError
	default:
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
}
