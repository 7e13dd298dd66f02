package termpix

import (
	"os"

	"golang.org/x/term"
)

// SurfaceSizer reports the size of the display surface in columns and
// rows. ok is false when the size cannot be determined, for example when
// no terminal is attached.
type SurfaceSizer func() (cols, rows int, ok bool)

// TerminalSize queries the terminal attached to stdout, stderr or stdin,
// in that order, and returns the first size reported.
func TerminalSize() (cols, rows int, ok bool) {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if cols, rows, ok = fileSize(f); ok {
			return cols, rows, true
		}
	}
	return 0, 0, false
}

// FixedSurface returns a SurfaceSizer that always reports cols x rows.
func FixedSurface(cols, rows int) SurfaceSizer {
	return func() (int, int, bool) {
		return cols, rows, true
	}
}

func fileSize(f *os.File) (int, int, bool) {
	if f == nil {
		return 0, 0, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	Logger().Debug("terminal size", "fd", fd, "cols", cols, "rows", rows)
	return cols, rows, true
}
