package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/termpix"
	"github.com/wbrown/termpix/imageutil"
)

func noTerminal() (int, int, bool) { return 0, 0, false }

func writeTestPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bars.png")
	require.NoError(t, imageutil.WriteTestImage(path, imageutil.CreateColorBarsImage(160, 90)))
	return path
}

func runCLI(t *testing.T, surface termpix.SurfaceSizer, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, surface)
	return code, stdout.String(), stderr.String()
}

func TestRunFitsTerminal(t *testing.T) {
	code, out, errOut := runCLI(t, termpix.FixedSurface(80, 25), writeTestPNG(t))

	assert.Equal(t, exitOK, code, errOut)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 23, "80x45 pixels is 23 rows")
	assert.Equal(t, 80, strings.Count(lines[0], "▀"))
	assert.Empty(t, errOut)
}

func TestRunExplicitSizeWithoutTerminal(t *testing.T) {
	code, out, _ := runCLI(t, noTerminal, "--width", "16", "--height", "3", "--true-color", writeTestPNG(t))

	assert.Equal(t, exitOK, code)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 3)
	assert.Contains(t, out, "38;2;")
}

func TestRunSurfaceUnavailable(t *testing.T) {
	code, out, errOut := runCLI(t, noTerminal, writeTestPNG(t))

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, out)
	assert.Equal(t, surfaceUnavailableMsg+"\n", errOut)
}

func TestRunUnknownFilter(t *testing.T) {
	// The file does not exist: the filter must be rejected first.
	code, out, errOut := runCLI(t, noTerminal, "--filter", "blur", filepath.Join(t.TempDir(), "missing.png"))

	assert.Equal(t, exitLoadError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Unknown filter: blur")
}

func TestRunLoadErrors(t *testing.T) {
	t.Run("missing raster", func(t *testing.T) {
		code, out, errOut := runCLI(t, termpix.FixedSurface(80, 25), filepath.Join(t.TempDir(), "missing.png"))
		assert.Equal(t, exitLoadError, code)
		assert.Empty(t, out)
		assert.NotEmpty(t, errOut)
	})

	t.Run("corrupt svg", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.svg")
		require.NoError(t, os.WriteFile(path, []byte("<svg><rect"), 0o644))

		code, out, errOut := runCLI(t, termpix.FixedSurface(80, 25), path)
		assert.Equal(t, exitLoadError, code)
		assert.Empty(t, out, "no partial output")
		assert.Contains(t, errOut, "failed to load svg")
	})
}

func TestRunUsageErrors(t *testing.T) {
	code, _, errOut := runCLI(t, noTerminal)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "--help")

	code, _, _ = runCLI(t, noTerminal, "--width", "-5", "a.png")
	assert.Equal(t, exitUsage, code)
}

func TestRunHelp(t *testing.T) {
	code, out, errOut := runCLI(t, noTerminal, "--help")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage:")
}

func TestRunVerbose(t *testing.T) {
	code, _, errOut := runCLI(t, noTerminal, "-v", "--width", "8", writeTestPNG(t))
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "rendered image")
	assert.False(t, termpix.Logger().Enabled(context.Background(), 0), "logger restored after run")
}
