package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/wbrown/termpix"
	"github.com/wbrown/termpix/imageutil"
)

// envPrefix selects the environment variables read as configuration,
// e.g. TERMPIX_MAX_WIDTH for --max-width.
const envPrefix = "TERMPIX_"

const usageText = `termpix : display image from <file> in an ANSI terminal

Usage:
  termpix <file> [--width <width>] [--height <height>] [--max-width <max-width>] [--max-height <max-height>] [--true-color|--true-colour] [--filter <nearest|triangle|catmullrom|gaussian|lanczos3>]

  By default it will use as much of the current terminal window as possible, while maintaining the aspect
  ratio of the input image. This can be overridden as follows.

  Every option can also be set through the environment, e.g. TERMPIX_MAX_WIDTH=100.

Options:
`

// errUsage marks command line mistakes that should print the usage text.
var errUsage = errors.New("usage")

// Config is the merged command line and environment configuration.
type Config struct {
	File       string `koanf:"-"`
	Width      int    `koanf:"width"`
	Height     int    `koanf:"height"`
	MaxWidth   int    `koanf:"max-width"`
	MaxHeight  int    `koanf:"max-height"`
	TrueColor  bool   `koanf:"true-color"`
	TrueColour bool   `koanf:"true-colour"`
	Filter     string `koanf:"filter"`
	AutoOrient bool   `koanf:"auto-orient"`
	Verbose    bool   `koanf:"verbose"`
}

// newFlagSet declares the command line flags. Output goes to w.
func newFlagSet(w io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("termpix", pflag.ContinueOnError)
	fs.SetOutput(w)
	fs.SortFlags = false

	fs.Int("width", 0, "Output width in terminal columns.")
	fs.Int("height", 0, "Output height in terminal rows.")
	fs.Int("max-width", 0, "Maximum width to use when --width is excluded.")
	fs.Int("max-height", 0, "Maximum height to use when --height is excluded.")
	fs.Bool("true-colour", false, "Use 24-bit RGB colour. Some terminals don't support this.")
	fs.Bool("true-color", false, "Use 24-bit RGB color but you don't spell so good.")
	fs.String("filter", imageutil.DefaultFilter.String(),
		"Resampling filter: "+strings.Join(imageutil.FilterNames(), ", ")+".")
	fs.Bool("auto-orient", false, "Rotate JPEG photos upright using their EXIF orientation.")
	fs.BoolP("verbose", "v", false, "Log decode and sizing details to stderr.")

	fs.Usage = func() {
		fmt.Fprint(w, usageText)
		fs.PrintDefaults()
	}
	return fs
}

// envKey maps TERMPIX_MAX_WIDTH to max-width. Unknown variables are kept
// and ignored by Unmarshal.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
}

// loadConfig parses args on top of the TERMPIX_ environment. Flags given
// on the command line win over the environment, which wins over the flag
// defaults. pflag.ErrHelp is returned as is for --help.
func loadConfig(args []string, output io.Writer) (*Config, error) {
	fs := newFlagSet(output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, fmt.Errorf("reading flags: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	if fs.NArg() != 1 {
		return nil, fmt.Errorf("%w: expected exactly one <file>, got %d arguments", errUsage, fs.NArg())
	}
	cfg.File = fs.Arg(0)

	for _, name := range []string{"width", "height", "max-width", "max-height"} {
		if fs.Changed(name) && k.Int(name) == 0 {
			return nil, fmt.Errorf("%w: --%s must be positive", errUsage, name)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	dims := []struct {
		name  string
		value int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"max-width", c.MaxWidth},
		{"max-height", c.MaxHeight},
	}
	for _, d := range dims {
		if d.value < 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", errUsage, d.name, d.value)
		}
	}
	return nil
}

// SizeRequest returns the sizing part of the configuration.
func (c *Config) SizeRequest() termpix.SizeRequest {
	return termpix.SizeRequest{
		Width:     c.Width,
		Height:    c.Height,
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
}

// UseTrueColor reports whether either spelling of the flag was set.
func (c *Config) UseTrueColor() bool {
	return c.TrueColor || c.TrueColour
}
