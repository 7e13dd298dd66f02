// Package termpix displays still images in an ANSI terminal.
//
// An image file is decoded into an RGBA buffer by imageutil.LoadImage,
// SVG documents included. ResolveSize then picks a target size from
// explicit dimensions or from the terminal size, keeping the aspect ratio,
// and a Renderer prints the buffer at that size using half-block glyphs
// in 256 or 24-bit colour.
//
// Basic usage:
//
//	opts := termpix.DefaultOptions()
//	opts.Size.MaxWidth = 100
//	err := termpix.Display(os.Stdout, "photo.jpg", opts)
package termpix

import (
	"io"

	"github.com/wbrown/termpix/imageutil"
)

// Options configures Display. The zero value fits the image to the
// terminal in 256-colour mode with nearest-neighbour sampling;
// DefaultOptions selects the default filter instead.
type Options struct {
	// Size holds the requested dimensions and caps.
	Size SizeRequest

	// TrueColor selects 24-bit colour output.
	TrueColor bool

	// Filter is the resampling kernel used by the renderer.
	Filter imageutil.Filter

	// AutoOrient applies the EXIF orientation of raster images.
	AutoOrient bool

	// Surface reports the terminal size. Defaults to TerminalSize.
	Surface SurfaceSizer

	// Renderer draws the image. Defaults to a new HalfBlockRenderer.
	Renderer Renderer
}

// DefaultOptions returns Options with the default filter set.
func DefaultOptions() Options {
	return Options{Filter: imageutil.DefaultFilter}
}

// Display loads the image at path, resolves its display size and renders
// it to w. Load errors are *imageutil.VectorDecodeError or
// *imageutil.RasterDecodeError; sizing errors match ErrSurfaceSizeUnavailable,
// ErrSurfaceTooSmall or ErrInvalidDimensions with errors.Is.
func Display(w io.Writer, path string, opts Options) error {
	var loadOpts []imageutil.LoadOption
	if opts.AutoOrient {
		loadOpts = append(loadOpts, imageutil.WithAutoOrient())
	}

	img, err := imageutil.LoadImage(path, loadOpts...)
	if err != nil {
		return err
	}

	surface := opts.Surface
	if surface == nil {
		surface = TerminalSize
	}
	size, err := ResolveSize(img.Width(), img.Height(), opts.Size, surface)
	if err != nil {
		return err
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewHalfBlockRenderer()
	}
	return renderer.Render(w, img, opts.TrueColor, size, opts.Filter)
}
