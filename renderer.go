package termpix

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/wbrown/termpix/imageutil"
)

// Renderer draws a decoded image to a terminal stream. img is the image
// at its native resolution; the renderer resamples it to size with filter.
// size is in pixels and always positive on both axes.
type Renderer interface {
	Render(w io.Writer, img *imageutil.RGBAImage, trueColor bool, size Size, filter imageutil.Filter) error
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc func(w io.Writer, img *imageutil.RGBAImage, trueColor bool, size Size, filter imageutil.Filter) error

// Render calls f.
func (f RendererFunc) Render(w io.Writer, img *imageutil.RGBAImage, trueColor bool, size Size, filter imageutil.Filter) error {
	return f(w, img, trueColor, size, filter)
}

// DefaultAlphaThreshold is the alpha below which a pixel is left to the
// terminal's default colour instead of being painted.
const DefaultAlphaThreshold = 128

// HalfBlockRenderer prints two pixel rows per terminal row using the
// upper half block glyph: the foreground paints the upper pixel and the
// background paints the lower one.
//
// Pixels with alpha below AlphaThreshold are not painted. Pixels at or
// above it are composited over Background. A single HalfBlockRenderer can
// be shared between goroutines.
type HalfBlockRenderer struct {
	Background     RGB
	AlphaThreshold uint8

	cache *ColorCache
}

// RendererOption is a functional option for configuring a HalfBlockRenderer.
type RendererOption func(*HalfBlockRenderer)

// NewHalfBlockRenderer creates a renderer with the given options.
// Default values: Background=black, AlphaThreshold=128, a private colour cache.
func NewHalfBlockRenderer(opts ...RendererOption) *HalfBlockRenderer {
	r := &HalfBlockRenderer{
		AlphaThreshold: DefaultAlphaThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = NewColorCache()
	}
	return r
}

// WithBackground sets the colour that translucent pixels are composited
// over.
func WithBackground(c color.Color) RendererOption {
	return func(r *HalfBlockRenderer) {
		r.Background = rgbFromColor(c)
	}
}

// WithAlphaThreshold sets the alpha below which pixels are left unpainted.
// Zero paints every pixel.
func WithAlphaThreshold(threshold uint8) RendererOption {
	return func(r *HalfBlockRenderer) {
		r.AlphaThreshold = threshold
	}
}

// WithColorCache shares a colour cache between renderers.
func WithColorCache(cc *ColorCache) RendererOption {
	return func(r *HalfBlockRenderer) {
		r.cache = cc
	}
}

// CacheStats returns colour cache hit/miss statistics.
func (r *HalfBlockRenderer) CacheStats() (hits, misses int, hitRate float64) {
	return r.cache.Stats()
}

// Render resamples img to size and writes size.Rows() lines to w. An odd
// final pixel row is drawn over the terminal's default background.
func (r *HalfBlockRenderer) Render(w io.Writer, img *imageutil.RGBAImage, trueColor bool, size Size, filter imageutil.Filter) error {
	if img == nil || img.Width() == 0 || img.Height() == 0 {
		return fmt.Errorf("render: %w", imageutil.ErrEmptyImage)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("render: %w: target %dx%d", ErrInvalidDimensions, size.Width, size.Height)
	}

	scaled := imageutil.Resize(img.RGBA, size.Width, size.Height, filter)

	lw := newLineWriter(w)
	for y := 0; y < size.Height; y += PixelsPerRow {
		for x := 0; x < size.Width; x++ {
			top := scaled.NRGBAAt(x, y)
			bottom, hasBottom := color.NRGBA{}, y+1 < size.Height
			if hasBottom {
				bottom = scaled.NRGBAAt(x, y+1)
			}
			glyph, fg, bg := r.cell(top, bottom, hasBottom, trueColor)
			lw.cell(glyph, fg, bg)
		}
		if err := lw.endLine(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	hits, misses, _ := r.cache.Stats()
	Logger().Debug("rendered image",
		"width", size.Width,
		"height", size.Height,
		"rows", size.Rows(),
		"true_color", trueColor,
		"filter", filter.String(),
		"sgr_sequences", lw.sgrs,
		"cache_hits", hits,
		"cache_misses", misses)

	return nil
}

// cell picks the glyph and SGR parameters for one terminal cell holding
// the upper pixel top and, if hasBottom, the lower pixel bottom.
func (r *HalfBlockRenderer) cell(top, bottom color.NRGBA, hasBottom, trueColor bool) (rune, string, string) {
	topOn := top.A >= r.AlphaThreshold
	bottomOn := hasBottom && bottom.A >= r.AlphaThreshold
	defaultBG := background.defaultParam()

	switch {
	case topOn && bottomOn:
		return upperHalf,
			r.cache.param(r.composite(top), foreground, trueColor),
			r.cache.param(r.composite(bottom), background, trueColor)
	case topOn:
		return upperHalf, r.cache.param(r.composite(top), foreground, trueColor), defaultBG
	case bottomOn:
		return lowerHalf, r.cache.param(r.composite(bottom), foreground, trueColor), defaultBG
	default:
		return emptyCell, "", defaultBG
	}
}

func (r *HalfBlockRenderer) composite(c color.NRGBA) RGB {
	return blendOver(RGB{c.R, c.G, c.B}, c.A, r.Background)
}

// RenderImage renders any image.Image with a default HalfBlockRenderer.
func RenderImage(w io.Writer, img image.Image, trueColor bool, size Size, filter imageutil.Filter) error {
	return NewHalfBlockRenderer().Render(w, imageutil.RGBAImageFromImage(img), trueColor, size, filter)
}
