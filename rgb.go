package termpix

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// RGB represents an opaque colour with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// rgbFromColor converts any color.Color to RGB, undoing alpha
// premultiplication. Fully transparent colours become black.
func rgbFromColor(c color.Color) RGB {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return RGB{}
	}
	r, g, b := cf.Clamped().RGB255()
	return RGB{r, g, b}
}

// toUint32 packs the colour as 0xRRGGBB.
func (c RGB) toUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// blendOver composites a non-premultiplied colour with the given alpha
// over an opaque background.
func blendOver(fg RGB, alpha uint8, bg RGB) RGB {
	switch alpha {
	case 255:
		return fg
	case 0:
		return bg
	}
	r, g, b := bg.colorful().BlendRgb(fg.colorful(), float64(alpha)/255.0).Clamped().RGB255()
	return RGB{r, g, b}
}

// layer selects whether a colour is used for the glyph or the cell.
type layer bool

const (
	foreground layer = false
	background layer = true
)

// defaultParam is the SGR parameter that restores the terminal's default
// colour for the layer.
func (l layer) defaultParam() string {
	if l == background {
		return "49"
	}
	return "39"
}

// sgrParam returns the SGR parameter string selecting c on layer l:
// "38;2;r;g;b" in true colour, or the nearest xterm 256-colour index
// "38;5;n" otherwise.
func sgrParam(c RGB, l layer, trueColor bool) string {
	if trueColor {
		prefix := termenv.Foreground
		if l == background {
			prefix = termenv.Background
		}
		return fmt.Sprintf("%s;2;%d;%d;%d", prefix, c.R, c.G, c.B)
	}
	return toANSI256(c).Sequence(bool(l))
}

// toANSI256 maps c to the closest colour of the xterm 256-colour cube
// or grey ramp.
func toANSI256(c RGB) termenv.ANSI256Color {
	if ac, ok := termenv.ANSI256.Color(c.Hex()).(termenv.ANSI256Color); ok {
		return ac
	}
	return termenv.ANSI256Color(16)
}
