// Package imageutil loads raster and vector images into a uniform RGBA
// pixel buffer and resamples that buffer for terminal display.
package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// The bounds always start at (0, 0).
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage, moving its
// origin to (0, 0).
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return &RGBAImage{RGBA: rgba}
	}
	bounds := img.Bounds()
	dst := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.RGBA, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Pixel returns the RGBA value at (x, y). Coordinates outside the image
// yield the zero color.
func (img *RGBAImage) Pixel(x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

// SetPixel sets the RGBA value at (x, y). Coordinates outside the image
// are ignored.
func (img *RGBAImage) SetPixel(x, y int, c color.RGBA) {
	img.SetRGBA(x, y, c)
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
