package imageutil

import (
	"image"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// VectorRasterWidth is the pixel width SVG documents are rasterized to.
// The height follows the document's aspect ratio.
const VectorRasterWidth = 1000

// loadVector parses path as an SVG document and rasterizes it at
// VectorRasterWidth pixels wide.
func loadVector(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &VectorDecodeError{Path: path, Reason: "failed to load svg", Err: err}
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, &VectorDecodeError{Path: path, Reason: "failed to load svg", Err: err}
	}

	rendered, ok := rasterizeIcon(icon, VectorRasterWidth)
	if !ok {
		return nil, &VectorDecodeError{Path: path, Reason: "svg has no renderable area"}
	}

	// Copy the rasterizer's RGBA bytes row by row; the scratch image
	// and the buffer share layout but not necessarily stride.
	w, h := rendered.Bounds().Dx(), rendered.Bounds().Dy()
	img := NewRGBAImage(w, h)
	for y := 0; y < h; y++ {
		src := rendered.Pix[y*rendered.Stride : y*rendered.Stride+w*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(dst, src)
	}

	Logger().Debug("rasterized svg",
		"path", path,
		"viewbox_w", icon.ViewBox.W,
		"viewbox_h", icon.ViewBox.H,
		"width", w,
		"height", h)

	return img, nil
}

// rasterizeIcon draws icon into a new RGBA image width pixels wide,
// keeping the viewBox aspect ratio. It reports false when the document
// has no positive area to draw.
func rasterizeIcon(icon *oksvg.SvgIcon, width int) (*image.RGBA, bool) {
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if width <= 0 || !(vw > 0) || !(vh > 0) || math.IsInf(vw, 0) || math.IsInf(vh, 0) {
		return nil, false
	}

	height := int(math.Floor(float64(width)*vh/vw + 0.5))
	if height < 1 {
		height = 1
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, dst, dst.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)
	return dst, true
}
