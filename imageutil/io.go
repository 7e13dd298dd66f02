package imageutil

import (
	"image"
	_ "image/gif"  // Register GIF decoder (first frame only)
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	_ "github.com/gen2brain/avif" // Register AVIF decoder
	_ "golang.org/x/image/bmp"    // Register BMP decoder
	_ "golang.org/x/image/tiff"   // Register TIFF decoder
	_ "golang.org/x/image/webp"   // Register WebP decoder
)

// Format identifies which decoding path LoadImage takes for a file.
type Format int

const (
	// FormatRaster decodes with the registered image codecs.
	FormatRaster Format = iota
	// FormatVector parses the file as SVG and rasterizes it.
	FormatVector
)

func (f Format) String() string {
	if f == FormatVector {
		return "vector"
	}
	return "raster"
}

// IsVectorPath reports whether path names an SVG document. Only the
// extension is inspected.
func IsVectorPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// FormatOf returns the decoding path used for path.
func FormatOf(path string) Format {
	if IsVectorPath(path) {
		return FormatVector
	}
	return FormatRaster
}

type loadConfig struct {
	autoOrient bool
}

// LoadOption configures LoadImage.
type LoadOption func(*loadConfig)

// WithAutoOrient applies the EXIF orientation tag of raster images so
// that the buffer is upright. Vector images are unaffected.
func WithAutoOrient() LoadOption {
	return func(c *loadConfig) {
		c.autoOrient = true
	}
}

// LoadImage loads an image from the specified path into an RGBAImage.
// Paths ending in .svg are rasterized; everything else goes through the
// registered raster codecs (PNG, JPEG, GIF, BMP, TIFF, WebP, AVIF).
//
// Errors are either *VectorDecodeError or *RasterDecodeError.
func LoadImage(path string, opts ...LoadOption) (*RGBAImage, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch FormatOf(path) {
	case FormatVector:
		return loadVector(path)
	default:
		return loadRaster(path, cfg)
	}
}

// loadRaster decodes path with image.Decode, which picks the codec by
// sniffing the file header.
func loadRaster(path string, cfg loadConfig) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RasterDecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &RasterDecodeError{Path: path, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &RasterDecodeError{Path: path, Err: ErrEmptyImage}
	}

	if cfg.autoOrient {
		img = applyOrientation(img, f)
	}

	rgba := RGBAImageFromImage(img)

	var size string
	if fi, statErr := f.Stat(); statErr == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	Logger().Debug("decoded raster image",
		"path", path,
		"format", format,
		"size", size,
		"width", rgba.Width(),
		"height", rgba.Height())

	return rgba, nil
}
