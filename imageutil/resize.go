package imageutil

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Filter specifies the resampling kernel used when scaling an image to
// its display size.
type Filter int

const (
	// FilterNearest uses nearest-neighbor sampling. Fastest, blocky.
	FilterNearest Filter = iota

	// FilterTriangle uses a linear (tent) kernel.
	FilterTriangle

	// FilterCatmullRom uses the Catmull-Rom cubic kernel.
	FilterCatmullRom

	// FilterGaussian uses a Gaussian blur kernel. Soft, and the default
	// because it hides aliasing at the very low resolution of a terminal.
	FilterGaussian

	// FilterLanczos3 uses the three-lobe Lanczos kernel.
	FilterLanczos3
)

// DefaultFilter is used when no filter is requested.
const DefaultFilter = FilterGaussian

var filterNames = [...]string{
	FilterNearest:    "nearest",
	FilterTriangle:   "triangle",
	FilterCatmullRom: "catmullrom",
	FilterGaussian:   "gaussian",
	FilterLanczos3:   "lanczos3",
}

// FilterNames lists the accepted filter names in declaration order.
func FilterNames() []string {
	return append([]string(nil), filterNames[:]...)
}

// ParseFilter maps a filter name to its Filter. Names are matched
// exactly; anything else yields an error wrapping ErrUnknownFilter.
func ParseFilter(name string) (Filter, error) {
	for f, n := range filterNames {
		if n == name {
			return Filter(f), nil
		}
	}
	return DefaultFilter, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// resampleFilter returns the imaging kernel for f.
func (f Filter) resampleFilter() imaging.ResampleFilter {
	switch f {
	case FilterNearest:
		return imaging.NearestNeighbor
	case FilterTriangle:
		return imaging.Linear
	case FilterCatmullRom:
		return imaging.CatmullRom
	case FilterLanczos3:
		return imaging.Lanczos
	default:
		return imaging.Gaussian
	}
}

// Resize scales img to exactly width x height using the given filter.
// The result is non-premultiplied so alpha can be inspected per pixel.
func Resize(img image.Image, width, height int, filter Filter) *image.NRGBA {
	return imaging.Resize(img, width, height, filter.resampleFilter())
}
