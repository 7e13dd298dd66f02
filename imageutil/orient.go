package imageutil

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// applyOrientation reads the EXIF orientation tag from r and returns img
// transformed to be upright. Missing or unreadable EXIF leaves img as is.
func applyOrientation(img image.Image, r io.ReadSeeker) image.Image {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return img
	}

	x, err := exif.Decode(r)
	if err != nil {
		return img
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orient, err := tag.Int(0)
	if err != nil {
		return img
	}

	Logger().Debug("applying exif orientation", "orientation", orient)
	return orientationTransform(img, orient)
}

// orientationTransform applies the flip/rotation for EXIF orientation
// values 1-8. Unknown values return img unchanged.
func orientationTransform(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
