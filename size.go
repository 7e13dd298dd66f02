package termpix

import (
	"errors"
	"fmt"
)

// PixelsPerRow is the number of image pixel rows drawn in one terminal
// row by the half-block renderer.
const PixelsPerRow = 2

var (
	// ErrSurfaceSizeUnavailable is returned when neither width nor height
	// was requested and the terminal size cannot be determined.
	ErrSurfaceSizeUnavailable = errors.New("neither width nor height specified, and could not determine terminal size")

	// ErrSurfaceTooSmall is returned when the terminal reports no column
	// or no row left after reserving one for the prompt.
	ErrSurfaceTooSmall = errors.New("terminal has no usable area")

	// ErrInvalidDimensions is returned for a source image without pixels
	// or a negative size request.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)

// SizeRequest holds the sizing the user asked for. Width and MaxWidth are
// terminal columns, Height and MaxHeight are terminal rows. Zero means the
// field was not given.
type SizeRequest struct {
	Width     int
	Height    int
	MaxWidth  int
	MaxHeight int
}

func (r SizeRequest) validate() error {
	if r.Width < 0 || r.Height < 0 || r.MaxWidth < 0 || r.MaxHeight < 0 {
		return fmt.Errorf("%w: negative size request %+v", ErrInvalidDimensions, r)
	}
	return nil
}

// Size is the render target in pixels. Width is also the number of
// columns printed; Height is twice the number of rows printed.
type Size struct {
	Width  int
	Height int
}

// Rows returns the number of terminal rows a render of s occupies.
func (s Size) Rows() int {
	return (s.Height + PixelsPerRow - 1) / PixelsPerRow
}

// ResolveSize computes the render target for an origW x origH image.
//
// Explicit dimensions take precedence: both given are used verbatim, one
// given derives the other from the aspect ratio. Otherwise surface is
// queried and the image is fitted into its columns and all rows but one,
// capped by MaxWidth and MaxHeight. The surface is only consulted in that
// last case.
func ResolveSize(origW, origH int, req SizeRequest, surface SurfaceSizer) (Size, error) {
	if origW <= 0 || origH <= 0 {
		return Size{}, fmt.Errorf("%w: source is %dx%d", ErrInvalidDimensions, origW, origH)
	}
	if err := req.validate(); err != nil {
		return Size{}, err
	}

	var size Size
	switch {
	case req.Width > 0 && req.Height > 0:
		size = Size{Width: req.Width, Height: req.Height * PixelsPerRow}
	case req.Width > 0:
		size = Size{Width: req.Width, Height: ScaleDimension(req.Width, origH, origW)}
	case req.Height > 0:
		h := req.Height * PixelsPerRow
		size = Size{Width: ScaleDimension(h, origW, origH), Height: h}
	default:
		if surface == nil {
			return Size{}, ErrSurfaceSizeUnavailable
		}
		cols, rows, ok := surface()
		if !ok {
			return Size{}, ErrSurfaceSizeUnavailable
		}
		if cols <= 0 || rows <= 1 {
			return Size{}, fmt.Errorf("%w: %d columns, %d rows", ErrSurfaceTooSmall, cols, rows)
		}
		size = FitToSize(origW, origH, cols, rows-1, req.MaxWidth, req.MaxHeight)
	}

	size.Width = max(size.Width, 1)
	size.Height = max(size.Height, 1)

	Logger().Debug("resolved render size",
		"source_w", origW,
		"source_h", origH,
		"width", size.Width,
		"height", size.Height)

	return size, nil
}

// ScaleDimension returns origThis * other / origOther rounded half up.
// It derives one axis from the other while keeping the aspect ratio of
// an origThis by origOther image. The arithmetic is exact integer math.
func ScaleDimension(other, origThis, origOther int) int {
	if other <= 0 || origThis <= 0 || origOther <= 0 {
		return 0
	}
	num := 2*uint64(origThis)*uint64(other) + uint64(origOther)
	return int(num / (2 * uint64(origOther)))
}

// FitToSize returns the largest size with the image's aspect ratio that
// fits surfaceW columns and usableRows rows, each further capped by maxW
// and maxH when they are positive. Height is in pixels, two per row.
func FitToSize(origW, origH, surfaceW, usableRows, maxW, maxH int) Size {
	targetW := surfaceW
	if maxW > 0 {
		targetW = min(maxW, surfaceW)
	}

	rows := usableRows
	if maxH > 0 {
		rows = min(maxH, usableRows)
	}
	targetH := PixelsPerRow * rows

	if w := ScaleDimension(targetH, origW, origH); w <= targetW {
		return Size{Width: w, Height: targetH}
	}
	return Size{Width: targetW, Height: ScaleDimension(targetW, origH, origW)}
}
