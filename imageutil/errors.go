package imageutil

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyImage is wrapped by RasterDecodeError when a codec
	// returns an image without any pixels.
	ErrEmptyImage = errors.New("decoded image has no pixels")

	// ErrUnknownFilter is returned by ParseFilter for names outside
	// the recognized kernels.
	ErrUnknownFilter = errors.New("unknown filter")
)

// VectorDecodeError reports an SVG document that could not be read,
// parsed or rasterized.
type VectorDecodeError struct {
	Path   string
	Reason string
	Err    error
}

func (e *VectorDecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *VectorDecodeError) Unwrap() error {
	return e.Err
}

// RasterDecodeError wraps the error returned by a raster codec (or by
// opening the file). Its message is the inner error's message, unchanged.
type RasterDecodeError struct {
	Path string
	Err  error
}

func (e *RasterDecodeError) Error() string {
	return e.Err.Error()
}

func (e *RasterDecodeError) Unwrap() error {
	return e.Err
}
