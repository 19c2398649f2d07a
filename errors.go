package bluenoise

import "errors"

// Precondition errors. Each one reports a caller bug or a corrupt asset,
// never a transient condition, so none of them is worth retrying.
var (
	// ErrBufferSize is returned when the pixel buffer length is not exactly
	// width*height*3, including when that product overflows an int.
	ErrBufferSize = errors.New("bluenoise: pixel buffer size mismatch")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("bluenoise: invalid dimensions")

	// ErrInvalidScale is returned when the scale factor is not positive, or
	// so large that the scaled canvas cannot be allocated.
	ErrInvalidScale = errors.New("bluenoise: invalid scale")

	// ErrMaskDecode is returned when a noise mask cannot be decoded.
	ErrMaskDecode = errors.New("bluenoise: noise mask decode failed")
)
