package media

import (
	"errors"
	"fmt"
)

// Fixed failure kinds surfaced by providers. Remote client libraries raise
// their own error types; providers wrap them with one of these sentinels so
// callers can branch with errors.Is without importing any SDK.
var (
	// ErrGeneration indicates the remote service failed to generate or
	// edit an image, or reported an explicit error in its response.
	ErrGeneration = errors.New("image generation failed")

	// ErrNoImage indicates the remote call succeeded but no image data was
	// present in the response. It matches ErrGeneration under errors.Is.
	ErrNoImage = fmt.Errorf("%w: no image was returned", ErrGeneration)
)
