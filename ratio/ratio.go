// Package ratio provides interchangeable strategies for correcting the
// aspect ratio of a generated image to a target size. The Outpaint strategy
// extends the image's margins using a remote mask-guided edit; the Stretch
// strategy is a purely local resize.
package ratio

import (
	"context"

	"github.com/deepnoodle-ai/banner/imageutil"
)

// RatioTolerance is the maximum difference between two aspect ratios that
// is still considered a match.
const RatioTolerance = 0.01

// Strategy corrects an encoded image to the target dimensions.
type Strategy interface {
	// Name returns a short name for the strategy
	Name() string

	// Correct returns encoded image bytes with exactly the target
	// dimensions, derived from the given encoded input image
	Correct(ctx context.Context, data []byte, target imageutil.Dimensions) ([]byte, error)
}
