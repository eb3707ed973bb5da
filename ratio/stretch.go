package ratio

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/banner/imageutil"
	"github.com/deepnoodle-ai/banner/slogger"
	"github.com/disintegration/imaging"
)

var _ Strategy = &Stretch{}

// Stretch corrects the aspect ratio by resizing directly to the target
// dimensions. When the input ratio already matches the target within
// RatioTolerance this is a plain high-quality resize; otherwise the image
// is distorted horizontally. No cropping, no remote calls.
type Stretch struct {
	logger slogger.Logger
}

// NewStretch creates a new Stretch strategy. A nil logger falls back to the
// package default.
func NewStretch(logger slogger.Logger) *Stretch {
	if logger == nil {
		logger = slogger.DefaultLogger
	}
	return &Stretch{logger: logger}
}

// Name returns the strategy name
func (s *Stretch) Name() string {
	return "stretch"
}

// Correct resizes the image to exactly the target dimensions.
func (s *Stretch) Correct(ctx context.Context, data []byte, target imageutil.Dimensions) ([]byte, error) {
	img, err := imageutil.Decode(data)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	src := imageutil.Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}

	s.logger.Info("correcting aspect ratio by resize",
		"original", src.String(),
		"original_ratio", fmt.Sprintf("%.2f:1", src.Ratio()),
		"target", target.String(),
		"target_ratio", fmt.Sprintf("%.2f:1", target.Ratio()))

	if diff := src.Ratio() - target.Ratio(); diff < RatioTolerance && diff > -RatioTolerance {
		s.logger.Info("ratio already correct, simple high-quality resize")
	} else {
		s.logger.Info("stretching to target dimensions",
			"width_factor", fmt.Sprintf("%.2fx", float64(target.Width)/float64(src.Width)),
			"height_factor", fmt.Sprintf("%.2fx", float64(target.Height)/float64(src.Height)))
	}

	resized := imaging.Resize(img, target.Width, target.Height, imaging.Lanczos)
	return imageutil.EncodePNG(resized)
}
