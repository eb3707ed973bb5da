package ratio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/deepnoodle-ai/banner/imageutil"
	"github.com/deepnoodle-ai/banner/media"
	"github.com/deepnoodle-ai/banner/slogger"
	"github.com/disintegration/imaging"
)

// Default generation parameters for the outpainting call.
const (
	DefaultGuidanceScale = 8.0
	DefaultSeed          = 0
	DefaultQuality       = "premium"
)

var _ Strategy = &Outpaint{}

// OutpaintOptions configures an Outpaint strategy.
type OutpaintOptions struct {
	// Editor performs the remote mask-guided edit (required)
	Editor media.ImageGenerator

	// Prompt guides the synthesis of the extended margins (required)
	Prompt string

	// Model overrides the editor's default edit model
	Model string

	// Quality is the quality tier for the edit ("premium" by default)
	Quality string

	// GuidanceScale and Seed are passed through to the edit call
	GuidanceScale float64
	Seed          int

	// Logger receives progress output
	Logger slogger.Logger
}

// Outpaint corrects the aspect ratio by scaling the image to the target
// height, centering it on a target-size canvas, and asking a remote model
// to synthesize the left and right margins, guided by a keep/fill mask.
type Outpaint struct {
	editor        media.ImageGenerator
	prompt        string
	model         string
	quality       string
	guidanceScale float64
	seed          int
	logger        slogger.Logger
}

// NewOutpaint creates a new Outpaint strategy.
func NewOutpaint(opts OutpaintOptions) (*Outpaint, error) {
	if opts.Editor == nil {
		return nil, fmt.Errorf("editor is required")
	}
	if opts.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if opts.Quality == "" {
		opts.Quality = DefaultQuality
	}
	if opts.GuidanceScale == 0 {
		opts.GuidanceScale = DefaultGuidanceScale
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	return &Outpaint{
		editor:        opts.Editor,
		prompt:        opts.Prompt,
		model:         opts.Model,
		quality:       opts.Quality,
		guidanceScale: opts.GuidanceScale,
		seed:          opts.Seed,
		logger:        opts.Logger,
	}, nil
}

// Name returns the strategy name
func (o *Outpaint) Name() string {
	return "outpaint"
}

// Correct extends the image to the target dimensions via the remote editor.
// If the image is already at least as wide as the target after scaling to
// the target height, there is nothing to synthesize and the image is
// center-cropped to the target instead.
func (o *Outpaint) Correct(ctx context.Context, data []byte, target imageutil.Dimensions) ([]byte, error) {
	img, err := imageutil.Decode(data)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	src := imageutil.Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}
	layout := PlanOutpaint(src, target)

	o.logger.Info("planning outpaint",
		"original", src.String(),
		"target", target.String(),
		"scaled", layout.Scaled.String())

	if layout.Scaled.Width >= target.Width {
		o.logger.Info("image covers target width after scaling, center-cropping instead",
			"scaled_width", layout.Scaled.Width,
			"target_width", target.Width)
		scaled := imaging.Resize(img, layout.Scaled.Width, layout.Scaled.Height, imaging.Lanczos)
		cropped := imaging.CropCenter(scaled, target.Width, target.Height)
		return imageutil.EncodePNG(cropped)
	}

	o.logger.Info("extending margins",
		"width_to_add", layout.LeftPad+layout.RightPad,
		"left", layout.LeftPad,
		"right", layout.RightPad)

	canvas, err := imageutil.EncodePNG(BuildCanvas(img, layout, target))
	if err != nil {
		return nil, err
	}
	mask, err := imageutil.EncodePNG(BuildMask(layout, target))
	if err != nil {
		return nil, err
	}

	response, err := o.editor.EditImage(ctx, &media.ImageEditRequest{
		Image:   bytes.NewReader(canvas),
		Mask:    bytes.NewReader(mask),
		Prompt:  o.prompt,
		Model:   o.model,
		Size:    target.String(),
		Quality: o.quality,
		Count:   1,
		ProviderSpecific: map[string]interface{}{
			"guidance_scale": o.guidanceScale,
			"seed":           o.seed,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error outpainting to %s: %w", target, err)
	}
	if len(response.Images) == 0 {
		return nil, media.ErrNoImage
	}

	result, err := response.Images[0].Bytes()
	if err != nil {
		return nil, fmt.Errorf("error reading outpainted image: %w", err)
	}
	o.logger.Info("outpainting complete", "target", target.String())
	return result, nil
}
