// Package banner generates wide banner images from a hosted generative
// model and corrects their aspect ratio to a target size using an
// interchangeable correction strategy.
package banner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/deepnoodle-ai/banner/imageutil"
	"github.com/deepnoodle-ai/banner/media"
	"github.com/deepnoodle-ai/banner/ratio"
	"github.com/deepnoodle-ai/banner/slogger"
)

// Options configures a Pipeline.
type Options struct {
	// Generator produces the initial image (required)
	Generator media.ImageGenerator

	// Strategy corrects the aspect ratio when the generated image does
	// not match the target dimensions (required)
	Strategy ratio.Strategy

	// Target is the desired output size (required)
	Target imageutil.Dimensions

	// Model overrides the generator's default model
	Model string

	// OutputDir is the directory output files are written to. Empty
	// means the current directory.
	OutputDir string

	// BaseName is the base output filename without extension. The final
	// image is written to "<BaseName>.png" and, when correction is
	// needed, the uncorrected image to "<BaseName>_original.png". Empty
	// means timestamp-derived names.
	BaseName string

	// Logger receives progress output
	Logger slogger.Logger
}

// Pipeline runs one generate-inspect-correct-save sequence.
type Pipeline struct {
	generator media.ImageGenerator
	strategy  ratio.Strategy
	target    imageutil.Dimensions
	model     string
	outputDir string
	baseName  string
	logger    slogger.Logger
}

// New creates a new Pipeline.
func New(opts Options) (*Pipeline, error) {
	if opts.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if opts.Strategy == nil {
		return nil, fmt.Errorf("strategy is required")
	}
	if opts.Target.Width <= 0 || opts.Target.Height <= 0 {
		return nil, fmt.Errorf("target dimensions are required")
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	return &Pipeline{
		generator: opts.Generator,
		strategy:  opts.Strategy,
		target:    opts.Target,
		model:     opts.Model,
		outputDir: opts.OutputDir,
		baseName:  opts.BaseName,
		logger:    opts.Logger,
	}, nil
}

// Result reports the files written by one pipeline run.
type Result struct {
	// OriginalPath is the saved uncorrected image, when the generated
	// image needed correction. Empty otherwise.
	OriginalPath string

	// FinalPath is the saved final image at the target dimensions.
	FinalPath string

	// Final holds the dimensions of the final saved image.
	Final imageutil.Dimensions

	// Corrected reports whether a correction strategy was applied.
	Corrected bool
}

// Run generates an image for the given description, corrects its aspect
// ratio if the model did not honor the requested dimensions, and saves the
// results. When a correction is applied, the uncorrected image is saved
// first as a separate artifact.
func (p *Pipeline) Run(ctx context.Context, description string) (*Result, error) {
	prompt := BuildPrompt(description, p.target)
	base := p.baseName
	if base == "" {
		base = strings.TrimSuffix(imageutil.DefaultFilename(time.Now()), ".png")
	}

	p.logger.Info("starting image generation",
		"resolution", p.target.String(),
		"aspect_ratio", p.target.RatioLabel(),
		"strategy", p.strategy.Name())

	response, err := p.generator.GenerateImage(ctx, &media.ImageGenerationRequest{
		Prompt: prompt,
		Model:  p.model,
		Size:   p.target.String(),
		Count:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(response.Images) == 0 {
		return nil, media.ErrNoImage
	}
	data, err := response.Images[0].Bytes()
	if err != nil {
		return nil, err
	}

	actual, err := imageutil.DimensionsOf(data)
	if err != nil {
		return nil, err
	}
	p.logger.Info("generated image size", "size", actual.String())

	if actual == p.target {
		finalPath, finalDims, err := p.save(data, p.outputPath(base, ""))
		if err != nil {
			return nil, err
		}
		p.logger.Info("generated with native target ratio", "path", finalPath)
		return &Result{FinalPath: finalPath, Final: finalDims}, nil
	}

	p.logger.Info("generated size differs from target, applying correction",
		"actual", actual.String(),
		"target", p.target.String(),
		"strategy", p.strategy.Name())

	originalPath, _, err := p.save(data, p.outputPath(base, "_original"))
	if err != nil {
		return nil, err
	}
	p.logger.Info("original image saved", "path", originalPath)

	corrected, err := p.strategy.Correct(ctx, data, p.target)
	if err != nil {
		return nil, err
	}
	finalPath, finalDims, err := p.save(corrected, p.outputPath(base, ""))
	if err != nil {
		return nil, err
	}
	if finalDims != p.target {
		return nil, fmt.Errorf("corrected image is %s, expected %s", finalDims, p.target)
	}

	return &Result{
		OriginalPath: originalPath,
		FinalPath:    finalPath,
		Final:        finalDims,
		Corrected:    true,
	}, nil
}

func (p *Pipeline) outputPath(base, suffix string) string {
	return filepath.Join(p.outputDir, base+suffix+".png")
}

func (p *Pipeline) save(data []byte, path string) (string, imageutil.Dimensions, error) {
	savedPath, dims, err := imageutil.Save(data, path)
	if err != nil {
		return "", imageutil.Dimensions{}, err
	}
	p.logger.Info("image saved",
		"path", savedPath,
		"size", dims.String(),
		"aspect_ratio", fmt.Sprintf("%.2f:1", dims.Ratio()))
	return savedPath, dims, nil
}
