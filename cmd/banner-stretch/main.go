// banner-stretch generates a wide 3:1 banner image and, when the model
// returns a different size, stretch-resizes it locally to the target
// dimensions. No second remote call is made.
package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deepnoodle-ai/banner"
	"github.com/deepnoodle-ai/banner/imageutil"
	"github.com/deepnoodle-ai/banner/media"
	"github.com/deepnoodle-ai/banner/media/providers/google"
	"github.com/deepnoodle-ai/banner/ratio"
	"github.com/deepnoodle-ai/banner/slogger"
	"github.com/fatih/color"
	"google.golang.org/genai"
)

const (
	targetWidth  = 3072
	targetHeight = 1024
	readTimeout  = 600 * time.Second
	baseName     = "cityscape_banner_3x1"
)

const fullPrompt = `Ultra-wide cinematic cityscape at dusk, viewed from a high rooftop, 3:1 banner composition. In the foreground, several diverse characters in futuristic streetwear are leaning on the railing, silhouetted against the glowing city: one character holding a holographic tablet displaying neon UI panels, another with a cybernetic arm and a long coat blowing in the wind, and a third character sitting on a crate with headphones, looking toward the horizon. The midground is a dense cluster of skyscrapers with reflective glass, animated billboards, floating drones, and suspended sky-bridges filled with tiny crowds of people. Flying cars and hovercrafts leave long light trails, curving across the sky from left to right, emphasizing the panoramic width of the scene. In the background, a massive ring-shaped structure floats above the city, partially obscured by volumetric fog and clouds. The setting sun is low on the horizon, casting golden and magenta light, creating strong rim lighting on the characters and buildings. Highly detailed, sharp focus, complex lighting, global illumination, soft atmospheric haze, subtle depth of field, cinematic color grading, rich reflections on glass and metal surfaces, hyperrealistic textures on buildings and clothing, high dynamic range, 8k concept art, perfect composition for a hero banner with plenty of negative space near the top and bottom for text overlay.`

func main() {
	logger := slogger.New(slogger.LevelInfo)
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPClient: &http.Client{Timeout: readTimeout},
	})
	if err != nil {
		logger.Error("unexpected error", "error", err)
		return
	}

	pipeline, err := banner.New(banner.Options{
		Generator: google.NewProvider(client),
		Strategy:  ratio.NewStretch(logger),
		Target:    imageutil.Dimensions{Width: targetWidth, Height: targetHeight},
		BaseName:  baseName,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("unexpected error", "error", err)
		return
	}

	result, err := pipeline.Run(ctx, fullPrompt)
	if err != nil {
		if errors.Is(err, media.ErrGeneration) {
			logger.Error("image generation failed", "error", err)
		} else {
			logger.Error("unexpected error", "error", err)
		}
		return
	}

	if result.OriginalPath != "" {
		color.Green("✓ Original image saved: %s", result.OriginalPath)
	}
	color.Green("✓ Banner generated at %s: %s", result.Final, result.FinalPath)
}
