// Package openai implements the media.ImageGenerator interface using the
// OpenAI Images API. It is the alternate backend to the google provider.
package openai

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/banner/media"
	openaiapi "github.com/openai/openai-go"
)

var _ media.ImageGenerator = &Provider{}

// Provider implements the media.ImageGenerator interface for OpenAI
type Provider struct {
	client *openaiapi.Client
}

// NewProvider creates a new OpenAI media provider
func NewProvider(client *openaiapi.Client) *Provider {
	return &Provider{
		client: client,
	}
}

// ProviderName returns the name of this provider
func (p *Provider) ProviderName() string {
	return "openai"
}

// SupportedModels returns the list of supported models
func (p *Provider) SupportedModels() []string {
	return []string{"gpt-image-1", "dall-e-2", "dall-e-3"}
}

// GenerateImage generates an image from a text prompt
func (p *Provider) GenerateImage(ctx context.Context, req *media.ImageGenerationRequest) (*media.ImageGenerationResponse, error) {
	if err := media.ValidateImageGenerationRequest(req); err != nil {
		return nil, err
	}

	params := openaiapi.ImageGenerateParams{
		Prompt: req.Prompt,
		Model:  openaiapi.ImageModelGPTImage1,
	}
	switch req.Model {
	case "", "gpt-image-1":
	case "dall-e-2":
		params.Model = openaiapi.ImageModelDallE2
		params.ResponseFormat = openaiapi.ImageGenerateParamsResponseFormatB64JSON
	case "dall-e-3":
		params.Model = openaiapi.ImageModelDallE3
		params.ResponseFormat = openaiapi.ImageGenerateParamsResponseFormatB64JSON
	default:
		return nil, fmt.Errorf("unsupported model: %s", req.Model)
	}

	if req.Size != "" {
		params.Size = openaiapi.ImageGenerateParamsSize(req.Size)
	}
	if req.Quality != "" && params.Model == openaiapi.ImageModelGPTImage1 {
		params.Quality = imageQuality(req.Quality)
	}
	if req.Count > 0 {
		params.N = openaiapi.Int(int64(req.Count))
	} else {
		params.N = openaiapi.Int(1)
	}

	response, err := p.client.Images.Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", media.ErrGeneration, err)
	}
	if len(response.Data) == 0 {
		return nil, media.ErrNoImage
	}

	return &media.ImageGenerationResponse{
		Images: convertImages(response.Data),
	}, nil
}

// EditImage edits an existing image based on a text prompt. A mask with
// transparent or white regions marks the areas to be synthesized.
func (p *Provider) EditImage(ctx context.Context, req *media.ImageEditRequest) (*media.ImageEditResponse, error) {
	if err := media.ValidateImageEditRequest(req); err != nil {
		return nil, err
	}

	params := openaiapi.ImageEditParams{
		Image:  openaiapi.ImageEditParamsImageUnion{OfFile: req.Image},
		Prompt: req.Prompt,
		Model:  openaiapi.ImageModelGPTImage1,
	}
	switch req.Model {
	case "", "gpt-image-1":
	case "dall-e-2":
		params.Model = openaiapi.ImageModelDallE2
		params.ResponseFormat = openaiapi.ImageEditParamsResponseFormatB64JSON
	default:
		return nil, fmt.Errorf("unsupported model for editing: %s", req.Model)
	}

	if req.Size != "" {
		params.Size = openaiapi.ImageEditParamsSize(req.Size)
	}
	if req.Count > 0 {
		params.N = openaiapi.Int(int64(req.Count))
	} else {
		params.N = openaiapi.Int(1)
	}
	if req.Mask != nil {
		params.Mask = req.Mask
	}

	response, err := p.client.Images.Edit(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", media.ErrGeneration, err)
	}
	if len(response.Data) == 0 {
		return nil, media.ErrNoImage
	}

	return &media.ImageEditResponse{
		Images: convertImages(response.Data),
	}, nil
}

func imageQuality(quality string) openaiapi.ImageGenerateParamsQuality {
	switch quality {
	case "high", "premium":
		return openaiapi.ImageGenerateParamsQualityHigh
	case "medium", "standard":
		return openaiapi.ImageGenerateParamsQualityMedium
	case "low":
		return openaiapi.ImageGenerateParamsQualityLow
	default:
		return openaiapi.ImageGenerateParamsQualityAuto
	}
}

func convertImages(data []openaiapi.Image) []media.GeneratedImage {
	images := make([]media.GeneratedImage, len(data))
	for i, imageData := range data {
		images[i] = media.GeneratedImage{
			URL:           imageData.URL,
			B64JSON:       imageData.B64JSON,
			MediaType:     "image/png",
			RevisedPrompt: imageData.RevisedPrompt,
		}
	}
	return images
}
