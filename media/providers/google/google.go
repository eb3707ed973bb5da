// Package google implements the media.ImageGenerator interface using the
// Google GenAI SDK. Image generation goes through Models.GenerateContent on
// an image-output Gemini model, which returns the image as an inline data
// part. Outpainting goes through Models.EditImage with a raw reference image
// and a user-provided mask.
package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/deepnoodle-ai/banner/media"
	"google.golang.org/genai"
)

const (
	DefaultGenerateModel = "gemini-2.5-flash-image"
	DefaultEditModel     = "imagen-3.0-capability-001"

	// DefaultMaxOutputTokens is the inference limit passed on generation
	// requests. The image itself does not count against it.
	DefaultMaxOutputTokens = 4096
)

var _ media.ImageGenerator = &Provider{}

// Provider implements the media.ImageGenerator interface for Google GenAI
type Provider struct {
	client *genai.Client
}

// NewProvider creates a new Google GenAI media provider
func NewProvider(client *genai.Client) *Provider {
	return &Provider{
		client: client,
	}
}

// ProviderName returns the name of this provider
func (p *Provider) ProviderName() string {
	return "google"
}

// SupportedModels returns the list of supported models
func (p *Provider) SupportedModels() []string {
	return []string{
		"gemini-2.5-flash-image",
		"gemini-2.0-flash-preview-image-generation",
		"imagen-3.0-capability-001",
	}
}

// GenerateImage generates an image from a text prompt. The prompt carries
// the desired dimensions as a textual instruction; the model is not
// guaranteed to honor them, so callers must inspect the returned image.
func (p *Provider) GenerateImage(ctx context.Context, req *media.ImageGenerationRequest) (*media.ImageGenerationResponse, error) {
	if err := media.ValidateImageGenerationRequest(req); err != nil {
		return nil, err
	}
	if p.client == nil {
		return nil, fmt.Errorf("google genai client is not initialized")
	}

	model := req.Model
	if model == "" {
		model = DefaultGenerateModel
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(req.Prompt),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: DefaultMaxOutputTokens,
	}

	response, err := p.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", media.ErrGeneration, err)
	}

	images := imagesFromResponse(response)
	if len(images) == 0 {
		return nil, media.ErrNoImage
	}

	return &media.ImageGenerationResponse{Images: images}, nil
}

// EditImage performs a mask-guided edit of an existing image. White mask
// pixels mark regions for the model to synthesize, black pixels mark
// regions to keep.
func (p *Provider) EditImage(ctx context.Context, req *media.ImageEditRequest) (*media.ImageEditResponse, error) {
	if err := media.ValidateImageEditRequest(req); err != nil {
		return nil, err
	}
	if p.client == nil {
		return nil, fmt.Errorf("google genai client is not initialized")
	}
	if req.Mask == nil {
		return nil, fmt.Errorf("mask is required for outpainting")
	}

	model := req.Model
	if model == "" {
		model = DefaultEditModel
	}

	imageBytes, err := io.ReadAll(req.Image)
	if err != nil {
		return nil, fmt.Errorf("error reading input image: %w", err)
	}
	maskBytes, err := io.ReadAll(req.Mask)
	if err != nil {
		return nil, fmt.Errorf("error reading mask image: %w", err)
	}

	referenceImages := []genai.ReferenceImage{
		&genai.RawReferenceImage{
			ReferenceID: 1,
			ReferenceImage: &genai.Image{
				ImageBytes: imageBytes,
				MIMEType:   "image/png",
			},
		},
		&genai.MaskReferenceImage{
			ReferenceID: 2,
			ReferenceImage: &genai.Image{
				ImageBytes: maskBytes,
				MIMEType:   "image/png",
			},
			Config: &genai.MaskReferenceConfig{
				MaskMode: "MASK_MODE_USER_PROVIDED",
			},
		},
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	config := &genai.EditImageConfig{
		EditMode:         "EDIT_MODE_OUTPAINT",
		NumberOfImages:   int32(count),
		IncludeRAIReason: true,
		OutputMIMEType:   "image/png",
	}
	if req.ProviderSpecific != nil {
		if guidance, ok := req.ProviderSpecific["guidance_scale"].(float64); ok {
			config.GuidanceScale = genai.Ptr(float32(guidance))
		}
		if seed, ok := req.ProviderSpecific["seed"].(int); ok {
			config.Seed = genai.Ptr(int32(seed))
		}
	}

	response, err := p.client.Models.EditImage(ctx, model, req.Prompt, referenceImages, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", media.ErrGeneration, err)
	}
	if len(response.GeneratedImages) == 0 {
		return nil, media.ErrNoImage
	}

	images := make([]media.GeneratedImage, 0, len(response.GeneratedImages))
	for _, genImage := range response.GeneratedImages {
		if genImage.Image == nil || len(genImage.Image.ImageBytes) == 0 {
			if genImage.RAIFilteredReason != "" {
				return nil, fmt.Errorf("%w: %s", media.ErrGeneration, genImage.RAIFilteredReason)
			}
			continue
		}
		images = append(images, media.GeneratedImage{
			B64JSON:   base64.StdEncoding.EncodeToString(genImage.Image.ImageBytes),
			MediaType: genImage.Image.MIMEType,
		})
	}
	if len(images) == 0 {
		return nil, media.ErrNoImage
	}

	return &media.ImageEditResponse{Images: images}, nil
}

// imagesFromResponse collects the inline image parts from a generate
// content response.
func imagesFromResponse(response *genai.GenerateContentResponse) []media.GeneratedImage {
	if response == nil || len(response.Candidates) == 0 {
		return nil
	}
	candidate := response.Candidates[0]
	if candidate.Content == nil {
		return nil
	}
	var images []media.GeneratedImage
	for _, part := range candidate.Content.Parts {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		images = append(images, media.GeneratedImage{
			B64JSON:   base64.StdEncoding.EncodeToString(part.InlineData.Data),
			MediaType: part.InlineData.MIMEType,
		})
	}
	return images
}
