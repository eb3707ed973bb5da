// Package media defines a provider-neutral contract for generative image
// services. Callers depend on the ImageGenerator interface and the fixed
// error kinds in this package, never on a specific client library's error
// hierarchy.
package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// ImageGenerator provides an interface for generating and editing images
type ImageGenerator interface {
	// GenerateImage generates an image from a text prompt
	GenerateImage(ctx context.Context, req *ImageGenerationRequest) (*ImageGenerationResponse, error)

	// EditImage edits an existing image based on a text prompt and an
	// optional mask marking the regions to be synthesized
	EditImage(ctx context.Context, req *ImageEditRequest) (*ImageEditResponse, error)

	// SupportedModels returns a list of supported models for this provider
	SupportedModels() []string

	// ProviderName returns the name of the provider
	ProviderName() string
}

// ImageGenerationRequest represents a request to generate an image
type ImageGenerationRequest struct {
	// Prompt is the text description of the desired image
	Prompt string `json:"prompt"`

	// Model specifies which model to use for generation
	Model string `json:"model,omitempty"`

	// Size specifies the desired dimensions of the generated image,
	// in "WxH" form. The model is not guaranteed to honor this.
	Size string `json:"size,omitempty"`

	// Quality specifies the quality tier of the generated image
	Quality string `json:"quality,omitempty"`

	// Count specifies how many images to generate
	Count int `json:"count,omitempty"`

	// ProviderSpecific allows passing provider-specific parameters
	ProviderSpecific map[string]interface{} `json:"provider_specific,omitempty"`
}

// ImageGenerationResponse represents the response from image generation
type ImageGenerationResponse struct {
	// Images contains the generated image data
	Images []GeneratedImage `json:"images"`

	// ProviderSpecific contains provider-specific response data
	ProviderSpecific map[string]interface{} `json:"provider_specific,omitempty"`
}

// ImageEditRequest represents a request to edit an existing image
type ImageEditRequest struct {
	// Image is the input image to edit
	Image io.Reader `json:"-"`

	// Prompt describes the desired changes to the image
	Prompt string `json:"prompt"`

	// Mask is an optional mask image for selective editing. White pixels
	// mark regions to be synthesized, black pixels mark regions to keep.
	Mask io.Reader `json:"-"`

	// Model specifies which model to use for editing
	Model string `json:"model,omitempty"`

	// Size specifies the dimensions of the edited image, in "WxH" form
	Size string `json:"size,omitempty"`

	// Quality specifies the quality tier of the edited image
	Quality string `json:"quality,omitempty"`

	// Count specifies how many variations to generate
	Count int `json:"count,omitempty"`

	// ProviderSpecific allows passing provider-specific parameters
	// (e.g. guidance scale, seed)
	ProviderSpecific map[string]interface{} `json:"provider_specific,omitempty"`
}

// ImageEditResponse represents the response from image editing
type ImageEditResponse struct {
	// Images contains the edited image data
	Images []GeneratedImage `json:"images"`

	// ProviderSpecific contains provider-specific response data
	ProviderSpecific map[string]interface{} `json:"provider_specific,omitempty"`
}

// GeneratedImage represents a single generated image
type GeneratedImage struct {
	// URL is the URL to download the image (if available)
	URL string `json:"url,omitempty"`

	// B64JSON is the base64-encoded image data
	B64JSON string `json:"b64_json,omitempty"`

	// MediaType is the media type of the image, e.g. "image/png"
	MediaType string `json:"media_type,omitempty"`

	// RevisedPrompt contains any prompt revisions made by the provider
	RevisedPrompt string `json:"revised_prompt,omitempty"`

	// Metadata contains additional information about the image
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Bytes returns the raw image data, decoding the base64 payload.
func (g *GeneratedImage) Bytes() ([]byte, error) {
	if g.B64JSON == "" {
		return nil, ErrNoImage
	}
	data, err := base64.StdEncoding.DecodeString(g.B64JSON)
	if err != nil {
		return nil, fmt.Errorf("error decoding image data: %w", err)
	}
	return data, nil
}

// ValidateImageGenerationRequest validates an image generation request
func ValidateImageGenerationRequest(req *ImageGenerationRequest) error {
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("prompt is required and cannot be empty")
	}
	if req.Count < 0 {
		return fmt.Errorf("count cannot be negative")
	}
	if req.Count > 10 {
		return fmt.Errorf("count cannot exceed 10")
	}
	return nil
}

// ValidateImageEditRequest validates an image edit request
func ValidateImageEditRequest(req *ImageEditRequest) error {
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("prompt is required and cannot be empty")
	}
	if req.Image == nil {
		return fmt.Errorf("image is required")
	}
	if req.Count < 0 {
		return fmt.Errorf("count cannot be negative")
	}
	if req.Count > 10 {
		return fmt.Errorf("count cannot exceed 10")
	}
	return nil
}
