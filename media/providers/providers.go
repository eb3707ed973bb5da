// Package providers maintains a registry of the available image generation
// backends, keyed by provider name.
package providers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"

	"github.com/deepnoodle-ai/banner/media"
	"github.com/deepnoodle-ai/banner/media/providers/google"
	"github.com/deepnoodle-ai/banner/media/providers/openai"
	openaiapi "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

// Registry holds the available image providers
type Registry struct {
	providers map[string]media.ImageGenerator
}

// NewRegistry creates a new empty provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]media.ImageGenerator),
	}
}

// Register registers a provider under the given name
func (r *Registry) Register(name string, provider media.ImageGenerator) {
	r.providers[name] = provider
}

// Get returns a provider by name
func (r *Registry) Get(name string) (media.ImageGenerator, error) {
	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("provider %s not found", name)
	}
	return provider, nil
}

// List returns the registered provider names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsAvailable checks if a provider is registered
func (r *Registry) IsAvailable(name string) bool {
	_, exists := r.providers[name]
	return exists
}

// NewFromEnvironment builds a registry from the API keys present in the
// environment. The google provider is registered when GEMINI_API_KEY or
// GOOGLE_API_KEY is set, the openai provider when OPENAI_API_KEY is set.
// The given HTTP client, if any, is used for all remote calls.
func NewFromEnvironment(ctx context.Context, httpClient *http.Client) (*Registry, error) {
	registry := NewRegistry()

	if os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating google genai client: %w", err)
		}
		registry.Register("google", google.NewProvider(client))
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		opts := []option.RequestOption{option.WithAPIKey(key)}
		if httpClient != nil {
			opts = append(opts, option.WithHTTPClient(httpClient))
		}
		client := openaiapi.NewClient(opts...)
		registry.Register("openai", openai.NewProvider(&client))
	}

	if len(registry.providers) == 0 {
		return nil, fmt.Errorf("no image providers configured: set GEMINI_API_KEY or OPENAI_API_KEY")
	}
	return registry, nil
}
