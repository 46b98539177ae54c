package embedding

import (
	"context"
	"fmt"
	"net/http"
)

// Provider defines the interface for generating text embeddings.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// Generate returns the embedding vector for text. The vector dimension
	// is provider-specific; the cascade conforms it to the store dimension.
	Generate(ctx context.Context, text string) ([]float32, error)
}

// ProviderError carries the HTTP status of a failed provider call so the
// cascade can distinguish auth failures from transient ones.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s embedding error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// Unauthorized reports an authentication failure. Retrying the same provider
// is pointless, but the next provider in the cascade may still work.
func (e *ProviderError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}
