package embedding

import (
	"context"
	"errors"
	"log"
	"math"
	"time"
)

// Cascade tries providers in priority order and always produces a vector of
// exactly Dim components. When every provider fails it synthesizes a
// deterministic non-semantic vector from a hash of the text, so repeated
// ingestion of identical content stays idempotent.
type Cascade struct {
	providers []Provider
	dim       int
	retries   int
	timeout   time.Duration
}

func NewCascade(providers []Provider, dim, retries int, timeout time.Duration) *Cascade {
	if dim <= 0 {
		dim = 768
	}
	if retries <= 0 {
		retries = 2
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Cascade{
		providers: providers,
		dim:       dim,
		retries:   retries,
		timeout:   timeout,
	}
}

func (c *Cascade) Dim() int { return c.dim }

// Embed never fails. Each provider gets c.retries attempts with a per-attempt
// timeout; a 401 burns the provider's remaining attempts but the cascade still
// falls through to the next one.
func (c *Cascade) Embed(ctx context.Context, text string) []float32 {
	for _, provider := range c.providers {
		for attempt := 0; attempt < c.retries; attempt++ {
			vec, err := c.attempt(ctx, provider, text)
			if err == nil {
				return c.conform(vec)
			}

			log.Printf("[WARN] embedding provider %s attempt %d failed: %v", provider.Name(), attempt+1, err)

			var provErr *ProviderError
			if errors.As(err, &provErr) && provErr.Unauthorized() {
				break
			}
		}
	}

	return FallbackVector(text, c.dim)
}

func (c *Cascade) attempt(ctx context.Context, provider Provider, text string) ([]float32, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return provider.Generate(attemptCtx, text)
}

// conform enforces the store dimension regardless of what the provider
// returned: longer vectors are truncated, shorter ones zero-padded.
func (c *Cascade) conform(vec []float32) []float32 {
	if len(vec) == c.dim {
		return vec
	}
	out := make([]float32, c.dim)
	copy(out, vec)
	return out
}

// FallbackVector hashes text to a 32-bit signed integer with a rolling
// multiply-add hash and expands it into dim components via sin(hash+i)*0.1.
// Stable: the same text always yields the same vector.
func FallbackVector(text string, dim int) []float32 {
	var hash int32
	for _, r := range text {
		hash = hash*31 + int32(r)
	}

	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = float32(math.Sin(float64(hash)+float64(i)) * 0.1)
	}
	return vec
}
