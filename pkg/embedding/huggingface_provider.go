package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HuggingFaceProvider calls the Inference API feature-extraction pipeline.
// Depending on the deployed model, the pipeline may return a plain vector,
// per-token embeddings (2-D), or batched per-token embeddings (3-D). The
// token axis is mean-pooled into a single sentence vector.
type HuggingFaceProvider struct {
	apiKey  string
	BaseURL string
	Model   string
	Client  *http.Client
}

func NewHuggingFaceProvider(apiKey, model string) *HuggingFaceProvider {
	if model == "" {
		model = "sentence-transformers/all-mpnet-base-v2"
	}
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		BaseURL: "https://api-inference.huggingface.co/pipeline/feature-extraction",
		Model:   model,
		Client:  &http.Client{},
	}
}

type hfRequest struct {
	Inputs string `json:"inputs"`
}

func (p *HuggingFaceProvider) Name() string { return "huggingface" }

func (p *HuggingFaceProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	jsonData, err := json.Marshal(hfRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", p.BaseURL, p.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Provider: p.Name(), StatusCode: resp.StatusCode, Message: string(bodyBytes)}
	}

	return decodePipelineOutput(bodyBytes)
}

// decodePipelineOutput accepts the three shapes the feature-extraction
// pipeline produces and always reduces to one vector.
func decodePipelineOutput(body []byte) ([]float32, error) {
	var flat []float32
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	var tokens [][]float32
	if err := json.Unmarshal(body, &tokens); err == nil && len(tokens) > 0 {
		return meanPool(tokens)
	}

	var batched [][][]float32
	if err := json.Unmarshal(body, &batched); err == nil && len(batched) > 0 {
		return meanPool(batched[0])
	}

	return nil, fmt.Errorf("unrecognized feature-extraction response shape")
}

// meanPool averages token embeddings along the token axis.
func meanPool(tokens [][]float32) ([]float32, error) {
	if len(tokens) == 0 || len(tokens[0]) == 0 {
		return nil, fmt.Errorf("empty token embeddings")
	}
	dim := len(tokens[0])
	pooled := make([]float64, dim)
	for _, tok := range tokens {
		if len(tok) != dim {
			return nil, fmt.Errorf("ragged token embeddings")
		}
		for i, v := range tok {
			pooled[i] += float64(v)
		}
	}
	out := make([]float32, dim)
	for i, sum := range pooled {
		out[i] = float32(sum / float64(len(tokens)))
	}
	return out, nil
}
