package llm

import (
	"context"
	"log"
	"strings"
	"time"

	"ai-salescoach-be/pkg/coach/cuebank"
	"ai-salescoach-be/pkg/trigger"
	"ai-salescoach-be/pkg/utils"
)

// Source records whether a cue came from a provider or the fallback bank.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Cascade tries chat-completion providers in priority order and never raises:
// when every provider fails (or none is configured) it answers from the
// static cue bank keyed by trigger type.
type Cascade struct {
	providers   []Provider
	bank        *cuebank.Bank
	wordCap     int
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

func NewCascade(providers []Provider, bank *cuebank.Bank, wordCap, maxTokens int, temperature float64, timeout time.Duration) *Cascade {
	if wordCap <= 0 {
		wordCap = 10
	}
	if maxTokens <= 0 {
		maxTokens = 50
	}
	if temperature <= 0 {
		temperature = 0.3
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Cascade{
		providers:   providers,
		bank:        bank,
		wordCap:     wordCap,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
	}
}

// WordCap reports the configured cue length limit in words.
func (c *Cascade) WordCap() int { return c.wordCap }

// Generate produces a coaching cue for the utterance. The word cap is a hard
// post-condition: whatever the provider returned is truncated to the first
// wordCap whitespace tokens.
func (c *Cascade) Generate(ctx context.Context, systemPrompt, utteranceText string, triggers trigger.Set) (string, Source) {
	history := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "Customer: " + utteranceText},
	}

	for _, provider := range c.providers {
		completion, err := c.attempt(ctx, provider, history)
		if err != nil {
			log.Printf("[WARN] llm provider %s failed: %v", provider.Name(), err)
			continue
		}

		cue := utils.TruncateWords(strings.TrimSpace(completion), c.wordCap)
		if cue == "" {
			log.Printf("[WARN] llm provider %s returned blank completion", provider.Name())
			continue
		}
		return cue, SourceLLM
	}

	return c.bank.Pick(triggers), SourceFallback
}

func (c *Cascade) attempt(ctx context.Context, provider Provider, history []Message) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return provider.Chat(attemptCtx, history,
		WithMaxTokens(c.maxTokens),
		WithTemperature(c.temperature),
	)
}
