package cuebank

import (
	"math/rand"
	"sync"
	"time"

	"ai-salescoach-be/pkg/trigger"
)

// Bank is the static fallback cue source used when no LLM provider is
// configured or every provider in the cascade failed. Cues are grouped by
// trigger type; selection within a group is uniform-random.
type Bank struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var (
	ObjectionCues = []string{
		"Pivot to value over price.",
		"Ask what budget they planned.",
		"Break cost into monthly terms.",
		"Quantify the cost of inaction.",
	}
	CompetitorCues = []string{
		"Ask what they like about them.",
		"Highlight your key differentiator.",
		"Avoid criticizing the competitor.",
		"Ask what's missing from their tool.",
	}
	TimelineCues = []string{
		"Ask what's driving the deadline.",
		"Offer a phased rollout.",
		"Anchor on their launch date.",
		"Ask about cost of waiting.",
	}
	GenericCues = []string{
		"Wait and listen.",
		"Ask an open-ended question.",
		"Mirror their last phrase.",
	}
)

// New builds a bank. A nil rng gets a time-seeded source; tests pass a fixed
// seed for reproducible picks.
func New(rng *rand.Rand) *Bank {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bank{rng: rng}
}

// Pick returns a cue for the strongest matching trigger group. Objection wins
// over competitor wins over timeline; no trigger falls back to generic.
func (b *Bank) Pick(set trigger.Set) string {
	switch {
	case set.Objection:
		return b.choose(ObjectionCues)
	case set.Competitor:
		return b.choose(CompetitorCues)
	case set.Timeline:
		return b.choose(TimelineCues)
	default:
		return b.choose(GenericCues)
	}
}

func (b *Bank) choose(cues []string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cues[b.rng.Intn(len(cues))]
}

// Contains reports whether text is a member of the given cue group. Used by
// callers that need to distinguish fallback output.
func Contains(cues []string, text string) bool {
	for _, c := range cues {
		if c == text {
			return true
		}
	}
	return false
}
