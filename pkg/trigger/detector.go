package trigger

import "strings"

// Set holds the conversational signals detected in a single utterance.
type Set struct {
	Objection  bool `json:"objection"`
	Competitor bool `json:"competitor"`
	Timeline   bool `json:"timeline"`
}

// Detected reports whether any signal fired.
func (s Set) Detected() bool {
	return s.Objection || s.Competitor || s.Timeline
}

// Detector classifies utterances by substring matching against curated
// keyword lists. False positives are fine; generation downstream is cheap.
type Detector struct {
	objection  []string
	competitor []string
	timeline   []string
}

// Default keyword lists. Tuned from sampled sales calls, intentionally broad.
var (
	defaultObjectionKeywords = []string{
		"too expensive", "price", "pricing", "cost", "costly", "budget",
		"can't afford", "cannot afford", "cheaper", "discount", "not worth",
		"overpriced", "expensive",
	}
	defaultCompetitorKeywords = []string{
		"competitor", "alternative", "other vendor", "other provider",
		"already using", "currently use", "switch from", "compared to",
		"your competition", "another tool", "another platform",
	}
	defaultTimelineKeywords = []string{
		"timeline", "deadline", "how long", "when can", "next quarter",
		"next year", "not right now", "too soon", "need it by", "urgent",
		"asap", "by the end of",
	}
)

func NewDetector() *Detector {
	return NewDetectorWithKeywords(defaultObjectionKeywords, defaultCompetitorKeywords, defaultTimelineKeywords)
}

// NewDetectorWithKeywords builds a detector from caller-supplied lists so the
// heuristics can be tuned without code changes.
func NewDetectorWithKeywords(objection, competitor, timeline []string) *Detector {
	return &Detector{
		objection:  lowerAll(objection),
		competitor: lowerAll(competitor),
		timeline:   lowerAll(timeline),
	}
}

// Detect is a pure function over the utterance text.
func (d *Detector) Detect(text string) Set {
	lowered := strings.ToLower(text)
	return Set{
		Objection:  containsAny(lowered, d.objection),
		Competitor: containsAny(lowered, d.competitor),
		Timeline:   containsAny(lowered, d.timeline),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func lowerAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.ToLower(kw)
	}
	return out
}
