package gate

import (
	"regexp"
	"strings"

	"ai-salescoach-be/pkg/coach/dedup"
)

// Verdict tags the classification of an inbound speech-channel event.
type Verdict string

const (
	VerdictAdmit         Verdict = "admit"
	VerdictAssistantRole Verdict = "assistant-role"
	VerdictFiller        Verdict = "filler"
	VerdictCueEcho       Verdict = "cue-echo"
	VerdictMalformed     Verdict = "malformed"
)

// Classification is the gate's decision for one event. Anything other than
// VerdictAdmit must be acknowledged silently: the voice channel never gets a
// non-empty body, so the assistant can never be heard on the call.
type Classification struct {
	Verdict Verdict
	Reason  string
}

func (c Classification) Admitted() bool {
	return c.Verdict == VerdictAdmit
}

// Event is the minimal view of an inbound transcription webhook payload.
type Event struct {
	Role   string
	Type   string
	Text   string
	CallID string
}

// Rules are the filtering heuristics. They are data, not code, so the filter
// can be tuned and tested without touching the classifier.
type Rules struct {
	// Roles and message types that identify assistant/bot-originated events.
	AssistantRoles []string
	AssistantTypes []string

	// Backchannel words rejected after punctuation trimming.
	FillerWords []string

	// Very short utterances ("ok", "mm.") matched after lower-casing.
	ShortUtterance *regexp.Regexp

	// Number of leading characters compared for the cue-echo check.
	EchoPrefixLen int
}

func DefaultRules() Rules {
	return Rules{
		AssistantRoles: []string{"assistant", "bot", "agent", "system"},
		AssistantTypes: []string{
			"assistant-message", "bot-message", "function-call",
			"tool-calls", "speech-update", "status-update",
		},
		FillerWords: []string{
			"ok", "okay", "yeah", "yes", "no", "yep", "nope", "uh",
			"um", "hmm", "mhm", "mm", "right", "sure", "alright",
			"uh-huh", "got it", "i see", "cool",
		},
		ShortUtterance: regexp.MustCompile(`^[a-z]{1,3}[.,!?]*$`),
		EchoPrefixLen:  20,
	}
}

// Gate classifies inbound events before anything touches the pipeline.
// It admits only genuine remote-party speech.
type Gate struct {
	rules Rules
}

func New(rules Rules) *Gate {
	if rules.EchoPrefixLen <= 0 {
		rules.EchoPrefixLen = 20
	}
	return &Gate{rules: rules}
}

// Classify runs the filter chain in order: assistant attribution, payload
// shape, filler words, then cue echo against the call's recent cues.
func (g *Gate) Classify(event Event, recentCues []string) Classification {
	if reason, ok := g.assistantOriginated(event); ok {
		return Classification{Verdict: VerdictAssistantRole, Reason: reason}
	}

	if strings.TrimSpace(event.Text) == "" || strings.TrimSpace(event.CallID) == "" {
		return Classification{Verdict: VerdictMalformed, Reason: "missing text or call id"}
	}

	if reason, ok := g.filler(event.Text); ok {
		return Classification{Verdict: VerdictFiller, Reason: reason}
	}

	if reason, ok := g.cueEcho(event.Text, recentCues); ok {
		return Classification{Verdict: VerdictCueEcho, Reason: reason}
	}

	return Classification{Verdict: VerdictAdmit}
}

func (g *Gate) assistantOriginated(event Event) (string, bool) {
	role := strings.ToLower(strings.TrimSpace(event.Role))
	for _, r := range g.rules.AssistantRoles {
		if role == r {
			return "role " + role, true
		}
	}
	typ := strings.ToLower(strings.TrimSpace(event.Type))
	for _, t := range g.rules.AssistantTypes {
		if typ == t {
			return "message type " + typ, true
		}
	}
	return "", false
}

func (g *Gate) filler(text string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	stripped := strings.TrimRight(trimmed, ".,!?")
	for _, w := range g.rules.FillerWords {
		if trimmed == w || stripped == w {
			return "backchannel word", true
		}
	}
	if g.rules.ShortUtterance != nil && g.rules.ShortUtterance.MatchString(trimmed) {
		return "short utterance", true
	}
	return "", false
}

// cueEcho catches coaching cues that were spoken aloud to the user and leaked
// back in through the microphone.
func (g *Gate) cueEcho(text string, recentCues []string) (string, bool) {
	norm := dedup.Normalize(text)
	if norm == "" {
		return "", false
	}
	for _, cue := range recentCues {
		normCue := dedup.Normalize(cue)
		if normCue == "" {
			continue
		}
		if norm == normCue {
			return "matches recent cue", true
		}
		p := normCue
		if r := []rune(p); len(r) > g.rules.EchoPrefixLen {
			p = string(r[:g.rules.EchoPrefixLen])
		}
		if strings.HasPrefix(norm, p) || strings.Contains(norm, normCue) {
			return "overlaps recent cue", true
		}
	}
	return "", false
}
