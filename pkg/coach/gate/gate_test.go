package gate

import (
	"testing"
)

func TestClassify(t *testing.T) {
	g := New(DefaultRules())

	tests := []struct {
		name       string
		event      Event
		recentCues []string
		want       Verdict
	}{
		{
			name:  "customer speech admitted",
			event: Event{Role: "customer", Type: "transcript", Text: "Your price is way too expensive for us", CallID: "c1"},
			want:  VerdictAdmit,
		},
		{
			name:  "assistant role rejected",
			event: Event{Role: "assistant", Type: "transcript", Text: "Pivot to value over price.", CallID: "c1"},
			want:  VerdictAssistantRole,
		},
		{
			name:  "assistant role rejected regardless of case",
			event: Event{Role: "Assistant", Type: "transcript", Text: "anything", CallID: "c1"},
			want:  VerdictAssistantRole,
		},
		{
			name:  "bot message type rejected even with user role",
			event: Event{Role: "user", Type: "function-call", Text: "lookup(account)", CallID: "c1"},
			want:  VerdictAssistantRole,
		},
		{
			name:  "empty text malformed",
			event: Event{Role: "customer", Type: "transcript", Text: "   ", CallID: "c1"},
			want:  VerdictMalformed,
		},
		{
			name:  "missing call id malformed",
			event: Event{Role: "customer", Type: "transcript", Text: "hello there"},
			want:  VerdictMalformed,
		},
		{
			name:  "filler word rejected",
			event: Event{Role: "customer", Type: "transcript", Text: "ok", CallID: "c1"},
			want:  VerdictFiller,
		},
		{
			name:  "filler with punctuation rejected",
			event: Event{Role: "customer", Type: "transcript", Text: "Okay.", CallID: "c1"},
			want:  VerdictFiller,
		},
		{
			name:  "short utterance rejected",
			event: Event{Role: "customer", Type: "transcript", Text: "mm.", CallID: "c1"},
			want:  VerdictFiller,
		},
		{
			name:       "cue echoed back through the mic rejected",
			event:      Event{Role: "user", Type: "transcript", Text: "Pivot to value over price", CallID: "c1"},
			recentCues: []string{"Pivot to value over price."},
			want:       VerdictCueEcho,
		},
		{
			name:       "speech containing a recent cue rejected",
			event:      Event{Role: "user", Type: "transcript", Text: "so like you said, pivot to value over price, right", CallID: "c1"},
			recentCues: []string{"Pivot to value over price."},
			want:       VerdictCueEcho,
		},
		{
			name:       "unrelated speech passes the echo check",
			event:      Event{Role: "user", Type: "transcript", Text: "Let me walk you through the integration plan", CallID: "c1"},
			recentCues: []string{"Pivot to value over price."},
			want:       VerdictAdmit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Classify(tt.event, tt.recentCues)
			if got.Verdict != tt.want {
				t.Errorf("Verdict = %q (reason %q), want %q", got.Verdict, got.Reason, tt.want)
			}
			if tt.want != VerdictAdmit && got.Admitted() {
				t.Error("rejected event reported as admitted")
			}
		})
	}
}

// The echo prefix is measured in runes, not bytes. "é" and "è" share a
// leading byte, so byte-slicing the cue at position 20 would reject speech
// that merely shares 19 characters and half a rune with a recent cue.
func TestCueEchoComparesRunesNotBytes(t *testing.T) {
	g := New(DefaultRules())

	got := g.Classify(Event{
		Role:   "customer",
		Type:   "transcript",
		Text:   "ask about budget noé and the rollout plan",
		CallID: "c1",
	}, []string{"ask about budget noè wait and listen"})
	if got.Verdict != VerdictAdmit {
		t.Errorf("Verdict = %q (reason %q), want %q", got.Verdict, got.Reason, VerdictAdmit)
	}

	// An accented cue echoed back with its full 20-rune prefix is still caught.
	got = g.Classify(Event{
		Role:   "customer",
		Type:   "transcript",
		Text:   "évaluez l'offre concurrente comme vous disiez",
		CallID: "c1",
	}, []string{"Évaluez l'offre concurrente."})
	if got.Verdict != VerdictCueEcho {
		t.Errorf("Verdict = %q (reason %q), want %q", got.Verdict, got.Reason, VerdictCueEcho)
	}
}

// The role check has to win even when the payload would also be filler or
// malformed, so assistant traffic is never misattributed.
func TestAssistantCheckRunsFirst(t *testing.T) {
	g := New(DefaultRules())

	got := g.Classify(Event{Role: "assistant", Text: "", CallID: ""}, nil)
	if got.Verdict != VerdictAssistantRole {
		t.Errorf("Verdict = %q, want %q", got.Verdict, VerdictAssistantRole)
	}
}
