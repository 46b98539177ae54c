package trigger

import (
	"testing"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name           string
		text           string
		wantObjection  bool
		wantCompetitor bool
		wantTimeline   bool
	}{
		{
			name: "no triggers",
			text: "Sounds good, let's continue.",
		},
		{
			name:          "price objection",
			text:          "Your price is way too expensive for us",
			wantObjection: true,
		},
		{
			name:          "objection is case insensitive",
			text:          "That seems TOO EXPENSIVE honestly",
			wantObjection: true,
		},
		{
			name:           "competitor mention",
			text:           "We are already evaluating a competitor",
			wantCompetitor: true,
		},
		{
			name:         "timeline question",
			text:         "What would the timeline look like?",
			wantTimeline: true,
		},
		{
			name:           "multiple triggers in one utterance",
			text:           "The price is high and the rollout timeline worries me",
			wantObjection:  true,
			wantTimeline:   true,
			wantCompetitor: false,
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.text)

			if got.Objection != tt.wantObjection {
				t.Errorf("Objection = %v, want %v", got.Objection, tt.wantObjection)
			}
			if got.Competitor != tt.wantCompetitor {
				t.Errorf("Competitor = %v, want %v", got.Competitor, tt.wantCompetitor)
			}
			if got.Timeline != tt.wantTimeline {
				t.Errorf("Timeline = %v, want %v", got.Timeline, tt.wantTimeline)
			}
		})
	}
}

func TestDetectedReportsAnyTrigger(t *testing.T) {
	if (Set{}).Detected() {
		t.Error("empty set should not report detected")
	}
	if !(Set{Timeline: true}).Detected() {
		t.Error("set with timeline should report detected")
	}
}

func TestDetectorWithCustomKeywords(t *testing.T) {
	d := NewDetectorWithKeywords([]string{"budget freeze"}, nil, nil)

	if got := d.Detect("we have a budget freeze this quarter"); !got.Objection {
		t.Error("custom objection keyword not detected")
	}
	// Defaults are replaced, not extended.
	if got := d.Detect("too expensive"); got.Objection {
		t.Error("default keyword should be inactive with custom list")
	}
}
