package cuebank

import (
	"math/rand"
	"testing"

	"ai-salescoach-be/pkg/trigger"
)

func TestPickPriority(t *testing.T) {
	b := New(rand.New(rand.NewSource(1)))

	tests := []struct {
		name string
		set  trigger.Set
		pool []string
	}{
		{"objection wins over everything", trigger.Set{Objection: true, Competitor: true, Timeline: true}, ObjectionCues},
		{"competitor wins over timeline", trigger.Set{Competitor: true, Timeline: true}, CompetitorCues},
		{"timeline alone", trigger.Set{Timeline: true}, TimelineCues},
		{"no trigger falls back to generic", trigger.Set{}, GenericCues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				cue := b.Pick(tt.set)
				if !Contains(tt.pool, cue) {
					t.Fatalf("cue %q not in expected pool", cue)
				}
			}
		})
	}
}

func TestCueLengths(t *testing.T) {
	pools := [][]string{ObjectionCues, CompetitorCues, TimelineCues, GenericCues}
	for _, pool := range pools {
		for _, cue := range pool {
			if cue == "" {
				t.Fatal("empty cue in bank")
			}
		}
	}
}
