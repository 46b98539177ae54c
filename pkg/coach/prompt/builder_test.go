package prompt

import (
	"strings"
	"testing"

	"ai-salescoach-be/pkg/trigger"
)

func TestBuildDefaultPersona(t *testing.T) {
	b := NewBuilder(trigger.Set{Objection: true}, "", "", 10)
	got := b.Build()

	if !strings.Contains(got, "real-time sales coach") {
		t.Error("default persona missing")
	}
	if !strings.Contains(got, "at most 10 words") {
		t.Error("word cap not stated in persona")
	}
	if strings.Contains(got, "CONTEXT:") {
		t.Error("context section should be absent without retrieved text")
	}
	if !strings.Contains(got, "- price objection: true") {
		t.Error("objection flag missing from trigger analysis")
	}
	if !strings.Contains(got, "- competitor mention: false") {
		t.Error("competitor flag missing from trigger analysis")
	}
	if !strings.Contains(got, "- timeline pressure: false") {
		t.Error("timeline flag missing from trigger analysis")
	}
}

func TestBuildCustomPromptReplacesPersona(t *testing.T) {
	custom := "You are an aggressive enterprise closer."
	b := NewBuilder(trigger.Set{}, "", custom, 10)
	got := b.Build()

	if !strings.HasPrefix(got, custom) {
		t.Error("custom prompt should lead the output")
	}
	if strings.Contains(got, "real-time sales coach") {
		t.Error("default persona should be fully replaced by the playbook prompt")
	}
	// Trigger analysis survives the override.
	if !strings.Contains(got, "TRIGGER ANALYSIS:") {
		t.Error("trigger analysis missing with custom prompt")
	}
}

func TestBuildIncludesContextVerbatim(t *testing.T) {
	ctx := "Our premium tier includes 24/7 support.\n\nDiscounts available on annual billing."
	b := NewBuilder(trigger.Set{Timeline: true}, ctx, "", 10)
	got := b.Build()

	idx := strings.Index(got, "CONTEXT:\n")
	if idx < 0 {
		t.Fatal("context header missing")
	}
	if !strings.Contains(got, ctx) {
		t.Error("retrieved context not included verbatim")
	}
	if strings.Index(got, "TRIGGER ANALYSIS:") < idx {
		t.Error("trigger analysis should follow the context section")
	}
}
