package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-salescoach-be/pkg/coach/cuebank"
	"ai-salescoach-be/pkg/trigger"
)

type fakeProvider struct {
	name       string
	completion string
	err        error
	calls      int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.completion, nil
}

func newTestCascade(providers ...Provider) *Cascade {
	return NewCascade(providers, cuebank.New(nil), 10, 50, 0.3, time.Second)
}

func TestGenerateUsesFirstWorkingProvider(t *testing.T) {
	first := &fakeProvider{name: "first", completion: "Pivot to value."}
	second := &fakeProvider{name: "second", completion: "unused"}
	c := newTestCascade(first, second)

	cue, source := c.Generate(context.Background(), "system", "too expensive", trigger.Set{Objection: true})

	if cue != "Pivot to value." {
		t.Errorf("cue = %q", cue)
	}
	if source != SourceLLM {
		t.Errorf("source = %q, want %q", source, SourceLLM)
	}
	if second.calls != 0 {
		t.Error("second provider should not be called")
	}
}

func TestGenerateEnforcesWordCap(t *testing.T) {
	long := &fakeProvider{
		name:       "verbose",
		completion: "one two three four five six seven eight nine ten eleven twelve",
	}
	c := newTestCascade(long)

	cue, _ := c.Generate(context.Background(), "system", "hello", trigger.Set{})

	if n := len(strings.Fields(cue)); n > 10 {
		t.Errorf("cue has %d words, cap is 10: %q", n, cue)
	}
	if !strings.HasPrefix(cue, "one two three") {
		t.Errorf("truncation should keep the leading words: %q", cue)
	}
}

func TestGenerateFallsThroughOnErrorAndBlank(t *testing.T) {
	failing := &fakeProvider{name: "failing", err: errors.New("timeout")}
	blank := &fakeProvider{name: "blank", completion: "   "}
	working := &fakeProvider{name: "working", completion: "Ask about budget."}
	c := newTestCascade(failing, blank, working)

	cue, source := c.Generate(context.Background(), "system", "hello", trigger.Set{})

	if cue != "Ask about budget." {
		t.Errorf("cue = %q", cue)
	}
	if source != SourceLLM {
		t.Errorf("source = %q", source)
	}
}

func TestGenerateFallsBackToBank(t *testing.T) {
	failing := &fakeProvider{name: "failing", err: errors.New("down")}
	c := newTestCascade(failing)

	cue, source := c.Generate(context.Background(), "system", "too expensive", trigger.Set{Objection: true})

	if source != SourceFallback {
		t.Fatalf("source = %q, want %q", source, SourceFallback)
	}
	if !cuebank.Contains(cuebank.ObjectionCues, cue) {
		t.Errorf("fallback cue %q not from the objection bank", cue)
	}
}

func TestGenerateWithNoProviders(t *testing.T) {
	c := newTestCascade()

	cue, source := c.Generate(context.Background(), "system", "anything", trigger.Set{Competitor: true})

	if source != SourceFallback {
		t.Fatalf("source = %q, want %q", source, SourceFallback)
	}
	if !cuebank.Contains(cuebank.CompetitorCues, cue) {
		t.Errorf("cue %q not from the competitor bank", cue)
	}
}

func TestGenerateSendsSystemAndUtterance(t *testing.T) {
	var captured []Message
	capturing := &capturingProvider{}
	c := newTestCascade(capturing)

	c.Generate(context.Background(), "SYSTEM PROMPT", "we need this by Q3", trigger.Set{Timeline: true})
	captured = capturing.history

	if len(captured) != 2 {
		t.Fatalf("history length = %d, want 2", len(captured))
	}
	if captured[0].Role != "system" || captured[0].Content != "SYSTEM PROMPT" {
		t.Errorf("system message = %+v", captured[0])
	}
	if captured[1].Role != "user" || captured[1].Content != "Customer: we need this by Q3" {
		t.Errorf("user message = %+v", captured[1])
	}
}

type capturingProvider struct {
	history []Message
}

func (c *capturingProvider) Name() string { return "capturing" }

func (c *capturingProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	c.history = history
	return "Fine.", nil
}
