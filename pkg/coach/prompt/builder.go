package prompt

import (
	"fmt"
	"strings"

	"ai-salescoach-be/pkg/trigger"
)

// Builder assembles the system prompt for cue generation: persona (default or
// the caller's playbook override), optional retrieved context, and the
// trigger analysis. Pure and side-effect free.
type Builder struct {
	triggers     trigger.Set
	ragContext   string
	customPrompt string
	wordCap      int
}

func NewBuilder(triggers trigger.Set, ragContext, customPrompt string, wordCap int) *Builder {
	if wordCap <= 0 {
		wordCap = 10
	}
	return &Builder{
		triggers:     triggers,
		ragContext:   ragContext,
		customPrompt: customPrompt,
		wordCap:      wordCap,
	}
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writePersona(&prompt)
	b.writeContext(&prompt)
	b.writeTriggerAnalysis(&prompt)

	return prompt.String()
}

// writePersona emits the playbook override verbatim when one is selected;
// otherwise the default coaching persona.
func (b *Builder) writePersona(prompt *strings.Builder) {
	if b.customPrompt != "" {
		prompt.WriteString(b.customPrompt)
		prompt.WriteString("\n\n")
		return
	}

	prompt.WriteString("You are a real-time sales coach whispering to a seller mid-call.\n")
	fmt.Fprintf(prompt, "Reply with ONE actionable instruction of at most %d words.\n", b.wordCap)
	prompt.WriteString("Be direct and authoritative. No greetings, no explanations.\n")
	prompt.WriteString("Ground your advice only in the context provided below. If the context is empty, rely on general sales technique.\n\n")
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	if b.ragContext == "" {
		return
	}
	prompt.WriteString("CONTEXT:\n")
	prompt.WriteString(b.ragContext)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeTriggerAnalysis(prompt *strings.Builder) {
	prompt.WriteString("TRIGGER ANALYSIS:\n")
	fmt.Fprintf(prompt, "- price objection: %t\n", b.triggers.Objection)
	fmt.Fprintf(prompt, "- competitor mention: %t\n", b.triggers.Competitor)
	fmt.Fprintf(prompt, "- timeline pressure: %t\n", b.triggers.Timeline)
}
