package dedup

import (
	"strings"
	"time"
)

// Cue is a previously emitted coaching cue in the lookback window.
type Cue struct {
	Text      string
	CreatedAt time.Time
}

// Deduplicator suppresses near-duplicate cues emitted for the same call
// within a recent time window. The recent-cue list is passed in by the
// caller; this type holds no per-call state.
//
// The window and prefix thresholds are empirically tuned and may over- or
// under-filter; they are constructor parameters so product can adjust them.
type Deduplicator struct {
	window    time.Duration
	prefixLen int
	now       func() time.Time
}

func New(window time.Duration, prefixLen int) *Deduplicator {
	if window <= 0 {
		window = 60 * time.Second
	}
	if prefixLen <= 0 {
		prefixLen = 20
	}
	return &Deduplicator{
		window:    window,
		prefixLen: prefixLen,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (d *Deduplicator) WithClock(now func() time.Time) *Deduplicator {
	d.now = now
	return d
}

// IsDuplicate reports whether candidate matches any recent cue inside the
// window. Matching is on normalized text: exact equality, or either string
// being a prefix of the other over the first prefixLen characters.
func (d *Deduplicator) IsDuplicate(candidate string, recent []Cue) bool {
	normCandidate := Normalize(candidate)
	if normCandidate == "" {
		return false
	}

	cutoff := d.now().Add(-d.window)
	for _, cue := range recent {
		if cue.CreatedAt.Before(cutoff) {
			continue
		}
		if d.matches(normCandidate, Normalize(cue.Text)) {
			return true
		}
	}
	return false
}

func (d *Deduplicator) matches(a, b string) bool {
	if a == b {
		return true
	}
	pa := prefix(a, d.prefixLen)
	pb := prefix(b, d.prefixLen)
	return strings.HasPrefix(b, pa) || strings.HasPrefix(a, pb)
}

// Normalize lower-cases, collapses internal whitespace, and strips terminal
// punctuation so trivial rephrasings compare equal.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	return strings.TrimRight(s, ".,!?;: ")
}

// prefix takes the first n runes, not bytes, so multi-byte text is never cut
// mid-character.
func prefix(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
