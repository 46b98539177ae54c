package embedding

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeProvider counts calls and returns scripted results.
type fakeProvider struct {
	name  string
	vec   []float32
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vec, nil
}

func TestEmbedFirstProviderWins(t *testing.T) {
	first := &fakeProvider{name: "first", vec: make([]float32, 768)}
	second := &fakeProvider{name: "second", vec: make([]float32, 768)}
	c := NewCascade([]Provider{first, second}, 768, 2, time.Second)

	c.Embed(context.Background(), "hello")

	if first.calls != 1 {
		t.Errorf("first provider calls = %d, want 1", first.calls)
	}
	if second.calls != 0 {
		t.Errorf("second provider calls = %d, want 0", second.calls)
	}
}

func TestEmbedFallsThroughOnFailure(t *testing.T) {
	first := &fakeProvider{name: "first", err: &ProviderError{Provider: "first", StatusCode: 500, Message: "boom"}}
	second := &fakeProvider{name: "second", vec: []float32{1, 2, 3}}
	c := NewCascade([]Provider{first, second}, 3, 2, time.Second)

	got := c.Embed(context.Background(), "hello")

	if first.calls != 2 {
		t.Errorf("failing provider should be retried: calls = %d, want 2", first.calls)
	}
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("vector from second provider not returned: %v", got)
	}
}

func TestEmbedUnauthorizedSkipsRetries(t *testing.T) {
	unauthorized := &fakeProvider{name: "bad-key", err: &ProviderError{Provider: "bad-key", StatusCode: 401, Message: "invalid key"}}
	next := &fakeProvider{name: "next", vec: make([]float32, 768)}
	c := NewCascade([]Provider{unauthorized, next}, 768, 3, time.Second)

	c.Embed(context.Background(), "hello")

	if unauthorized.calls != 1 {
		t.Errorf("401 provider calls = %d, want 1 (no retries)", unauthorized.calls)
	}
	if next.calls != 1 {
		t.Errorf("cascade should still continue past a 401: next calls = %d", next.calls)
	}
}

func TestEmbedNeverFails(t *testing.T) {
	c := NewCascade(nil, 768, 2, time.Second)

	got := c.Embed(context.Background(), "any text at all")

	if len(got) != 768 {
		t.Fatalf("fallback vector dim = %d, want 768", len(got))
	}
}

func TestEmbedConformsDimension(t *testing.T) {
	short := &fakeProvider{name: "short", vec: []float32{1, 2}}
	c := NewCascade([]Provider{short}, 5, 1, time.Second)

	got := c.Embed(context.Background(), "x")

	if len(got) != 5 {
		t.Fatalf("dim = %d, want 5", len(got))
	}
	if got[0] != 1 || got[1] != 2 || got[2] != 0 {
		t.Errorf("short vector should be zero-padded: %v", got)
	}

	long := &fakeProvider{name: "long", vec: []float32{1, 2, 3, 4, 5, 6}}
	c = NewCascade([]Provider{long}, 4, 1, time.Second)
	if got := c.Embed(context.Background(), "x"); len(got) != 4 {
		t.Errorf("long vector should be truncated to 4, got %d", len(got))
	}
}

func TestFallbackVector(t *testing.T) {
	a := FallbackVector("identical content", 768)
	b := FallbackVector("identical content", 768)
	other := FallbackVector("different content", 768)

	if len(a) != 768 {
		t.Fatalf("dim = %d, want 768", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fallback not deterministic at component %d", i)
		}
	}

	same := true
	for i := range a {
		if a[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts should hash to different vectors")
	}

	for i, v := range a {
		if math.Abs(float64(v)) > 0.1 {
			t.Fatalf("component %d = %f, |v| must not exceed 0.1", i, v)
		}
	}
}

func TestHuggingFaceMeanPooling(t *testing.T) {
	// 3-D batched per-token output: one batch, two tokens of dim 3.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[[1.0, 2.0, 3.0], [3.0, 4.0, 5.0]]]`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("key", "test-model")
	p.BaseURL = srv.URL
	p.Client = srv.Client()

	got, err := p.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want := []float32{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("dim = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestHuggingFaceUnauthorizedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("bad-key", "test-model")
	p.BaseURL = srv.URL
	p.Client = srv.Client()

	_, err := p.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	provErr, ok := err.(*ProviderError)
	if !ok {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if !provErr.Unauthorized() {
		t.Error("401 should report Unauthorized()")
	}
}
