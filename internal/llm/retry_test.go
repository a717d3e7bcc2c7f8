package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// TestRetryPolicy pins down which failures earn another attempt: rate
// limits and outages are transient, a schema violation gets exactly one
// more chance before the caller's fallback takes over, and a truncated
// response never recovers by repetition.
func TestRetryPolicy(t *testing.T) {
	okResp := MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	unavailable := func() MockResponse {
		return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	}
	rateLimited := func() MockResponse {
		return MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}}
	}
	invalid := func() MockResponse {
		return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`???`), Err: errors.New("not json")}}
	}

	isUnavailable := func(err error) bool {
		var e *ErrProviderUnavailable
		return errors.As(err, &e)
	}
	isInvalid := func(err error) bool {
		var e *ErrInvalidResponse
		return errors.As(err, &e)
	}
	isMaxTokens := func(err error) bool {
		var e *ErrMaxTokensExceeded
		return errors.As(err, &e)
	}

	tests := []struct {
		name      string
		queue     []MockResponse
		wantCalls int
		wantErr   func(error) bool // nil means the call must succeed
	}{
		{
			name:      "first attempt succeeds",
			queue:     []MockResponse{okResp},
			wantCalls: 1,
		},
		{
			name:      "outage then recovery",
			queue:     []MockResponse{unavailable(), okResp},
			wantCalls: 2,
		},
		{
			name:      "rate limit then recovery",
			queue:     []MockResponse{rateLimited(), okResp},
			wantCalls: 2,
		},
		{
			name:      "outage exhausts all attempts",
			queue:     []MockResponse{unavailable(), unavailable(), unavailable()},
			wantCalls: 3,
			wantErr:   isUnavailable,
		},
		{
			name:      "truncated response is terminal",
			queue:     []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}}},
			wantCalls: 1,
			wantErr:   isMaxTokens,
		},
		{
			name:      "schema violation retried once",
			queue:     []MockResponse{invalid(), okResp},
			wantCalls: 2,
		},
		{
			// A third attempt would delay the deterministic fallback for
			// no benefit; the second violation surfaces even though the
			// queue holds a good response.
			name:      "second schema violation surfaces",
			queue:     []MockResponse{invalid(), invalid(), okResp},
			wantCalls: 2,
			wantErr:   isInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.queue...)
			p := WithRetry(mock, fastRetryConfig())

			resp, err := p.Generate(context.Background(), Request{})

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(resp.Content) != `{"ok":true}` {
					t.Fatalf("unexpected content: %s", resp.Content)
				}
			} else {
				if err == nil {
					t.Fatal("expected error")
				}
				if !tt.wantErr(err) {
					t.Fatalf("wrong error type: %T (%v)", err, err)
				}
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryCanceledContextStopsImmediately(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error from canceled context")
	}
	if mock.CallCount() > 1 {
		t.Fatalf("no attempt may follow cancellation, got %d calls", mock.CallCount())
	}
}

func TestRetryBackoff(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		MaxAttempts: 5,
		InitialWait: 10 * time.Millisecond,
		MaxWait:     40 * time.Millisecond,
		Multiplier:  2.0,
	}}
	generic := errors.New("boom")

	t.Run("grows and stays within jittered bounds", func(t *testing.T) {
		for attempt := 0; attempt < 5; attempt++ {
			wait := r.backoff(attempt, generic)
			if wait < 0 {
				t.Fatalf("attempt %d: negative wait %v", attempt, wait)
			}
			// Cap plus 20% jitter is the hard ceiling.
			ceiling := time.Duration(float64(r.config.MaxWait) * 1.2)
			if wait > ceiling {
				t.Fatalf("attempt %d: wait %v exceeds %v", attempt, wait, ceiling)
			}
		}
	})

	t.Run("rate limit hint wins over backoff", func(t *testing.T) {
		hinted := &ErrRateLimit{RetryAfter: 123 * time.Millisecond, Err: errors.New("429")}
		if wait := r.backoff(0, hinted); wait != 123*time.Millisecond {
			t.Fatalf("wait = %v, want the server's retry-after", wait)
		}
	})
}

func TestRetryRateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q, want mock", p.ModelID())
	}
}
