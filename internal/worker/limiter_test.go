package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("https://example.com/a") {
		t.Error("Expected first request within burst to be allowed")
	}
	if !l.Allow("https://example.com/b") {
		t.Error("Expected second request within burst to be allowed")
	}
	if l.Allow("https://example.com/c") {
		t.Error("Expected third request to exceed the burst")
	}
}

func TestLimiter_PerHostIsolation(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://example.com/") {
		t.Fatal("Expected first host's request to be allowed")
	}
	// A different host has its own budget.
	if !l.Allow("https://other.org/") {
		t.Error("Expected second host's budget to be untouched")
	}
	if l.Allow("https://example.com/again") {
		t.Error("Expected first host's budget to be spent")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)

	// Spend the burst.
	if err := l.Wait(context.Background(), "https://example.com/"); err != nil {
		t.Fatalf("Expected first wait to pass, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := l.Wait(ctx, "https://example.com/")
	if err == nil {
		t.Fatal("Expected wait to fail under an exhausted budget")
	}
	if time.Since(start) > 2*time.Second {
		t.Error("Wait did not respect the context deadline")
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	l := NewLimiter(1, 1)

	if l.Allow("://not-a-url") {
		t.Error("Expected an unparsable URL to be denied")
	}
}
