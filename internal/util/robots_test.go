package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsChecker_AllowsAndDenies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("factyne-test", 5*time.Second)

	allowed, err := checker.CanFetch(context.Background(), server.URL+"/public/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected /public/ to be allowed")
	}

	allowed, err = checker.CanFetch(context.Background(), server.URL+"/private/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if allowed {
		t.Error("Expected /private/ to be disallowed")
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("factyne-test", 5*time.Second)

	allowed, err := checker.CanFetch(context.Background(), server.URL+"/anything")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected a 404 robots.txt to allow fetching")
	}
}

func TestRobotsChecker_UnreachableHostAllows(t *testing.T) {
	checker := NewRobotsChecker("factyne-test", 200*time.Millisecond)

	allowed, err := checker.CanFetch(context.Background(), "http://127.0.0.1:1/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected an unreachable robots.txt to allow fetching")
	}
}

func TestRobotsChecker_CachesPerHost(t *testing.T) {
	var robotsCalls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			robotsCalls.Add(1)
			_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
		}
	}))
	defer server.Close()

	checker := NewRobotsChecker("factyne-test", 5*time.Second)
	for i := 0; i < 3; i++ {
		if _, err := checker.CanFetch(context.Background(), server.URL+"/page"); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	if robotsCalls.Load() != 1 {
		t.Errorf("Expected 1 robots.txt fetch for a cached host, got %d", robotsCalls.Load())
	}
}

func TestRobotsChecker_InvalidURL(t *testing.T) {
	checker := NewRobotsChecker("factyne-test", time.Second)

	if _, err := checker.CanFetch(context.Background(), "://bad"); err == nil {
		t.Error("Expected an error for an unparsable URL")
	}
}
