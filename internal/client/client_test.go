package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/chat" {
			t.Errorf("expected /api/chat, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["message"] != "hello" {
			t.Errorf("expected message %q, got %q", "hello", req["message"])
		}
		if req["session_id"] == "" {
			t.Error("expected a session_id")
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"response": "Hello!"})
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	reply, err := c.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if reply != "Hello!" {
		t.Fatalf("expected reply %q, got %q", "Hello!", reply)
	}
}

func TestSendMissingResponseField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	reply, err := c.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if reply != "" {
		t.Fatalf("expected empty reply, got %q", reply)
	}
}

func TestSendNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	if _, err := c.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestSendMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	if _, err := c.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestSendTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused

	c := New(ts.URL, nil)
	if _, err := c.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestSendExtraHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("expected Authorization header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer ts.Close()

	c := New(ts.URL, map[string]string{"Authorization": "Bearer token"})
	if _, err := c.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send err: %v", err)
	}
}
