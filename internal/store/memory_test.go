package store

import (
	"fmt"
	"testing"

	"cvchat/internal/llm"
)

func TestAppendAndGet(t *testing.T) {
	m := NewMemoryStore(10)

	m.Append("s1", llm.Message{Role: llm.RoleUser, Content: "hi"})
	m.Append("s1", llm.Message{Role: llm.RoleAssistant, Content: "hello"})

	msgs := m.Get("s1")
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Content != "hi" || msgs[1].Content != "hello" {
		t.Fatalf("unexpected order: %+v", msgs)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m := NewMemoryStore(10)
	m.Append("s1", llm.Message{Role: llm.RoleUser, Content: "hi"})

	msgs := m.Get("s1")
	msgs[0].Content = "mutated"

	if got := m.Get("s1")[0].Content; got != "hi" {
		t.Fatalf("store was mutated through Get: %q", got)
	}
}

func TestTrimToMax(t *testing.T) {
	m := NewMemoryStore(4)

	for i := 0; i < 10; i++ {
		m.Append("s1", llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("m%d", i)})
	}

	msgs := m.Get("s1")
	if len(msgs) != 4 {
		t.Fatalf("expected history trimmed to 4, got %d", len(msgs))
	}
	if msgs[0].Content != "m6" || msgs[3].Content != "m9" {
		t.Fatalf("expected newest messages kept, got %+v", msgs)
	}
}

func TestLastWindow(t *testing.T) {
	m := NewMemoryStore(10)
	for i := 0; i < 6; i++ {
		m.Append("s1", llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("m%d", i)})
	}

	last := m.Last("s1", 2)
	if len(last) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(last))
	}
	if last[0].Content != "m4" || last[1].Content != "m5" {
		t.Fatalf("unexpected window: %+v", last)
	}

	if got := m.Last("s1", 100); len(got) != 6 {
		t.Fatalf("expected all 6 messages, got %d", len(got))
	}
}

func TestReset(t *testing.T) {
	m := NewMemoryStore(10)
	m.Append("s1", llm.Message{Role: llm.RoleUser, Content: "hi"})
	m.Append("s2", llm.Message{Role: llm.RoleUser, Content: "other"})

	m.Reset("s1")

	if got := m.Get("s1"); len(got) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(got))
	}
	if got := m.Get("s2"); len(got) != 1 {
		t.Fatalf("expected other session untouched, got %d messages", len(got))
	}
}
