package transcript

import (
	"sync"
	"testing"
)

func TestSubmit_AppendsUserEntryAndPlaceholder(t *testing.T) {
	tr := New()

	id, ok := tr.Submit("Hello")
	if !ok {
		t.Fatal("Expected submission to be accepted")
	}
	if id == "" {
		t.Fatal("Expected a non-empty placeholder ID")
	}

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Sender != SenderUser || entries[0].Text != "Hello" {
		t.Errorf("First entry should be the user turn, got %+v", entries[0])
	}
	if entries[1].Sender != SenderBot || !entries[1].Thinking || entries[1].ID != id {
		t.Errorf("Second entry should be the thinking placeholder, got %+v", entries[1])
	}
	if tr.PendingCount() != 1 {
		t.Errorf("Expected 1 pending placeholder, got %d", tr.PendingCount())
	}
}

func TestSubmit_TrimsInput(t *testing.T) {
	tr := New()
	tr.Submit("  Hello  ")

	if entries := tr.Entries(); entries[0].Text != "Hello" {
		t.Errorf("Expected trimmed text 'Hello', got %q", entries[0].Text)
	}
}

func TestSubmit_WhitespaceOnlyIsIgnored(t *testing.T) {
	tr := New()

	tests := []string{"", "   ", "\n\t  \n"}
	for _, input := range tests {
		if _, ok := tr.Submit(input); ok {
			t.Errorf("Submission %q should be ignored", input)
		}
	}

	if len(tr.Entries()) != 0 {
		t.Errorf("Expected no transcript mutation, got %d entries", len(tr.Entries()))
	}
	if tr.PendingCount() != 0 {
		t.Errorf("Expected no pending placeholders, got %d", tr.PendingCount())
	}
}

func TestResolve_ExactlyOnce(t *testing.T) {
	tr := New()
	id, _ := tr.Submit("Hello")

	if !tr.Resolve(id, "Hi there!") {
		t.Fatal("First resolution should succeed")
	}

	entries := tr.Entries()
	if entries[1].Thinking {
		t.Error("Thinking state should be cleared")
	}
	if entries[1].Text != "Hi there!" {
		t.Errorf("Expected resolved text 'Hi there!', got %q", entries[1].Text)
	}

	if tr.Resolve(id, "again") {
		t.Error("Second resolution of the same ID must be rejected")
	}
	if got := tr.Entries()[1].Text; got != "Hi there!" {
		t.Errorf("Resolved text must not change, got %q", got)
	}
}

func TestResolve_UnknownID(t *testing.T) {
	tr := New()
	if tr.Resolve("no-such-id", "text") {
		t.Error("Resolving an unknown ID should fail")
	}
}

func TestResolve_FormatsText(t *testing.T) {
	tr := New()
	id, _ := tr.Submit("Hello")
	tr.Resolve(id, "**bold** line1\nline2")

	got := tr.Entries()[1].Text
	want := "<strong>bold</strong> line1<br>line2"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestConcurrentSubmissions_ResolveIndependently(t *testing.T) {
	tr := New()

	idA, _ := tr.Submit("question A")
	idB, _ := tr.Submit("question B")

	if idA == idB {
		t.Fatal("Placeholder IDs must be unique")
	}

	tr.Resolve(idA, "answer A")

	entries := tr.Entries()
	if entries[1].Text != "answer A" || entries[1].Thinking {
		t.Errorf("Placeholder A should be resolved, got %+v", entries[1])
	}
	if !entries[3].Thinking || entries[3].Text != "" {
		t.Errorf("Placeholder B must stay pending, got %+v", entries[3])
	}

	tr.Resolve(idB, "answer B")
	if got := tr.Entries()[3].Text; got != "answer B" {
		t.Errorf("Placeholder B should resolve to its own text, got %q", got)
	}
}

func TestConcurrentSubmissions_ParallelGoroutines(t *testing.T) {
	tr := New()

	const n = 50
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i], _ = tr.Submit("question")
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("Duplicate placeholder ID %q", id)
		}
		seen[id] = true
	}

	wg = sync.WaitGroup{}
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !tr.Resolve(id, "answer") {
				t.Errorf("Resolution of %q failed", id)
			}
		}()
	}
	wg.Wait()

	if tr.PendingCount() != 0 {
		t.Errorf("Expected all placeholders resolved, %d still pending", tr.PendingCount())
	}
	if len(tr.Entries()) != 2*n {
		t.Errorf("Expected %d entries, got %d", 2*n, len(tr.Entries()))
	}
}

func TestEntries_ReturnsSnapshot(t *testing.T) {
	tr := New()
	id, _ := tr.Submit("Hello")

	snapshot := tr.Entries()
	tr.Resolve(id, "Hi")

	if !snapshot[1].Thinking {
		t.Error("Snapshot should not observe later mutations")
	}
}
