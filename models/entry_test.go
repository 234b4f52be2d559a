package models

import (
	"encoding/json"
	"strings"
	"testing"
)

// Tags and snippets must marshal as [] rather than disappear, so a
// client can tell a cleared collection from one that was never sent.
func TestEntry_MarshalsEmptyCollectionsAsArrays(t *testing.T) {
	entry := Entry{
		ID:       "e1",
		Title:    "t",
		Tags:     []Tag{},
		Snippets: []Snippet{},
	}

	body, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !strings.Contains(string(body), `"tags":[]`) {
		t.Errorf("expected empty tags array, got: %s", body)
	}
	if !strings.Contains(string(body), `"snippets":[]`) {
		t.Errorf("expected empty snippets array, got: %s", body)
	}
}

func TestEntryUpdate_Empty(t *testing.T) {
	if !(EntryUpdate{}).Empty() {
		t.Error("expected zero update to be empty")
	}

	title := "new title"
	if (EntryUpdate{Title: &title}).Empty() {
		t.Error("expected update with a field to be non-empty")
	}
}
