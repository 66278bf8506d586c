package model_test

import (
	"testing"

	"github-event-tracker/internal/model"
)

func TestEventDocument(t *testing.T) {
	e := model.NewEvent("abc123", "alice", model.ActionPush, "", "main", "2024-01-15T10:30:00Z")

	doc := e.Document()

	want := map[string]any{
		"request_id":  "abc123",
		"author":      "alice",
		"action":      "PUSH",
		"from_branch": "",
		"to_branch":   "main",
		"timestamp":   "2024-01-15T10:30:00Z",
	}

	if len(doc) != len(want) {
		t.Fatalf("expected exactly %d fields, got %d: %v", len(want), len(doc), doc)
	}
	for k, v := range want {
		if doc[k] != v {
			t.Errorf("field %s: expected %v, got %v", k, v, doc[k])
		}
	}

	// from_branch must be present (empty string), never absent.
	if _, ok := doc["from_branch"]; !ok {
		t.Errorf("from_branch must always be present in the document")
	}
}
