package profile

import (
	"errors"
	"testing"
)

func TestSavedProfileList_AddDuplicate(t *testing.T) {
	list := SavedProfileList{}

	list, err := list.Add(SavedProfile{Name: "A", ProfileURL: "https://example.com/a"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	same, err := list.Add(SavedProfile{Name: "A again", ProfileURL: "https://example.com/a"})
	if !errors.Is(err, ErrDuplicateSavedProfile) {
		t.Fatalf("expected ErrDuplicateSavedProfile, got %v", err)
	}
	if len(same) != len(list) {
		t.Fatalf("duplicate add must leave the list unchanged")
	}
}

func TestSavedProfileList_RemoveIdempotent(t *testing.T) {
	list := SavedProfileList{
		{Name: "A", ProfileURL: "https://example.com/a"},
		{Name: "B", ProfileURL: "https://example.com/b"},
		{Name: "C", ProfileURL: "https://example.com/c"},
	}

	out := list.Remove("https://example.com/b")
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].Name != "A" || out[1].Name != "C" {
		t.Fatalf("remove must preserve insertion order, got %v", out)
	}

	again := out.Remove("https://example.com/b")
	if len(again) != 2 {
		t.Fatalf("removing an absent url must be a no-op")
	}
}

func TestSavedProfileList_Contains(t *testing.T) {
	list := SavedProfileList{{ProfileURL: "https://example.com/a"}}
	if !list.Contains("https://example.com/a") {
		t.Fatalf("expected contains true")
	}
	if list.Contains("https://example.com/z") {
		t.Fatalf("expected contains false")
	}
}
