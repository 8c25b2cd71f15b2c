package normalize

import "testing"

func TestID(t *testing.T) {
	in := "  6F1C2A9E-0B7D-4C1A-9E3F-2D8B7A6C5E4F  "
	want := "6f1c2a9e-0b7d-4c1a-9e3f-2d8b7a6c5e4f"
	got := ID(in)
	if got != want {
		t.Fatalf("normalize.ID(%q) = %q, want %q", in, got, want)
	}
}

func TestContent(t *testing.T) {
	if got := Content("\n  Is this still available?  \t"); got != "Is this still available?" {
		t.Fatalf("normalize.Content returned %q", got)
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("short", 10); got != "short" {
		t.Fatalf("Preview should keep short text, got %q", got)
	}
	if got := Preview("héllo wörld", 5); got != "héllo…" {
		t.Fatalf("Preview should cut on runes, got %q", got)
	}
}
