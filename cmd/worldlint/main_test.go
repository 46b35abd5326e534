package main

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/devin-hart/nox-verbs/internal/maps"
)

func TestLint_StationAsset(t *testing.T) {
	w, err := maps.LoadWorld(filepath.Join("..", "..", "assets", "worlds"), "station")
	if err != nil {
		t.Fatal(err)
	}
	r := lint(w)

	// Assistant, Toolbox, Potted plant are offered; the ghost is hidden
	// from sight 15, the cobweb is mouse-transparent, the light is
	// fully transparent and the blood has no name.
	if r.offered != 3 || r.nested != 2 || r.hidden != 4 {
		t.Fatalf("offered=%d nested=%d hidden=%d\n%s", r.offered, r.nested, r.hidden, strings.Join(r.lines, "\n"))
	}
	if !strings.Contains(strings.Join(r.lines, "\n"), "transparent to mouse") {
		t.Fatal("cobweb reason missing")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Potted plant", 20); got != "Potted plant" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("An extremely long entity name", 10); got != "An extrem…" {
		t.Fatalf("got %q", got)
	}
	got := truncate("Ящик с инструментами", 6)
	if !utf8.ValidString(got) || got != "Ящик…" {
		t.Fatalf("got %q", got)
	}
}
