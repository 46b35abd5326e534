package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
	"github.com/devin-hart/nox-verbs/internal/maps"
	"github.com/devin-hart/nox-verbs/internal/world"
)

func main() {
	dir := flag.String("dir", filepath.Join("assets", "worlds"), "world directory")
	name := flag.String("world", "station", "world name")
	strict := flag.Bool("strict", false, "exit non-zero when a top-level entity can never be offered")
	flag.Parse()

	w, err := maps.LoadWorld(*dir, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load world: %v\n", err)
		os.Exit(1)
	}

	report := lint(w)
	fmt.Printf("Scanning %s/%s...\n", *dir, *name)
	for _, line := range report.lines {
		fmt.Println(line)
	}
	fmt.Printf("\n✨ Done. Offered: %d | Nested: %d | Hidden: %d\n", report.offered, report.nested, report.hidden)

	if *strict && report.hidden > 0 {
		os.Exit(2)
	}
}

type lintReport struct {
	lines   []string
	offered int
	nested  int
	hidden  int
}

// lint explains, for every entity, whether the context menu would offer
// it to the current observer.
func lint(w *world.World) lintReport {
	var r lintReport
	b := w.Builder()
	for _, id := range w.Transforms.All() {
		ref := contextmenu.EntityRef{Entity: id}
		name, _ := w.NameOf(ref)
		if name == "" {
			name = "(unnamed)"
		}
		_, reason := b.Explain(ref, nil)
		switch reason {
		case contextmenu.Accepted:
			r.offered++
		case contextmenu.RejectNested:
			r.nested++
		default:
			r.hidden++
		}
		mark := "✅"
		if reason != contextmenu.Accepted {
			mark = "❌"
		}
		r.lines = append(r.lines, fmt.Sprintf("%s %-6d %-20s %s", mark, id, truncate(name, 20), reason))
	}
	return r
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
