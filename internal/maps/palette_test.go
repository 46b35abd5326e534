package maps

import (
	"image/color"
	"testing"
)

func TestLoadPalette(t *testing.T) {
	path := writeFile(t, t.TempDir(), "palette.json", `{"Floor": "#404850", "wall": "8899aa", "bad": "#zz0000"}`)
	if err := LoadPalette(path); err != nil {
		t.Fatal(err)
	}
	if got := IconColor("floor"); got != (color.RGBA{0x40, 0x48, 0x50, 255}) {
		t.Fatalf("floor = %v", got)
	}
	if got := IconColor("WALL"); got != (color.RGBA{0x88, 0x99, 0xaa, 255}) {
		t.Fatalf("wall = %v", got)
	}
	if _, ok := IconColors["bad"]; ok {
		t.Fatal("invalid colours should be skipped")
	}
}

func TestIconColor_FallbackIsStable(t *testing.T) {
	a := IconColor("unlisted-state")
	b := IconColor("Unlisted-State")
	if a != b || a.A != 255 {
		t.Fatalf("fallback colours differ: %v %v", a, b)
	}
}
