package maps

import (
	"encoding/json"
	"hash/fnv"
	"image/color"
	"os"
	"strconv"
	"strings"
)

// IconColors maps icon states to the swatch drawn for them.
var IconColors = make(map[string]color.RGBA)

// LoadPalette reads a JSON object of icon_state -> "#rrggbb".
func LoadPalette(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]string
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return err
	}

	for k, v := range raw {
		c, ok := parseHex(v)
		if !ok {
			continue
		}
		IconColors[strings.ToLower(k)] = c
	}
	return nil
}

// IconColor falls back to a stable colour derived from the state name.
func IconColor(state string) color.RGBA {
	if c, ok := IconColors[strings.ToLower(state)]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(state)))
	sum := h.Sum32()
	return color.RGBA{uint8(80 + sum%150), uint8(80 + (sum>>8)%150), uint8(80 + (sum>>16)%150), 255}
}

func parseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true
}
