package maps

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
	"github.com/devin-hart/nox-verbs/internal/world"
)

// LoadWorld reads <name>.txt and its layer files <name>_1..3.txt from
// mapDir. File names are matched case-insensitively.
func LoadWorld(mapDir, name string) (*world.World, error) {
	globPattern := filepath.Join(mapDir, "*")
	allFiles, err := filepath.Glob(globPattern)
	if err != nil {
		return nil, fmt.Errorf("could not list map directory: %w", err)
	}

	fileMap := make(map[string]string)
	for _, path := range allFiles {
		fileMap[strings.ToLower(filepath.Base(path))] = path
	}

	targets := []string{
		strings.ToLower(fmt.Sprintf("%s.txt", name)),
		strings.ToLower(fmt.Sprintf("%s_1.txt", name)),
		strings.ToLower(fmt.Sprintf("%s_2.txt", name)),
		strings.ToLower(fmt.Sprintf("%s_3.txt", name)),
	}

	l := newLoader()
	found := false
	for _, target := range targets {
		realPath, exists := fileMap[target]
		if !exists {
			continue
		}
		fmt.Printf("📄 Parsing: %s ... ", filepath.Base(realPath))
		n, err := l.parseFile(realPath)
		if err != nil {
			fmt.Printf("failed\n")
			return nil, err
		}
		fmt.Printf("OK (%d items)\n", n)
		found = true
	}

	if !found {
		return nil, fmt.Errorf("no map files found for world %q in %s", name, mapDir)
	}
	return l.finish()
}

// LoadWorldFile reads a single world file.
func LoadWorldFile(path string) (*world.World, error) {
	l := newLoader()
	if _, err := l.parseFile(path); err != nil {
		return nil, err
	}
	return l.finish()
}

type loader struct {
	w *world.World

	// Entities may name a parent defined later in the file or in a later layer.
	pending []world.EntitySpec
	sights  map[contextmenu.EntityID]contextmenu.SightLevel
	verbs   map[contextmenu.EntityID][]string
	descs   map[contextmenu.EntityID]string
	possess *contextmenu.EntityID
}

func newLoader() *loader {
	return &loader{
		w:      world.New(),
		sights: make(map[contextmenu.EntityID]contextmenu.SightLevel),
		verbs:  make(map[contextmenu.EntityID][]string),
		descs:  make(map[contextmenu.EntityID]string),
	}
}

func (l *loader) parseFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	count := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		// 1. Sanitize
		line := strings.ReplaceAll(scanner.Text(), "\ufeff", "")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// 2. Command letter, then comma separated fields
		cmd := unicode.ToUpper(rune(line[0]))
		content := strings.TrimLeft(line[1:], " ,")
		parts := strings.Split(content, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		if err := l.command(cmd, parts); err != nil {
			return count, fmt.Errorf("%s:%d: %w", filepath.Base(path), lineNo, err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, nil
}

func (l *loader) command(cmd rune, parts []string) error {
	switch cmd {
	case 'G':
		id, err := parseEntity(parts[0])
		if err != nil {
			return err
		}
		l.w.AddGrid(id)

	case 'T':
		// T id, x, y, name, icon_state
		if len(parts) < 5 {
			return fmt.Errorf("turf needs 5 fields, got %d", len(parts))
		}
		id, err := strconv.ParseInt(parts[0], 10, 32)
		if err != nil {
			return fmt.Errorf("turf id %q: %w", parts[0], err)
		}
		l.w.AddTurf(contextmenu.TurfID(id), parseInt(parts[1]), parseInt(parts[2]), &contextmenu.Appearance{
			Name:      parts[3],
			IconState: parts[4],
			Alpha:     255,
			Color:     IconColor(parts[4]),
		})

	case 'E':
		// E id, parent, x, y, name, icon_state, mouse_opacity, invisibility, alpha[, layer]
		if len(parts) < 9 {
			return fmt.Errorf("entity needs at least 9 fields, got %d", len(parts))
		}
		id, err := parseEntity(parts[0])
		if err != nil {
			return err
		}
		parent, err := parseEntity(parts[1])
		if err != nil {
			return err
		}
		opacity, err := parseMouseOpacity(parts[6])
		if err != nil {
			return err
		}
		spec := world.EntitySpec{
			ID:     id,
			Parent: parent,
			X:      parseFloat(parts[2]),
			Y:      parseFloat(parts[3]),
			Appearance: &contextmenu.Appearance{
				Name:         parts[4],
				IconState:    parts[5],
				MouseOpacity: opacity,
				Invisibility: parseSight(parts[7]),
				Alpha:        uint8(clamp(parseInt(parts[8]), 0, 255)),
				Color:        IconColor(parts[5]),
			},
		}
		if len(parts) >= 10 {
			spec.Layer = parseInt(parts[9])
		}
		l.pending = append(l.pending, spec)

	case 'S':
		if len(parts) < 2 {
			return fmt.Errorf("sight needs 2 fields")
		}
		id, err := parseEntity(parts[0])
		if err != nil {
			return err
		}
		l.sights[id] = parseSight(parts[1])

	case 'P':
		id, err := parseEntity(parts[0])
		if err != nil {
			return err
		}
		l.possess = &id

	case 'V':
		id, err := parseEntity(parts[0])
		if err != nil {
			return err
		}
		for _, v := range parts[1:] {
			if v != "" {
				l.verbs[id] = append(l.verbs[id], v)
			}
		}

	case 'D':
		id, err := parseEntity(parts[0])
		if err != nil {
			return err
		}
		l.descs[id] = strings.Join(parts[1:], ", ")

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (l *loader) finish() (*world.World, error) {
	for _, spec := range l.pending {
		if err := l.w.AddEntity(spec); err != nil {
			return nil, err
		}
	}
	for _, spec := range l.pending {
		if !l.w.IsGrid(spec.Parent) && !l.w.Exists(spec.Parent) {
			return nil, fmt.Errorf("entity %d: unknown parent %d", spec.ID, spec.Parent)
		}
	}
	for id, level := range l.sights {
		if !l.w.Exists(id) {
			return nil, fmt.Errorf("sight for unknown entity %d", id)
		}
		l.w.SetSight(id, level)
	}
	for id, names := range l.verbs {
		l.w.SetVerbs(id, names)
	}
	for id, desc := range l.descs {
		l.w.SetDescription(id, desc)
	}
	if l.possess != nil {
		if !l.w.Exists(*l.possess) {
			return nil, fmt.Errorf("possess unknown entity %d", *l.possess)
		}
		l.w.Possess(*l.possess)
	}
	return l.w, nil
}

func parseMouseOpacity(s string) (contextmenu.MouseOpacity, error) {
	switch strings.ToLower(s) {
	case "", "pixel", "1":
		return contextmenu.MouseOpacityPixel, nil
	case "transparent", "0":
		return contextmenu.MouseOpacityTransparent, nil
	case "opaque", "2":
		return contextmenu.MouseOpacityOpaque, nil
	}
	return 0, fmt.Errorf("unknown mouse opacity %q", s)
}

func parseEntity(s string) (contextmenu.EntityID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("entity id %q: %w", s, err)
	}
	return contextmenu.EntityID(v), nil
}

func parseSight(s string) contextmenu.SightLevel {
	return contextmenu.SightLevel(clamp(parseInt(s), -128, 127))
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt(s string) int {
	i, _ := strconv.Atoi(strings.TrimSpace(s))
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
