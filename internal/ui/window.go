package ui

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/devin-hart/nox-verbs/internal/contextmenu"
	"github.com/devin-hart/nox-verbs/internal/events"
	"github.com/devin-hart/nox-verbs/internal/verbs"
	"github.com/devin-hart/nox-verbs/internal/world"
)

const maxMessages = 6

type Window struct {
	World   *world.World
	Verbs   *verbs.Registry
	Events  <-chan events.Event
	Popup   *contextmenu.Popup
	View    *ContextView
	Overlay *ModalRoot

	face font.Face

	TileSize   float64
	Zoom       float64
	IsDragging bool
	DragStartX int
	DragStartY int
	OffsetX    float64
	OffsetY    float64
	ShowGrid   bool

	Messages   []string
	LastTarget contextmenu.ObjectReference

	commandMode bool
	command     []rune

	Width, Height int
}

func NewWindow(w *world.World, feed <-chan events.Event, tileSize int) *Window {
	win := &Window{
		World:    w,
		Events:   feed,
		Overlay:  &ModalRoot{},
		face:     defaultFace,
		TileSize: float64(tileSize),
		Zoom:     1.0,
		ShowGrid: true,
		Width:    800,
		Height:   600,
	}
	win.Popup = contextmenu.NewPopup(w.Builder(), win.Overlay, win.openVerbMenu)
	win.View = NewContextView(win.Popup, win.face)
	return win
}

// openVerbMenu is the submenu factory handed to the context popup.
func (w *Window) openVerbMenu(target contextmenu.ObjectReference, sight contextmenu.SightLevel) contextmenu.Submenu {
	w.LastTarget = target
	if w.Verbs == nil {
		return NewVerbPopup(&verbs.Menu{Target: target}, w.face)
	}
	p := NewVerbPopup(verbs.NewMenu(w.Verbs, target, sight), w.face)
	p.OnError = func(err error) { w.Say(err.Error()) }
	return p
}

// Say adds a line to the message log.
func (w *Window) Say(msg string) {
	fmt.Printf("💬 %s\n", msg)
	w.Messages = append(w.Messages, msg)
	if len(w.Messages) > maxMessages {
		w.Messages = w.Messages[len(w.Messages)-maxMessages:]
	}
}

func (w *Window) Update() error {
	w.drainEvents()

	if w.commandMode {
		w.updateCommand()
		return nil
	}

	// --- TOGGLES ---
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.Popup.Close()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.commandMode = true
		w.command = w.command[:0]
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		w.ShowGrid = !w.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		w.CenterOnMapBounds()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.CenterOnPlayer()
	}

	// ZOOM
	_, dy := ebiten.Wheel()
	if dy != 0 {
		if dy > 0 {
			w.Zoom *= 1.1
		} else {
			w.Zoom /= 1.1
		}
	}

	// PAN
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		if !w.IsDragging {
			w.IsDragging = true
			w.DragStartX, w.DragStartY = cx, cy
		} else {
			w.OffsetX += float64(cx - w.DragStartX)
			w.OffsetY += float64(cy - w.DragStartY)
			w.DragStartX, w.DragStartY = cx, cy
		}
	} else {
		w.IsDragging = false
	}

	// MENU
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	w.View.Relayout(float64(w.Width), float64(w.Height))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		w.OpenContextMenu(fx, fy)
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.LeftClick(fx, fy)
	}

	w.View.SetHover(fx, fy)
	w.Overlay.SetHover(fx, fy)
	return nil
}

// OpenContextMenu picks at a screen point and opens the popup there.
func (w *Window) OpenContextMenu(sx, sy float64) {
	cx, cy := float64(w.Width)/2, float64(w.Height)/2
	wx, wy := w.screenToMap(sx, sy, cx, cy)
	refs, tile := w.World.Pick(wx, wy)

	w.Popup.Close()
	w.Popup.RepopulateEntities(refs, tile)
	if w.Popup.EntityCount() == 0 {
		return
	}
	w.Popup.Open(contextmenu.Vec2{X: sx, Y: sy})
	w.View.Relayout(float64(w.Width), float64(w.Height))
}

// LeftClick routes a click to the verb popup, then the context popup,
// and closes everything when it lands elsewhere.
func (w *Window) LeftClick(sx, sy float64) {
	if w.Overlay.Click(sx, sy) {
		return
	}
	if i, ok := w.View.HitTest(sx, sy); ok {
		w.View.Activate(i)
		return
	}
	w.Popup.Close()
}

func (w *Window) drainEvents() {
	for w.Events != nil {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				w.Events = nil
				return
			}
			if err := w.World.Apply(ev); err != nil {
				fmt.Printf("⚠️ Feed: %v\n", err)
				continue
			}
			fmt.Printf("🌍 %s\n", events.Describe(ev))
		default:
			return
		}
	}
}

func (w *Window) updateCommand() {
	w.command = ebiten.AppendInputChars(w.command)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(w.command) > 0 {
		w.command = w.command[:len(w.command)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.commandMode = false
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.commandMode = false
		w.RunCommand(string(w.command))
	}
}

// RunCommand resolves typed text to a verb and runs it on the last target
// when that target offers it.
func (w *Window) RunCommand(input string) {
	input = strings.TrimSpace(input)
	if input == "" || w.Verbs == nil {
		return
	}
	v, ok := w.Verbs.Resolve(input)
	if !ok {
		w.Say(fmt.Sprintf("Unknown verb %q.", input))
		return
	}
	if w.LastTarget == nil {
		w.Say(fmt.Sprintf("%s what?", v.Name))
		return
	}
	err := w.Verbs.ExecuteFor(input, w.LastTarget, w.Popup.SeeInvisible())
	switch {
	case errors.Is(err, verbs.ErrNotOffered):
		w.Say(fmt.Sprintf("You can't %s that.", strings.ToLower(v.Name)))
	case err != nil:
		w.Say(err.Error())
	}
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 12, 16, 255})

	cx, cy := float64(w.Width)/2, float64(w.Height)/2
	ts := w.TileSize * w.Zoom
	sight := w.Popup.SeeInvisible()

	// 1. Turfs
	for _, t := range w.World.Turfs() {
		x, y := w.mapToScreen(float64(t.X), float64(t.Y), cx, cy)
		drawIcon(screen, t.Icon(), x, y, ts)
	}
	if w.ShowGrid {
		for _, t := range w.World.Turfs() {
			x, y := w.mapToScreen(float64(t.X), float64(t.Y), cx, cy)
			vector.StrokeRect(screen, float32(x), float32(y), float32(ts), float32(ts), 1, color.RGBA{0, 0, 0, 80}, false)
		}
	}

	// 2. Entities placed on the map
	for _, id := range w.World.Sprites.All() {
		xf, ok := w.World.Transforms.TryGet(id)
		if !ok || !w.World.IsGrid(xf.Parent) {
			continue
		}
		s, _ := w.World.Sprites.TryGet(id)
		if !s.IsVisible(&xf, sight) {
			continue
		}
		x, y := w.mapToScreen(xf.X+0.5, xf.Y+0.5, cx, cy)
		a := s.Appearance()
		clr := color.NRGBA{a.Color.R, a.Color.G, a.Color.B, a.Alpha}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(ts/4), clr, true)
	}

	// 3. Player marker
	if body, ok := w.World.Body(); ok {
		if px, py, ok := w.World.Position(body); ok {
			x, y := w.mapToScreen(px+0.5, py+0.5, cx, cy)
			vector.StrokeCircle(screen, float32(x), float32(y), float32(ts/3), 2, color.RGBA{255, 220, 0, 255}, true)
		}
	}

	// 4. Menus
	w.View.Draw(screen)
	w.Overlay.Draw(screen)

	// UI
	gridStatus := "ON"
	if !w.ShowGrid {
		gridStatus = "OFF"
	}
	status := fmt.Sprintf("See invisible: %d | [G] Grid:%s\n[RMB] Menu [Enter] Verb [Space] Center", sight, gridStatus)
	ebitenutil.DebugPrint(screen, status)

	for i, m := range w.Messages {
		ebitenutil.DebugPrintAt(screen, m, 8, w.Height-20-(len(w.Messages)-i)*14)
	}
	if w.commandMode {
		ebitenutil.DebugPrintAt(screen, "> "+string(w.command)+"_", 8, w.Height-18)
	}
}

func (w *Window) mapToScreen(wx, wy, cx, cy float64) (float64, float64) {
	screenX := (wx * w.TileSize * w.Zoom) + w.OffsetX + cx
	screenY := (wy * w.TileSize * w.Zoom) + w.OffsetY + cy
	return screenX, screenY
}

func (w *Window) screenToMap(sx, sy, cx, cy float64) (float64, float64) {
	wx := (sx - cx - w.OffsetX) / (w.TileSize * w.Zoom)
	wy := (sy - cy - w.OffsetY) / (w.TileSize * w.Zoom)
	return wx, wy
}

func (w *Window) CenterOnPlayer() {
	body, ok := w.World.Body()
	if !ok {
		return
	}
	px, py, ok := w.World.Position(body)
	if !ok {
		return
	}
	w.centerOn(px+0.5, py+0.5)
}

func (w *Window) CenterOnMapBounds() {
	minX, minY, maxX, maxY := w.World.Bounds()
	w.centerOn(float64(minX+maxX+1)/2, float64(minY+maxY+1)/2)
}

func (w *Window) centerOn(x, y float64) {
	w.OffsetX = -math.Round(x * w.TileSize * w.Zoom)
	w.OffsetY = -math.Round(y * w.TileSize * w.Zoom)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.Width = outsideWidth
	w.Height = outsideHeight
	return w.Width, w.Height
}
