//go:build ebiten

// Package ebitenhost shows each container as a pixel panel in an ebiten
// window. Inserted text is read back into cells using the grid glyphs.
package ebitenhost

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"cellgrid/internal/core"
	"cellgrid/internal/host"
	"cellgrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	labelHeight  = 16
	bannerHeight = 20
	panelGap     = 8
	minWidth     = 160
)

type panel struct {
	id    string
	texts []string
	dirty bool
	stale bool

	cells []uint8
	w, h  int
	img   *ebiten.Image
	buf   []byte
}

// refresh re-reads the newest text into cells.
func (p *panel) refresh(glyphs render.Glyphs) {
	if !p.dirty || len(p.texts) == 0 {
		return
	}
	p.dirty = false
	p.stale = true
	p.cells, p.w, p.h = render.ParseText(p.texts[len(p.texts)-1], glyphs)
}

// upload copies cells into the panel image, reporting whether there is
// anything to draw.
func (p *panel) upload(on, off color.Color) bool {
	if p.w == 0 || p.h == 0 {
		return false
	}
	if !p.stale {
		return p.img != nil
	}
	p.stale = false
	if p.img == nil || p.img.Bounds().Dx() != p.w || p.img.Bounds().Dy() != p.h {
		p.img = ebiten.NewImage(p.w, p.h)
		p.buf = make([]byte, 4*p.w*p.h)
	}
	render.FillBinaryRGBA(p.buf, p.cells, on, off)
	p.img.WritePixels(p.buf)
	return true
}

// Window adapts grid output to the ebiten.Game interface.
type Window struct {
	log    *log.Logger
	scale  int
	glyphs render.Glyphs
	title  string

	onColor  color.Color
	offColor color.Color

	panels []*panel
	alert  string
	banner *ebiten.Image
}

// New constructs a Window with a panel per id.
func New(scale int, logger *log.Logger, ids ...string) *Window {
	if scale <= 0 {
		scale = 1
	}
	w := &Window{
		log:      logger,
		scale:    scale,
		glyphs:   render.DefaultGlyphs,
		title:    "cellgrid",
		onColor:  color.White,
		offColor: color.Black,
	}
	for _, id := range ids {
		if w.find(id) == nil {
			w.panels = append(w.panels, &panel{id: id})
		}
	}
	return w
}

func (w *Window) find(id string) *panel {
	for _, p := range w.panels {
		if p.id == id {
			return p
		}
	}
	return nil
}

// Notify implements core.Notifier.
func (w *Window) Notify(message string) {
	if w.log != nil {
		w.log.Printf("notify: %s", message)
	}
}

// AlertUser implements core.Alerter. The banner stays until Enter is pressed.
func (w *Window) AlertUser(message string) {
	w.alert = message
	if w.log != nil {
		w.log.Printf("alert: %s", message)
	}
}

// InsertRenderedOutput implements core.Inserter.
func (w *Window) InsertRenderedOutput(id, text string) error {
	p := w.find(id)
	if p == nil {
		return core.ContainerNotFound(id)
	}
	p.texts = append(p.texts, text)
	p.dirty = true
	return nil
}

// ShowParameters implements core.ParameterDisplay.
func (w *Window) ShowParameters(snapshot core.ParameterSnapshot) {
	width, _ := snapshot.Lookup("width")
	height, _ := snapshot.Lookup("height")
	container, _ := snapshot.Lookup("container")
	w.title = fmt.Sprintf("cellgrid — %sx%s @ %s", width.Value, height.Value, container.Value)
}

// Update handles per-frame input.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.alert = ""
	}
	for _, p := range w.panels {
		p.refresh(w.glyphs)
	}
	return nil
}

// Draw renders every panel left to right, then the alert banner.
func (w *Window) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	x := 0
	for _, p := range w.panels {
		if !p.upload(w.onColor, w.offColor) {
			continue
		}
		text.Draw(screen, p.id, face, x+2, labelHeight-4, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w.scale), float64(w.scale))
		op.GeoM.Translate(float64(x), labelHeight)
		screen.DrawImage(p.img, op)
		x += p.w*w.scale + panelGap
	}
	if w.alert == "" {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w.banner == nil || w.banner.Bounds().Dx() != sw {
		w.banner = ebiten.NewImage(sw, bannerHeight)
	}
	w.banner.Fill(color.RGBA{R: 160, G: 20, B: 60, A: 230})
	text.Draw(w.banner, w.alert+"  [enter]", face, 4, bannerHeight-6, color.White)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(sh-bannerHeight))
	screen.DrawImage(w.banner, op)
}

// Layout returns the logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := 0, 0
	for _, p := range w.panels {
		p.refresh(w.glyphs)
		if p.w == 0 || p.h == 0 {
			continue
		}
		width += p.w*w.scale + panelGap
		if h := p.h * w.scale; h > height {
			height = h
		}
	}
	if width < minWidth {
		width = minWidth
	}
	return width, height + labelHeight + bannerHeight
}

// Finish opens the window and blocks until it is closed.
func (w *Window) Finish() error {
	width, height := w.Layout(0, 0)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(width, height)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenhost: run: %w", err)
	}
	return nil
}

func init() {
	host.Register("gui", func(env host.Env) (core.Host, error) {
		return New(env.Config.GUI.Scale, env.Log, core.DefaultContainerID, env.Config.Container), nil
	})
}
