package core

import (
	"fmt"

	"cellgrid/internal/diag"
	"cellgrid/internal/render"
)

const (
	// DefaultWidth is the fixed grid width.
	DefaultWidth uint32 = 64
	// DefaultHeight is the fixed grid height.
	DefaultHeight uint32 = 64
	// DefaultContainerID names the container output targets until reassigned.
	DefaultContainerID = "root"
)

// Grid stores a fixed-size 2D grid of cells in row-major order together with
// the id of the host container that published output targets.
//
// A Grid is not safe for concurrent use; hosts that call it from several
// goroutines must serialize access themselves.
type Grid struct {
	width, height uint32
	cells         []Cell
	container     string
	host          Host
}

// New builds the standard 64x64 grid bound to host and installs host as the
// process diagnostic sink if none is installed yet.
func New(host Host) *Grid {
	if host == nil {
		host = nopHost{}
	}
	diag.Install(host)
	return newGrid(DefaultWidth, DefaultHeight, host)
}

func newGrid(w, h uint32, host Host) *Grid {
	cells := make([]Cell, int(w)*int(h))
	for i := range cells {
		cells[i] = seedCell(i)
	}
	return &Grid{width: w, height: h, cells: cells, container: DefaultContainerID, host: host}
}

// seedCell is the fixed striped initialization pattern.
func seedCell(i int) Cell {
	if i%2 == 0 || i%7 == 0 {
		return Alive
	}
	return Dead
}

// Width returns the number of columns.
func (g *Grid) Width() uint32 { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() uint32 { return g.height }

// Size returns both dimensions.
func (g *Grid) Size() Size { return Size{W: g.width, H: g.height} }

// Cells returns a read-only view over the cell buffer. The view shares
// storage with the grid and must not be used after the grid is discarded.
func (g *Grid) Cells() View { return View{cells: g.cells, width: int(g.width)} }

// Index returns the linear index for column x, row y.
func (g *Grid) Index(x, y int) int { return y*int(g.width) + x }

// ActiveContainer returns the id publish calls target.
func (g *Grid) ActiveContainer() string { return g.container }

// SetActiveContainer retargets later publish calls at id. The id is not
// checked against the host document until publish time.
func (g *Grid) SetActiveContainer(id string) {
	g.container = id
	msg := fmt.Sprintf("Registering app at id: %s!", id)
	quietly(func() { g.host.Notify(msg) })
}

// Render returns the text form of the grid using the default glyphs.
func (g *Grid) Render() string { return g.RenderWith(render.DefaultGlyphs) }

// RenderWith returns the text form of the grid using glyphs.
func (g *Grid) RenderWith(glyphs render.Glyphs) string {
	return render.Text(g.cells, int(g.width), glyphs)
}

// String implements fmt.Stringer.
func (g *Grid) String() string { return g.Render() }

// Alert greets text through the host's user-alert capability.
func (g *Grid) Alert(text string) {
	msg := fmt.Sprintf("Hello, %s!", text)
	quietly(func() { g.host.AlertUser(msg) })
}

// quietly runs a fire-and-forget host call. A panic is reported through
// diag and dropped.
func quietly(call func()) {
	defer diag.Recover(nil, nil)
	call()
}

// Publish inserts the grid's rendering into the active container.
func (g *Grid) Publish() error { return g.PublishText(g.Render()) }

// PublishText inserts text into the active container. Host failures are
// returned unchanged when they carry ErrContainerNotFound or
// ErrDocumentUnavailable; any other host error or panic is reported as
// ErrDocumentUnavailable. Grid state is never modified.
func (g *Grid) PublishText(text string) (err error) {
	id := g.container
	defer diag.Recover(&err, func(v any) error {
		return DocumentUnavailable(id, fmt.Errorf("host panic: %v", v))
	})
	if err := g.host.InsertRenderedOutput(id, text); err != nil {
		if IsAdapterError(err) {
			return err
		}
		return DocumentUnavailable(id, err)
	}
	return nil
}

// nopHost backs grids built without a host.
type nopHost struct{}

func (nopHost) Notify(string)    {}
func (nopHost) AlertUser(string) {}
func (nopHost) InsertRenderedOutput(id, _ string) error {
	return DocumentUnavailable(id, nil)
}
