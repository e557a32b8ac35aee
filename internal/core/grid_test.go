package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"cellgrid/internal/diag"
	"cellgrid/internal/render"

	"github.com/google/go-cmp/cmp"
)

type stubHost struct {
	missing  map[string]bool
	detached bool
	panics   bool
	noisy    bool
	err      error

	notes    []string
	alerts   []string
	inserted map[string][]string
}

func newStubHost(missing ...string) *stubHost {
	h := &stubHost{missing: map[string]bool{}, inserted: map[string][]string{}}
	for _, id := range missing {
		h.missing[id] = true
	}
	return h
}

func (h *stubHost) Notify(message string) {
	if h.noisy {
		panic("console gone")
	}
	h.notes = append(h.notes, message)
}

func (h *stubHost) AlertUser(message string) {
	if h.noisy {
		panic("no modal surface")
	}
	h.alerts = append(h.alerts, message)
}

func (h *stubHost) InsertRenderedOutput(id, text string) error {
	switch {
	case h.panics:
		panic("document vanished")
	case h.err != nil:
		return h.err
	case h.detached:
		return DocumentUnavailable(id, nil)
	case h.missing[id]:
		return ContainerNotFound(id)
	}
	h.inserted[id] = append(h.inserted[id], text)
	return nil
}

func TestNewDimensionsAndLength(t *testing.T) {
	g := New(newStubHost())
	if g.Width() != 64 || g.Height() != 64 {
		t.Fatalf("dims = %dx%d, want 64x64", g.Width(), g.Height())
	}
	if got, want := g.Cells().Len(), int(g.Width()*g.Height()); got != want {
		t.Fatalf("cells len = %d, want %d", got, want)
	}
	if g.ActiveContainer() != "root" {
		t.Fatalf("active container = %q, want root", g.ActiveContainer())
	}
}

func TestSeedPattern(t *testing.T) {
	g := New(newStubHost())
	view := g.Cells()

	samples := map[int]Cell{0: Alive, 1: Dead, 7: Alive, 9: Dead, 14: Alive, 21: Alive, 35: Alive, 4093: Dead, 4095: Alive}
	for i, want := range samples {
		if got := view.Get(i); got != want {
			t.Fatalf("cell %d = %v, want %v", i, got, want)
		}
	}
	for i := 0; i < view.Len(); i++ {
		want := Dead
		if i%2 == 0 || i%7 == 0 {
			want = Alive
		}
		if view.Get(i) != want {
			t.Fatalf("cell %d = %v, want %v", i, view.Get(i), want)
		}
	}
	if got := view.Alive(); got != 2341 {
		t.Fatalf("alive count = %d, want 2341", got)
	}
}

func TestViewAtMatchesIndex(t *testing.T) {
	g := New(newStubHost())
	view := g.Cells()
	for _, pt := range [][2]int{{0, 0}, {7, 0}, {1, 1}, {63, 63}, {5, 10}} {
		x, y := pt[0], pt[1]
		if view.At(x, y) != view.Get(g.Index(x, y)) {
			t.Fatalf("At(%d,%d) disagrees with Index", x, y)
		}
	}
}

func TestViewBytesIsACopy(t *testing.T) {
	g := New(newStubHost())
	raw := g.Cells().Bytes()
	if len(raw) != 64*64 {
		t.Fatalf("raw len = %d", len(raw))
	}
	if raw[0] != 1 || raw[1] != 0 {
		t.Fatalf("raw prefix = %v", raw[:2])
	}
	raw[1] = 1
	if g.Cells().Get(1) != Dead {
		t.Fatal("writing to Bytes() must not alter the grid")
	}
}

func TestRenderRowsAndGlyphs(t *testing.T) {
	g := New(newStubHost())
	out := g.Render()

	if n := strings.Count(out, "\n"); n != int(g.Height()) {
		t.Fatalf("line terminators = %d, want %d", n, g.Height())
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	view := g.Cells()
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != int(g.Width()) {
			t.Fatalf("line %d has %d glyphs, want %d", y, n, g.Width())
		}
		x := 0
		for _, r := range line {
			want := render.DefaultGlyphs.Dead
			if view.At(x, y) == Alive {
				want = render.DefaultGlyphs.Alive
			}
			if r != want {
				t.Fatalf("glyph at (%d,%d) = %q, want %q", x, y, r, want)
			}
			x++
		}
	}
	if !strings.HasPrefix(out, "◼◻◼◻◼◻◼◼◼◻") {
		t.Fatalf("unexpected first row prefix: %q", lines[0][:30])
	}
}

func TestRenderIdempotent(t *testing.T) {
	g := New(newStubHost())
	first := g.Render()
	if second := g.Render(); first != second {
		t.Fatal("render is not deterministic")
	}
	if g.String() != first {
		t.Fatal("String should match Render")
	}
}

func TestSetActiveContainerIsolation(t *testing.T) {
	host := newStubHost()
	g := New(host)
	beforeText := g.Render()
	beforeCells := g.Cells().Bytes()

	g.SetActiveContainer("x")

	if g.ActiveContainer() != "x" {
		t.Fatalf("active container = %q", g.ActiveContainer())
	}
	if g.Render() != beforeText {
		t.Fatal("render changed after container reassignment")
	}
	if diff := cmp.Diff(beforeCells, g.Cells().Bytes()); diff != "" {
		t.Fatalf("cells changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Registering app at id: x!"}, host.notes); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishInsertsRendering(t *testing.T) {
	host := newStubHost()
	g := New(host)
	if err := g.Publish(); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if diff := cmp.Diff([]string{g.Render()}, host.inserted["root"]); diff != "" {
		t.Fatalf("inserted mismatch (-want +got):\n%s", diff)
	}

	if err := g.PublishText("caption"); err != nil {
		t.Fatalf("publish text: %v", err)
	}
	if got := host.inserted["root"]; len(got) != 2 || got[1] != "caption" {
		t.Fatalf("inserted = %v", got)
	}
}

func TestPublishContainerNotFound(t *testing.T) {
	host := newStubHost("missing")
	g := New(host)
	g.SetActiveContainer("missing")
	before := g.Render()

	err := g.Publish()
	if !errors.Is(err, ErrContainerNotFound) {
		t.Fatalf("expected ErrContainerNotFound, got %v", err)
	}
	if errors.Is(err, ErrDocumentUnavailable) {
		t.Fatal("error must carry exactly one kind")
	}
	var adapterErr *AdapterError
	if !errors.As(err, &adapterErr) || adapterErr.ContainerID != "missing" {
		t.Fatalf("expected AdapterError for missing, got %#v", err)
	}
	if g.ActiveContainer() != "missing" || g.Render() != before {
		t.Fatal("failed publish must not modify grid state")
	}
	if len(host.inserted) != 0 {
		t.Fatalf("nothing should be inserted, got %v", host.inserted)
	}
}

func TestPublishDocumentUnavailable(t *testing.T) {
	host := newStubHost()
	host.detached = true
	g := New(host)
	if err := g.Publish(); !errors.Is(err, ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
}

func TestPublishClassifiesForeignErrors(t *testing.T) {
	host := newStubHost()
	host.err = fmt.Errorf("socket closed")
	g := New(host)
	err := g.Publish()
	if !errors.Is(err, ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "socket closed") {
		t.Fatalf("cause missing from %q", err)
	}
}

func TestPublishRecoversHostPanic(t *testing.T) {
	host := newStubHost()
	host.panics = true
	g := New(host)
	if err := g.Publish(); !errors.Is(err, ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
	if g.ActiveContainer() != "root" {
		t.Fatal("panic must not change the active container")
	}
}

func TestAlertGreets(t *testing.T) {
	host := newStubHost()
	New(host).Alert("world")
	if diff := cmp.Diff([]string{"Hello, world!"}, host.alerts); diff != "" {
		t.Fatalf("alerts mismatch (-want +got):\n%s", diff)
	}
}

func TestNilHostPublishFails(t *testing.T) {
	g := New(nil)
	if err := g.Publish(); !errors.Is(err, ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
}

func TestParametersSnapshot(t *testing.T) {
	g := New(newStubHost())
	g.SetActiveContainer("panel")
	snap := g.Parameters()
	want := map[string]string{"width": "64", "height": "64", "alive": "2341", "container": "panel"}
	for key, value := range want {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != value {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, value)
		}
	}
	summaries := make([]string, len(snap.Groups))
	for i, grp := range snap.Groups {
		summaries[i] = grp.Summary
	}
	if diff := cmp.Diff([]string{"64x64 row-major", `publishes into "panel"`}, summaries); diff != "" {
		t.Fatalf("summaries mismatch (-want +got):\n%s", diff)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("unknown key should not resolve")
	}
}

func TestNewInstallsDiagnostics(t *testing.T) {
	New(newStubHost())
	New(newStubHost())
	if !diag.Installed() {
		t.Fatal("constructing a grid should install the diagnostic sink")
	}
}

func TestFireAndForgetCallsSurviveHostPanics(t *testing.T) {
	host := newStubHost()
	host.noisy = true
	g := New(host)
	before := g.Render()

	g.SetActiveContainer("side")
	g.Alert("anyone")

	if g.ActiveContainer() != "side" {
		t.Fatalf("active container = %q, want side", g.ActiveContainer())
	}
	if g.Render() != before {
		t.Fatal("render changed after host panics")
	}
	if len(host.notes) != 0 || len(host.alerts) != 0 {
		t.Fatalf("panicking host recorded %v %v", host.notes, host.alerts)
	}
}
