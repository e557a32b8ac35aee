package termhost

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"cellgrid/internal/core"

	"github.com/mattn/go-runewidth"
)

func TestInsertAndFlush(t *testing.T) {
	var out bytes.Buffer
	th := New(&out, nil, WithWidth(40))
	if err := th.InsertRenderedOutput("root", "abc\ndef\n"); err != nil {
		t.Fatal(err)
	}
	if err := th.Flush(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"root", "abc", "def"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestInsertErrors(t *testing.T) {
	th := New(&bytes.Buffer{}, nil)
	if err := th.InsertRenderedOutput("missing", "x"); !errors.Is(err, core.ErrContainerNotFound) {
		t.Fatalf("expected ErrContainerNotFound, got %v", err)
	}
	headless := New(nil, nil)
	if err := headless.InsertRenderedOutput("root", "x"); !errors.Is(err, core.ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
	if err := headless.Flush(); !errors.Is(err, core.ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable on flush, got %v", err)
	}
}

func TestLinesAreTruncatedToWidth(t *testing.T) {
	th := New(&bytes.Buffer{}, nil, WithWidth(20))
	g := core.New(th)
	if err := g.Publish(); err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(th.View(), "\n"), "\n") {
		if w := runewidth.StringWidth(line); w > 20 {
			t.Fatalf("line width %d exceeds 20: %q", w, line)
		}
	}
}

func TestWithPanelsDeclaresContainers(t *testing.T) {
	th := New(&bytes.Buffer{}, nil, WithPanels("side", "root", "side"))
	if len(th.panels) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(th.panels))
	}
	if err := th.InsertRenderedOutput("side", "x"); err != nil {
		t.Fatal(err)
	}
}

func TestModalAlertPrompts(t *testing.T) {
	var out bytes.Buffer
	var prompted []string
	th := New(&out, nil, WithModalAlerts(func(msg string) error {
		prompted = append(prompted, msg)
		return errors.New("no tty")
	}))
	core.New(th).Alert("you")

	if len(prompted) != 1 || prompted[0] != "Hello, you!" {
		t.Fatalf("prompted = %v", prompted)
	}
	if !strings.Contains(out.String(), "Hello, you!") {
		t.Fatalf("alert banner missing: %q", out.String())
	}
}

func TestStatusLineFromParameters(t *testing.T) {
	th := New(&bytes.Buffer{}, nil, WithWidth(120))
	g := core.New(th)
	th.ShowParameters(g.Parameters())
	view := th.View()
	for _, want := range []string{"(no output)", "Width=64", "Container=root"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
