// Package termhost publishes into named panels printed on a terminal.
package termhost

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cellgrid/internal/core"
	"cellgrid/internal/host"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	// chrome is the columns taken by a panel's border and padding.
	chrome       = 4
	defaultWidth = 80
)

type panel struct {
	id       string
	children []string
}

// Terminal keeps panels in declaration order and prints them on Flush.
type Terminal struct {
	out    io.Writer
	log    *log.Logger
	styles Styles
	width  int
	modal  bool
	prompt func(message string) error

	panels []*panel
	status string
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithWidth fixes the terminal width used for truncation.
func WithWidth(w int) Option { return func(t *Terminal) { t.width = w } }

// WithPanels declares additional panels.
func WithPanels(ids ...string) Option {
	return func(t *Terminal) {
		for _, id := range ids {
			t.AddPanel(id)
		}
	}
}

// WithModalAlerts makes AlertUser block on prompt until acknowledged.
func WithModalAlerts(prompt func(message string) error) Option {
	return func(t *Terminal) {
		t.modal = prompt != nil
		t.prompt = prompt
	}
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option { return func(t *Terminal) { t.styles = s } }

// New returns a terminal host writing to out with a "root" panel declared.
func New(out io.Writer, logger *log.Logger, opts ...Option) *Terminal {
	t := &Terminal{out: out, log: logger, styles: DefaultStyles(), width: defaultWidth}
	t.AddPanel(core.DefaultContainerID)
	for _, opt := range opts {
		opt(t)
	}
	if t.width <= chrome {
		t.width = defaultWidth
	}
	return t
}

// AddPanel declares a panel. Existing ids are left untouched.
func (t *Terminal) AddPanel(id string) {
	if t.find(id) != nil {
		return
	}
	t.panels = append(t.panels, &panel{id: id})
}

func (t *Terminal) find(id string) *panel {
	for _, p := range t.panels {
		if p.id == id {
			return p
		}
	}
	return nil
}

// Notify implements core.Notifier.
func (t *Terminal) Notify(message string) {
	if t.log != nil {
		t.log.Printf("notify: %s", message)
	}
}

// AlertUser implements core.Alerter. Prompt failures are logged and
// otherwise ignored.
func (t *Terminal) AlertUser(message string) {
	if t.out != nil {
		fmt.Fprintln(t.out, t.styles.Alert.Render(message))
	}
	if !t.modal {
		return
	}
	if err := t.prompt(message); err != nil && t.log != nil {
		t.log.Printf("alert: acknowledgement failed: %v", err)
	}
}

// InsertRenderedOutput implements core.Inserter.
func (t *Terminal) InsertRenderedOutput(id, text string) error {
	if t.out == nil {
		return core.DocumentUnavailable(id, nil)
	}
	p := t.find(id)
	if p == nil {
		return core.ContainerNotFound(id)
	}
	p.children = append(p.children, text)
	return nil
}

// ShowParameters implements core.ParameterDisplay.
func (t *Terminal) ShowParameters(snapshot core.ParameterSnapshot) {
	var parts []string
	for _, g := range snapshot.Groups {
		for _, p := range g.Params {
			parts = append(parts, fmt.Sprintf("%s=%s", p.Label, p.Value))
		}
	}
	t.status = strings.Join(parts, "  ")
}

// View renders every non-empty panel followed by the status line.
func (t *Terminal) View() string {
	inner := t.width - chrome
	var blocks []string
	for _, p := range t.panels {
		if len(p.children) == 0 {
			continue
		}
		lines := []string{t.styles.PanelHeader.Render(runewidth.Truncate(p.id, inner, "…"))}
		for _, child := range p.children {
			for _, line := range strings.Split(strings.TrimSuffix(child, "\n"), "\n") {
				lines = append(lines, runewidth.Truncate(line, inner, "…"))
			}
		}
		blocks = append(blocks, t.styles.Panel.Render(strings.Join(lines, "\n")))
	}
	if len(blocks) == 0 {
		blocks = append(blocks, t.styles.Muted.Render("(no output)"))
	}
	if t.status != "" {
		blocks = append(blocks, t.styles.Status.Render(runewidth.Truncate(t.status, t.width, "…")))
	}
	return strings.Join(blocks, "\n") + "\n"
}

// Flush prints the current view.
func (t *Terminal) Flush() error {
	if t.out == nil {
		return fmt.Errorf("termhost: flush: %w", core.ErrDocumentUnavailable)
	}
	_, err := io.WriteString(t.out, t.View())
	return err
}

// Finish implements host.Finisher.
func (t *Terminal) Finish() error { return t.Flush() }

func surveyAcknowledge(message string) error {
	ok := true
	return survey.AskOne(&survey.Confirm{Message: "Dismiss alert?", Default: true, Help: message}, &ok)
}

// detectWidth returns the width of f when it is a terminal.
func detectWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func init() {
	host.Register("term", func(env host.Env) (core.Host, error) {
		out := env.Stdout
		if out == nil {
			out = os.Stdout
		}
		width := env.Config.Term.Width
		if width == 0 {
			if f, ok := out.(*os.File); ok {
				width = detectWidth(f)
			}
		}
		opts := []Option{WithWidth(width), WithPanels(env.Config.Container)}
		if env.Config.Term.Modal && term.IsTerminal(int(os.Stdin.Fd())) {
			opts = append(opts, WithModalAlerts(surveyAcknowledge))
		}
		return New(out, env.Log, opts...), nil
	})
}
