// Package htmlhost publishes into an HTML page. Containers are elements
// located by their id attribute; each insert appends a <p> whose inner HTML
// is the sanitized text.
package htmlhost

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"cellgrid/internal/core"
	"cellgrid/internal/host"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlankPage is used when no input page is configured.
const BlankPage = `<!DOCTYPE html><html><head><meta charset="utf-8"><title>cellgrid</title></head><body><div id="root"></div></body></html>`

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Document is a parsed page plus the console and alert output it received.
type Document struct {
	root   *html.Node
	log    *log.Logger
	Alerts []string
}

// Load parses a page from r.
func Load(r io.Reader, logger *log.Logger) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmlhost: parse: %w", err)
	}
	return &Document{root: root, log: logger}, nil
}

// New returns a document holding BlankPage.
func New(logger *log.Logger) *Document {
	doc, err := Load(strings.NewReader(BlankPage), logger)
	if err != nil {
		panic(err)
	}
	return doc
}

// Unavailable returns a document with no page behind it; every insert fails
// with core.ErrDocumentUnavailable.
func Unavailable(logger *log.Logger) *Document {
	return &Document{log: logger}
}

// ElementByID returns the first element whose id attribute equals id.
func (d *Document) ElementByID(id string) *html.Node {
	if d.root == nil {
		return nil
	}
	return findByID(d.root, id)
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Notify implements core.Notifier by writing to the console log.
func (d *Document) Notify(message string) {
	if d.log != nil {
		d.log.Printf("console: %s", message)
	}
}

// AlertUser implements core.Alerter.
func (d *Document) AlertUser(message string) {
	d.Alerts = append(d.Alerts, message)
	if d.log != nil {
		d.log.Printf("alert: %s", message)
	}
}

// InsertRenderedOutput implements core.Inserter.
func (d *Document) InsertRenderedOutput(id, text string) error {
	if d.root == nil {
		return core.DocumentUnavailable(id, nil)
	}
	target := d.ElementByID(id)
	if target == nil {
		return core.ContainerNotFound(id)
	}
	p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	nodes, err := html.ParseFragment(strings.NewReader(sanitizer().Sanitize(text)), p)
	if err != nil {
		return core.DocumentUnavailable(id, err)
	}
	for _, n := range nodes {
		p.AppendChild(n)
	}
	target.AppendChild(p)
	return nil
}

// Render writes the page to w.
func (d *Document) Render(w io.Writer) error {
	if d.root == nil {
		return fmt.Errorf("htmlhost: render: %w", core.ErrDocumentUnavailable)
	}
	return html.Render(w, d.root)
}

type fileOutput struct {
	*Document
	path   string
	stdout io.Writer
}

func (f fileOutput) Finish() error {
	if f.path == "" {
		if f.stdout == nil {
			return nil
		}
		return f.Render(f.stdout)
	}
	out, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("htmlhost: create %s: %w", f.path, err)
	}
	if err := f.Render(out); err != nil {
		out.Close()
		return fmt.Errorf("htmlhost: write %s: %w", f.path, err)
	}
	return out.Close()
}

func init() {
	host.Register("html", func(env host.Env) (core.Host, error) {
		doc := New(env.Log)
		if path := env.Config.HTML.Input; path != "" {
			in, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("htmlhost: open %s: %w", path, err)
			}
			defer in.Close()
			if doc, err = Load(in, env.Log); err != nil {
				return nil, err
			}
		}
		return fileOutput{Document: doc, path: env.Config.HTML.Output, stdout: env.Stdout}, nil
	})
}
