// Package memhost is an in-memory host document. Containers are declared up
// front and inserted text is kept as ordered child nodes.
package memhost

import (
	"fmt"
	"io"
	"log"
	"strings"

	"cellgrid/internal/core"
	"cellgrid/internal/host"
)

// Document records every host call made against it.
type Document struct {
	containers map[string]*Container
	order      []string
	detached   bool
	log        *log.Logger

	Notifications []string
	Alerts        []string
	Parameters    core.ParameterSnapshot
}

// Container is a named node holding inserted text children.
type Container struct {
	ID       string
	Children []string
}

// New returns a document holding the given containers.
func New(ids ...string) *Document {
	d := &Document{containers: map[string]*Container{}}
	for _, id := range ids {
		d.AddContainer(id)
	}
	return d
}

// WithLogger mirrors notifications and alerts to logger.
func (d *Document) WithLogger(logger *log.Logger) *Document {
	d.log = logger
	return d
}

// AddContainer declares a container. Existing ids are left untouched.
func (d *Document) AddContainer(id string) {
	if _, ok := d.containers[id]; ok {
		return
	}
	d.containers[id] = &Container{ID: id}
	d.order = append(d.order, id)
}

// Detach makes the document unavailable to later inserts.
func (d *Document) Detach() { d.detached = true }

// Children returns the text children of id, or nil when it does not exist.
func (d *Document) Children(id string) []string {
	c, ok := d.containers[id]
	if !ok {
		return nil
	}
	return append([]string(nil), c.Children...)
}

// Notify implements core.Notifier.
func (d *Document) Notify(message string) {
	d.Notifications = append(d.Notifications, message)
	if d.log != nil {
		d.log.Printf("notify: %s", message)
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
	if d.detached {
		return core.DocumentUnavailable(id, nil)
	}
	c, ok := d.containers[id]
	if !ok {
		return core.ContainerNotFound(id)
	}
	c.Children = append(c.Children, text)
	return nil
}

// ShowParameters implements core.ParameterDisplay.
func (d *Document) ShowParameters(snapshot core.ParameterSnapshot) {
	d.Parameters = snapshot
}

// WriteTo dumps every container and its children in declaration order.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, id := range d.order {
		c := d.containers[id]
		for i, child := range c.Children {
			if !strings.HasSuffix(child, "\n") {
				child += "\n"
			}
			n, err := fmt.Fprintf(w, "[%s #%d]\n%s", id, i, child)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

type finishing struct {
	*Document
	out io.Writer
}

func (f finishing) Finish() error {
	if f.out == nil {
		return nil
	}
	_, err := f.WriteTo(f.out)
	return err
}

func init() {
	host.Register("mem", func(env host.Env) (core.Host, error) {
		doc := New(core.DefaultContainerID, env.Config.Container).WithLogger(env.Log)
		return finishing{Document: doc, out: env.Stdout}, nil
	})
}
