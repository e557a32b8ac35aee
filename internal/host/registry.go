// Package host keeps the registry of host adapters a grid can publish into.
// Adapter packages register themselves from init.
package host

import (
	"io"
	"log"
	"sort"

	"cellgrid/internal/config"
	"cellgrid/internal/core"
)

// Env carries what a factory needs to build a host.
type Env struct {
	Config config.Config
	Log    *log.Logger
	Stdout io.Writer
}

// Factory constructs a host from the environment.
type Factory func(env Env) (core.Host, error)

// Finisher is implemented by hosts that need a final step after publishing,
// such as writing a document or running a window loop.
type Finisher interface {
	Finish() error
}

var hosts = map[string]Factory{}

// Register adds a host factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	hosts[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := hosts[name]
	return f, ok
}

// Names lists registered hosts in sorted order.
func Names() []string {
	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
