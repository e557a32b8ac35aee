// Package diag holds the process-wide diagnostic sink. The sink is installed
// once per process; later installs are ignored so the first host to claim the
// process keeps receiving reports.
package diag

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// Sink receives diagnostic text.
type Sink interface {
	Notify(message string)
}

type holder struct{ sink Sink }

var (
	once    sync.Once
	current atomic.Pointer[holder]
)

// Install registers s as the process sink. It reports whether this call
// performed the installation.
func Install(s Sink) bool {
	installed := false
	once.Do(func() {
		if s != nil {
			current.Store(&holder{sink: s})
		}
		installed = true
	})
	return installed
}

// Installed reports whether a sink has been installed.
func Installed() bool { return current.Load() != nil }

// Report formats a message and sends it to the installed sink, falling back
// to the standard logger when none is installed or the sink panics.
func Report(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if h := current.Load(); h != nil && deliver(h.sink, msg) {
		return
	}
	log.Printf("diag: %s", msg)
}

func deliver(s Sink, msg string) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			log.Printf("diag: sink panic: %v", v)
			ok = false
		}
	}()
	s.Notify(msg)
	return true
}

// Recover must be deferred directly. It turns a panic into an error stored
// in *errp via wrap, after reporting the panic value.
func Recover(errp *error, wrap func(v any) error) {
	v := recover()
	if v == nil {
		return
	}
	Report("panic: %v", v)
	if errp != nil && wrap != nil {
		*errp = wrap(v)
	}
}
