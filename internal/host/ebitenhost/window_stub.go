//go:build !ebiten

package ebitenhost

import (
	"errors"

	"cellgrid/internal/core"
	"cellgrid/internal/host"
)

// ErrNoGUI is returned by the gui host factory in headless builds.
var ErrNoGUI = errors.New("ebitenhost: the gui host requires building with the 'ebiten' tag")

func init() {
	host.Register("gui", func(host.Env) (core.Host, error) {
		return nil, ErrNoGUI
	})
}
