package core

import (
	"errors"
	"fmt"
)

var (
	// ErrContainerNotFound reports that a container id did not resolve to a
	// node in the host document.
	ErrContainerNotFound = errors.New("container not found")
	// ErrDocumentUnavailable reports that the host has no document or cannot
	// create nodes.
	ErrDocumentUnavailable = errors.New("document unavailable")
)

// AdapterError describes a failed host call.
type AdapterError struct {
	Op          string
	ContainerID string
	Err         error
}

func (e *AdapterError) Error() string {
	if e.ContainerID == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.ContainerID, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }

// ContainerNotFound builds the error an Inserter returns for an unknown id.
func ContainerNotFound(containerID string) error {
	return &AdapterError{Op: "insert", ContainerID: containerID, Err: ErrContainerNotFound}
}

// DocumentUnavailable builds the error an Inserter returns when it has no
// usable document. cause may be nil.
func DocumentUnavailable(containerID string, cause error) error {
	err := ErrDocumentUnavailable
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrDocumentUnavailable, cause)
	}
	return &AdapterError{Op: "insert", ContainerID: containerID, Err: err}
}

// IsAdapterError reports whether err belongs to the host adapter taxonomy.
func IsAdapterError(err error) bool {
	return errors.Is(err, ErrContainerNotFound) || errors.Is(err, ErrDocumentUnavailable)
}
