// Package templatestore resolves CV template names to template markup.
// Templates are deployment artifacts: the service only ever reads them.
package templatestore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a template name has no backing object.
var ErrNotFound = errors.New("template not found in store")

// Store defines the contract for reading template markup by name.
type Store interface {
	Get(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}
