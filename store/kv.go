// Package store abstracts the external key-value store that holds all
// durable state. Values are JSON documents addressed by a namespace and a
// string key; there is no listing, no deletion and no transactions — two
// concurrent puts to the same key race and the last committed write wins.
package store

import (
	"context"
	"errors"
)

// Logical namespaces. Templates and content live side by side but never
// share keys.
const (
	NamespaceTemplates = "TEMPLATES"
	NamespaceContent   = "CONTENT"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

// Store is the key-value collaborator. Get returns the stored JSON bytes or
// ErrNotFound; Put unconditionally overwrites.
type Store interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Put(ctx context.Context, namespace, key string, value []byte) error
}
