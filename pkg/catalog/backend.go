// Package catalog provides the public API for the SQLite-backed platform
// catalog. It exposes the factory function for creating backends while
// keeping implementation details internal.
package catalog

import (
	"github.com/mesh-intelligence/targetspec/internal/catalog"
	"github.com/mesh-intelligence/targetspec/pkg/types"
)

// NewBackend creates a new catalog backend. The backend is not attached;
// call Attach with a Config to initialize.
//
// Example:
//
//	backend := catalog.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".atlas-db",
//	})
//	defer backend.Detach()
func NewBackend() types.Catalog {
	return catalog.NewBackend()
}
