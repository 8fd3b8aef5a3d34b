// Package types defines the platform and expression model, the Catalog and
// Table interfaces, and standard error values for the targetspec system.
package types
