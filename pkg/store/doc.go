// Package store defines the generic attribute-store node abstraction the
// field tree is built over, plus an in-memory implementation used by the
// document loader, the CLI, and tests.
package store
