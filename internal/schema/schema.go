// Package schema provides the operating system adapters shared by all other
// packages. It wraps the (Unix-based) syscalls and process environment lookups
// that path resolution and directory creation depend on, so that the handlers
// can be given mocked implementations in tests.
package schema
