// Package store defines the persistence interfaces and the shared error
// taxonomy used by every backend implementation. Handlers depend on
// these interfaces only, which allows substituting in-memory fakes in
// tests.
package store
