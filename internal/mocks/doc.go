// Package mocks provides in-memory implementations of the store and
// auth interfaces for tests. Each mock offers sensible map-backed
// default behavior and per-method function fields for overriding it.
package mocks
