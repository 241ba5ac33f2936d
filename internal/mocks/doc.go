// Package mocks provides in-memory implementations of the repository, media,
// limiter and audit ports for use in tests.
package mocks
