// Package testutil provides helpers and fixtures for testing carrierlock
// components.
//
// Key components:
//   - File helpers: CreateFile, ReadFile, AssertFileContent
//   - Fixtures: sample rules and SIM slot documents in every supported format
//   - Isolation: IsolateXDG points every XDG directory at a temporary tree
//
// Usage guidelines:
//   - Use t.TempDir (directly or via the helpers) for anything written to disk
//   - Keep test data inline; the fixtures here are shared only because several
//     packages decode the same documents
package testutil
