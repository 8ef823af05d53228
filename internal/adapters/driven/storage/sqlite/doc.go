// Package sqlite provides SQLite-backed implementations of the metadata
// store interfaces. A single database file holds the company profile,
// document records, and generation history; the individual store
// interfaces are exposed as thin wrappers over one shared connection.
//
// Migrations are embedded and applied on open.
package sqlite
