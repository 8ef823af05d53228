// Package services contains the core business logic, orchestrating the
// driven ports (embedding, completion, vector store, metadata stores) to
// implement the driving interfaces used by the CLI.
//
// Import Rules:
//   - May import core/domain and core/ports.
//   - Must NOT import adapters; all I/O goes through the driven ports.
package services
