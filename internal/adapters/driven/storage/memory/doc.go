// Package memory provides in-memory implementations of the metadata store
// interfaces. They are the default backend and are also used as test
// doubles in service tests. All stores are safe for concurrent use.
package memory
