// Package watcher ingests documents dropped into a watched directory.
//
// New files are given a short settle period after their last write event
// before extraction, so partially-copied files are not picked up mid-write.
// Extraction or ingestion failures are logged and skipped; the watch keeps
// running.
package watcher
