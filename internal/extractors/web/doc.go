// Package web extracts readable text content from web pages.
//
// Failures are deliberately non-fatal: an unreachable or unparseable URL
// yields a placeholder document with a zero word count, so one bad link
// never aborts an ingestion batch.
package web
