package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid caller input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoProfile indicates no company profile has been uploaded yet.
	ErrNoProfile = errors.New("no company profile")

	// ErrInvalidChunking indicates chunking parameters that can never
	// terminate (overlap >= chunk size).
	ErrInvalidChunking = errors.New("invalid chunking configuration")

	// ErrEmptyInput indicates an embedding request with no texts.
	ErrEmptyInput = errors.New("no input texts")

	// ErrAPIKeyMissing indicates a provider credential is not configured.
	// Calls must fail before any network request is attempted.
	ErrAPIKeyMissing = errors.New("API key not configured")

	// ErrProvider indicates a remote embedding or completion call failed.
	ErrProvider = errors.New("provider request failed")

	// ErrProviderTimeout indicates a provider call exceeded its timeout.
	ErrProviderTimeout = errors.New("provider request timed out")

	// ErrStore indicates a vector database call failed.
	ErrStore = errors.New("vector store request failed")

	// ErrUnsupportedType indicates a file extension no extractor handles.
	ErrUnsupportedType = errors.New("unsupported type")
)
