package domain

// VectorPoint is a single entry in the vector store. The payload always
// carries at least "text" and a "type" or "source" key. Every vector must
// have exactly the dimension the collection was created with; the store
// rejects points that do not conform.
type VectorPoint struct {
	// ID is a UUID identifying the point.
	ID string `json:"id"`

	// Vector is the embedding.
	Vector []float32 `json:"vector"`

	// Payload carries the text and its provenance.
	Payload map[string]any `json:"payload"`
}

// SearchResult is a similarity search hit. Results are ordered by
// descending score and filtered to the requested threshold by the store.
type SearchResult struct {
	// ID is the matched point's ID.
	ID string `json:"id"`

	// Score is the cosine similarity score.
	Score float64 `json:"score"`

	// Payload is the matched point's payload.
	Payload map[string]any `json:"payload"`
}

// Text returns the payload "text" value, or empty when absent.
func (r SearchResult) Text() string {
	text, _ := r.Payload["text"].(string)
	return text
}

// PayloadString returns a payload value as a string, or empty when the key
// is missing or not a string.
func (r SearchResult) PayloadString(key string) string {
	value, _ := r.Payload[key].(string)
	return value
}

// StoreStats summarises the vector store contents.
type StoreStats struct {
	// PointCount is the number of points in the collection.
	PointCount int `json:"pointCount"`
}
