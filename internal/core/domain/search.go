package domain

// SearchResult is a single similarity hit against the document index.
type SearchResult struct {
	// ID is the matched document id.
	ID string

	// Content is the document text, returned verbatim.
	Content string

	// Metadata is the flattened document metadata, including the
	// reserved doc_type key.
	Metadata map[string]string

	// Similarity is the cosine similarity to the query vector,
	// recomputed per query. Range [-1, 1], typically [0, 1] for
	// natural-language embeddings.
	Similarity float64
}

// SearchOptions configures a direct knowledge-base search.
type SearchOptions struct {
	// Limit is the maximum number of results (default 5).
	Limit int

	// TypeFilter restricts results to one document type when set.
	TypeFilter DocType
}
