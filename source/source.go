// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

// SearchRequest bundles the parameters of one discovery query.
type SearchRequest struct {
	// Genre is the high-level genre or theme (e.g. "trance", "ambient study").
	Genre string
	// Artist optionally biases results towards one artist.
	Artist string
	// Filters are applied to results after the provider returns them.
	Filters *Filters
	// MaxResults is the number of results requested from the provider.
	MaxResults int
	// Order is the search ordering hint: relevance, date, longest, shortest.
	Order string
}

// Source defines the required capabilities for a media provider engine.
type Source interface {
	// Name returns the unique identifier for the provider.
	Name() string

	// ID returns the unique identifier of the source instance.
	ID() string

	// Search executes a query against the provider and returns matching tracks.
	Search(request SearchRequest) ([]*Track, error)

	// CandidatesOf retrieves the available renditions for a specific track.
	CandidatesOf(track *Track) ([]*Candidate, error)

	// ResolveStream asks the provider for a single stream matching the given
	// selector expression. The expression uses the resolver's own fallback
	// grammar and is never interpreted locally.
	ResolveStream(track *Track, selector string) (*StreamingLink, error)
}
