package service

import "context"

// ConciergeQuery carries one recommendation request to the LLM collaborator.
type ConciergeQuery struct {
	// Query is the visitor's free-text question.
	Query string

	// PageContext is the page or URL the visitor is currently viewing, used
	// to disambiguate vague questions. May be empty.
	PageContext string

	// DirectoryContext is the flattened snapshot of the current directory
	// used to ground the model's answer.
	DirectoryContext string
}

// ConciergeClient is the external recommendation collaborator. The returned
// text may embed partner links in the form [Label](/business/<id>).
type ConciergeClient interface {
	Recommend(ctx context.Context, query ConciergeQuery) (string, error)
}
