package usecase

import "context"

// AskInput carries one concierge question together with the page the
// visitor asked it from.
type AskInput struct {
	Query       string `json:"query" validate:"required"`
	PageContext string `json:"pageContext"`
}

// BusinessRef is a partner mentioned in a concierge reply, extracted
// from the inline markdown links the model is instructed to emit.
type BusinessRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// AskOutput is the concierge reply plus the verified partner references
// found inside it.
type AskOutput struct {
	Reply      string        `json:"reply"`
	References []BusinessRef `json:"references"`
}

// ConciergeUsecase answers visitor questions with grounded partner
// recommendations.
type ConciergeUsecase interface {
	// Ask builds the directory context, queries the recommendation model
	// and returns its reply. Model failures degrade to a polite apology
	// rather than an error.
	Ask(ctx context.Context, input AskInput) (*AskOutput, error)
}
