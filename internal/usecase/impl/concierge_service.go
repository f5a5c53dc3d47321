package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"ppoth/internal/domain/entity"
	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/service"
	"ppoth/internal/usecase"

	"github.com/pkg/errors"
)

// conciergeFallback is returned when the recommendation model cannot be
// reached. The chat flow degrades gracefully instead of erroring.
const conciergeFallback = "I apologize, I am having trouble retrieving that information right now."

// businessLinkPattern matches the inline partner links the model is
// instructed to emit: [Label](/business/<id>).
var businessLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(/business/([A-Za-z0-9_-]+)\)`)

// conciergeService implements the ConciergeUsecase interface.
type conciergeService struct {
	directory usecase.DirectoryUsecase
	client    service.ConciergeClient
	logger    *slog.Logger
}

// NewConciergeService is the constructor for conciergeService.
func NewConciergeService(
	directory usecase.DirectoryUsecase,
	client service.ConciergeClient,
	logger *slog.Logger,
) usecase.ConciergeUsecase {
	return &conciergeService{
		directory: directory,
		client:    client,
		logger:    logger,
	}
}

// Ask grounds the model on a flattened directory snapshot, forwards the
// question and extracts verified partner references from the reply. A
// model failure yields the fallback text, not an error.
func (srv *conciergeService) Ask(ctx context.Context, input usecase.AskInput) (*usecase.AskOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "query is required")
	}

	categories, err := srv.directory.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	reply, err := srv.client.Recommend(ctx, service.ConciergeQuery{
		Query:            input.Query,
		PageContext:      input.PageContext,
		DirectoryContext: flattenDirectory(categories),
	})
	if err != nil {
		srv.logger.Warn("Concierge request failed", "error", err)

		return &usecase.AskOutput{Reply: conciergeFallback, References: []usecase.BusinessRef{}}, nil
	}

	return &usecase.AskOutput{
		Reply:      reply,
		References: extractReferences(reply, categories),
	}, nil
}

// flattenDirectory serializes the hierarchy into the plain-text context
// block the model is grounded on.
func flattenDirectory(categories []entity.Category) string {
	var b strings.Builder

	b.WriteString("Here is the directory of Preferred Partners of the Hamptons (PPOTH):\n")

	for _, cat := range categories {
		for _, sub := range cat.SubCategories {
			for _, biz := range sub.Businesses {
				fmt.Fprintf(&b, "- Name: %s (ID: %s)\n", biz.Name, biz.ID)
				fmt.Fprintf(&b, "  Category: %s > %s\n", cat.Name, sub.Name)
				fmt.Fprintf(&b, "  Description: %s\n", biz.Description)
				fmt.Fprintf(&b, "  Rating: %.1f/5 stars\n", biz.Rating)
				fmt.Fprintf(&b, "  Location: %s\n", biz.Address)
				fmt.Fprintf(&b, "  Services: %s\n\n", strings.Join(biz.Services, ", "))
			}
		}
	}

	return b.String()
}

// extractReferences collects the partner links in a reply, keeping only
// ids that actually exist in the directory. Duplicate ids keep their first
// label.
func extractReferences(reply string, categories []entity.Category) []usecase.BusinessRef {
	known := make(map[string]struct{})
	for _, cat := range categories {
		for _, sub := range cat.SubCategories {
			for _, biz := range sub.Businesses {
				known[biz.ID] = struct{}{}
			}
		}
	}

	refs := []usecase.BusinessRef{}
	seen := make(map[string]struct{})

	for _, match := range businessLinkPattern.FindAllStringSubmatch(reply, -1) {
		label, id := match[1], match[2]
		if _, ok := known[id]; !ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		refs = append(refs, usecase.BusinessRef{
			ID:    id,
			Label: label,
			Path:  "/business/" + id,
		})
	}

	return refs
}
