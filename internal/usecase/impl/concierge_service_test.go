package impl

import (
	"context"
	"testing"

	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/service"
	"ppoth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConciergeClient returns a canned reply or error and records the
// last query it saw.
type stubConciergeClient struct {
	reply     string
	err       error
	lastQuery service.ConciergeQuery
}

func (s *stubConciergeClient) Recommend(_ context.Context, query service.ConciergeQuery) (string, error) {
	s.lastQuery = query

	return s.reply, s.err
}

type conciergeFixtures struct {
	service usecase.ConciergeUsecase
	client  *stubConciergeClient
}

func createTestConciergeService(client *stubConciergeClient) conciergeFixtures {
	dirFx := createTestDirectoryService()
	svc := NewConciergeService(dirFx.service, client, newTestLogger())

	return conciergeFixtures{service: svc, client: client}
}

func TestConciergeService_Ask_ExtractsReferences(t *testing.T) {
	client := &stubConciergeClient{
		reply: "I recommend [Gardens of Georgica](/business/biz_land_1) for estate work " +
			"and [Crystal Pools](/business/biz_pool_1) for the pool. " +
			"Avoid [Ghost Co](/business/biz_ghost).",
	}
	fx := createTestConciergeService(client)

	output, err := fx.service.Ask(context.Background(), usecase.AskInput{Query: "Who handles gardens?"})
	require.NoError(t, err)
	assert.Equal(t, client.reply, output.Reply)

	// Only ids that exist in the directory survive.
	require.Len(t, output.References, 2)
	assert.Equal(t, usecase.BusinessRef{
		ID:    "biz_land_1",
		Label: "Gardens of Georgica",
		Path:  "/business/biz_land_1",
	}, output.References[0])
	assert.Equal(t, "biz_pool_1", output.References[1].ID)
}

func TestConciergeService_Ask_DeduplicatesReferences(t *testing.T) {
	client := &stubConciergeClient{
		reply: "[Gardens of Georgica](/business/biz_land_1) is great; " +
			"truly, [the Georgica team](/business/biz_land_1) is the best.",
	}
	fx := createTestConciergeService(client)

	output, err := fx.service.Ask(context.Background(), usecase.AskInput{Query: "Best landscaper?"})
	require.NoError(t, err)
	require.Len(t, output.References, 1)
	assert.Equal(t, "Gardens of Georgica", output.References[0].Label)
}

func TestConciergeService_Ask_GroundsOnDirectory(t *testing.T) {
	client := &stubConciergeClient{reply: "ok"}
	fx := createTestConciergeService(client)

	_, err := fx.service.Ask(context.Background(), usecase.AskInput{
		Query:       "Who is good here?",
		PageContext: "/category/cat_outdoor",
	})
	require.NoError(t, err)

	assert.Equal(t, "Who is good here?", fx.client.lastQuery.Query)
	assert.Equal(t, "/category/cat_outdoor", fx.client.lastQuery.PageContext)
	assert.Contains(t, fx.client.lastQuery.DirectoryContext, "Gardens of Georgica")
	assert.Contains(t, fx.client.lastQuery.DirectoryContext, "(ID: biz_land_1)")
	assert.Contains(t, fx.client.lastQuery.DirectoryContext, "OUTDOOR & GROUNDS > Landscaper")
}

func TestConciergeService_Ask_FallsBackOnClientError(t *testing.T) {
	client := &stubConciergeClient{err: errors.New("model unreachable")}
	fx := createTestConciergeService(client)

	output, err := fx.service.Ask(context.Background(), usecase.AskInput{Query: "Anyone for roofs?"})
	require.NoError(t, err)
	assert.Equal(t, conciergeFallback, output.Reply)
	assert.Empty(t, output.References)
}

func TestConciergeService_Ask_RequiresQuery(t *testing.T) {
	fx := createTestConciergeService(&stubConciergeClient{reply: "ok"})

	_, err := fx.service.Ask(context.Background(), usecase.AskInput{Query: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
