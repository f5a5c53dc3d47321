// Package concierge implements the LLM recommendation collaborator with the
// Google GenAI SDK.
package concierge

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"ppoth/config"
	domainerrors "ppoth/internal/domain/errors"
	"ppoth/internal/domain/service"
	"ppoth/internal/errors"
)

const (
	defaultModel       = "gemini-2.5-flash"
	defaultTemperature = 0.7
)

const systemPrompt = `You are the Elite Concierge for "Preferred Partners of the Hamptons" (PPOTH).
Your goal is to help homeowners in the Hamptons find the best service providers from our exclusive directory.

Rules:
1. ONLY recommend businesses that are listed in the provided directory context.
2. Be polite, sophisticated, and helpful.
3. If a user asks for a service not in the directory, apologize and suggest the closest match or say we don't have a vetted partner for that yet.
4. When recommending a partner, you MUST provide a link to their profile using this specific syntax: [Partner Name](/business/PARTNER_ID).
5. Provide a brief reason why the partner fits the user's request.
6. Keep responses concise (under 150 words) unless asked for details.
7. NEUTRALITY RULE: If multiple vetted partners offer the requested service, list ALL of them as equal, excellent options. Do not favor one over another.`

type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *slog.Logger
}

// disabledClient is used when no API key is configured; every request
// reports the collaborator as unavailable.
type disabledClient struct{}

func (disabledClient) Recommend(context.Context, service.ConciergeQuery) (string, error) {
	return "", domainerrors.ErrConciergeUnavailable.WrapMessage("concierge api key not configured")
}

// NewGeminiClient creates the Gemini-backed concierge client. A missing
// configuration degrades to a disabled client rather than failing startup.
func NewGeminiClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ConciergeClient, error) {
	if cfg.Concierge == nil || cfg.Concierge.APIKey == "" {
		logger.Warn("Concierge API key not configured, concierge disabled")

		return disabledClient{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Concierge.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GenAI client")
	}

	model := cfg.Concierge.Model
	if model == "" {
		model = defaultModel
	}
	temperature := float32(cfg.Concierge.Temperature)
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &geminiClient{
		client:      client,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// Recommend grounds the model with the flattened directory snapshot and the
// visitor's current page, then asks for a recommendation.
func (c *geminiClient) Recommend(ctx context.Context, query service.ConciergeQuery) (string, error) {
	instruction := systemPrompt
	if query.PageContext != "" {
		instruction += fmt.Sprintf("\n\nThe user is currently viewing this page: %q. "+
			"If their question is vague, infer they mean partners relevant to this page.", query.PageContext)
	}
	instruction += "\n\n" + query.DirectoryContext

	result, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(query.Query),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
			Temperature:       genai.Ptr(c.temperature),
		},
	)
	if err != nil {
		c.logger.Error("Concierge generation failed", slog.Any("error", err))

		return "", domainerrors.ErrConciergeUnavailable.WrapMessage("gemini request failed")
	}

	text := result.Text()
	if text == "" {
		return "", domainerrors.ErrConciergeUnavailable.WrapMessage("empty gemini response")
	}

	return text, nil
}
