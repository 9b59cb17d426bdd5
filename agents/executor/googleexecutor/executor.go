/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/docgrader/agents/metrics"
	"chainguard.dev/docgrader/agents/promptbuilder"
	"chainguard.dev/docgrader/agents/result"
	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"
)

// Interface is the public interface for Gemini prompt execution
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute renders the prompt for request, sends it, and parses the reply.
	Execute(ctx context.Context, request Request) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client             *genai.Client
	prompt             *promptbuilder.Prompt
	systemInstructions *promptbuilder.Prompt
	model              string
	temperature        float32
	maxOutputTokens    int32
	responseMIMEType   string
	responseSchema     *genai.Schema
	genaiMetrics       *metrics.GenAI
}

// New creates a new executor
func New[Request promptbuilder.Bindable, Response any](
	client *genai.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if client == nil {
		return nil, errors.New("client is required")
	}
	if prompt == nil {
		return nil, errors.New("prompt is required")
	}

	e := &executor[Request, Response]{
		client:          client,
		prompt:          prompt,
		model:           "gemini-2.5-flash",
		temperature:     0,
		maxOutputTokens: 1024,
		genaiMetrics:    metrics.NewGenAI(metrics.MeterName),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	return e, nil
}

// Execute implements Interface
func (e *executor[Request, Response]) Execute(ctx context.Context, request Request) (resp Response, err error) {
	log := clog.FromContext(ctx)

	bound, err := request.Bind(e.prompt)
	if err != nil {
		return resp, fmt.Errorf("binding prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return resp, fmt.Errorf("building prompt: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      ptr(e.temperature),
		MaxOutputTokens:  e.maxOutputTokens,
		ResponseMIMEType: e.responseMIMEType,
		ResponseSchema:   e.responseSchema,
	}
	if e.systemInstructions != nil {
		systemPrompt, err := e.systemInstructions.Build()
		if err != nil {
			return resp, fmt.Errorf("building system prompt: %w", err)
		}
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	log.With("model", e.model).Debug("Sending Gemini request")

	response, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), config)
	if err != nil {
		return resp, fmt.Errorf("generating content: %w", err)
	}
	e.recordTokenMetrics(ctx, response.UsageMetadata)

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return resp, errors.New("no candidates in response")
	}

	var responseText strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" && !part.Thought {
			responseText.WriteString(part.Text)
		}
	}
	if responseText.Len() == 0 {
		return resp, errors.New("no text content found in response")
	}

	extracted, err := result.Extract[Response](responseText.String())
	if err != nil {
		log.With("response", responseText.String()).With("error", err).Debug("Failed to parse AI response")
		return resp, fmt.Errorf("failed to parse AI response: %w", err)
	}
	return extracted, nil
}

// ptr is a helper function to create a pointer to a value
func ptr[T any](v T) *T {
	return &v
}

func (e *executor[Request, Response]) recordTokenMetrics(ctx context.Context, usage *genai.GenerateContentResponseUsageMetadata) {
	if usage == nil {
		return
	}
	e.genaiMetrics.RecordTokens(ctx, e.model, int64(usage.PromptTokenCount), int64(usage.CandidatesTokenCount))
}
