/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/docgrader/agents/metrics"
	"chainguard.dev/docgrader/agents/promptbuilder"
	"chainguard.dev/docgrader/agents/result"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Interface is the public interface for OpenAI prompt execution
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute renders the prompt for request, sends it, and parses the reply.
	Execute(ctx context.Context, request Request) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client             openai.Client
	prompt             *promptbuilder.Prompt
	systemInstructions *promptbuilder.Prompt
	model              string
	temperature        float64
	maxTokens          int64
	schemaName         string
	schema             any
	genaiMetrics       *metrics.GenAI
}

// New creates an executor for prompt. The default model is gpt-4o-mini at
// temperature 0.
func New[Request promptbuilder.Bindable, Response any](
	client openai.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request, Response]{
		client:       client,
		prompt:       prompt,
		model:        "gpt-4o-mini",
		temperature:  0,
		maxTokens:    1024,
		genaiMetrics: metrics.NewGenAI(metrics.MeterName),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

// Execute implements Interface
func (e *executor[Request, Response]) Execute(ctx context.Context, request Request) (response Response, err error) {
	log := clog.FromContext(ctx)

	bound, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return response, fmt.Errorf("failed to build prompt: %w", err)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if e.systemInstructions != nil {
		system, err := e.systemInstructions.Build()
		if err != nil {
			return response, fmt.Errorf("building system prompt: %w", err)
		}
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(e.model),
		Messages:            messages,
		Temperature:         openai.Float(e.temperature),
		MaxCompletionTokens: openai.Int(e.maxTokens),
	}
	if e.schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   e.schemaName,
					Schema: e.schema,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	log.With("model", e.model).
		With("prompt_length", len(prompt)).
		Debug("Sending OpenAI chat completion")

	completion, err := e.client.Chat.Completions.New(ctx, params, option.WithMaxRetries(0))
	if err != nil {
		return response, fmt.Errorf("chat completion failed: %w", err)
	}

	if completion.Usage.PromptTokens > 0 || completion.Usage.CompletionTokens > 0 {
		e.genaiMetrics.RecordTokens(ctx, e.model, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
	}

	if len(completion.Choices) == 0 {
		return response, errors.New("no choices in OpenAI response")
	}
	msg := completion.Choices[0].Message
	if msg.Refusal != "" {
		return response, fmt.Errorf("model refused: %s", msg.Refusal)
	}
	if msg.Content == "" {
		return response, errors.New("no content in OpenAI response")
	}

	resp, err := result.Extract[Response](msg.Content)
	if err != nil {
		log.With("response", msg.Content).
			With("error", err).
			Debug("Failed to parse OpenAI response")
		return response, fmt.Errorf("failed to parse response: %w", err)
	}
	return resp, nil
}
