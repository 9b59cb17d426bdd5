/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/docgrader/agents/promptbuilder"
)

// Option is a functional option for configuring the executor
type Option[Request promptbuilder.Bindable, Response any] func(*executor[Request, Response]) error

// WithModel overrides the model name.
func WithModel[Request promptbuilder.Bindable, Response any](model string) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		if strings.HasPrefix(model, "claude-") || strings.HasPrefix(model, "gemini-") {
			return fmt.Errorf("model %q is not an OpenAI model", model)
		}
		e.model = model
		return nil
	}
}

// WithTemperature sets the sampling temperature.
// OpenAI accepts values from 0.0 to 2.0; 0 is the most deterministic.
func WithTemperature[Request promptbuilder.Bindable, Response any](temp float64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		e.temperature = temp
		return nil
	}
}

// WithMaxTokens caps the completion length.
func WithMaxTokens[Request promptbuilder.Bindable, Response any](tokens int64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		e.maxTokens = tokens
		return nil
	}
}

// WithSystemInstructions sets a system message sent ahead of the prompt.
func WithSystemInstructions[Request promptbuilder.Bindable, Response any](prompt *promptbuilder.Prompt) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if prompt == nil {
			return errors.New("system instructions prompt cannot be nil")
		}
		e.systemInstructions = prompt
		return nil
	}
}

// WithResponseSchema requests strict structured output matching schema.
// The schema may be any value that marshals to a JSON schema object.
func WithResponseSchema[Request promptbuilder.Bindable, Response any](name string, schema any) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if name == "" {
			return errors.New("response schema name cannot be empty")
		}
		if schema == nil {
			return errors.New("response schema cannot be nil")
		}
		e.schemaName = name
		e.schema = schema
		return nil
	}
}
