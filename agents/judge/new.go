/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

// DefaultModel is the judge model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// ErrMissingCredential is returned by New when the selected provider has no
// credential configured.
var ErrMissingCredential = errors.New("missing credential")

// Config selects and authenticates the judge model. It is populated from
// the environment with go-envconfig.
type Config struct {
	// Model picks the provider: claude-* uses Anthropic, gemini-* uses
	// Gemini, anything else uses OpenAI.
	Model     string `env:"JUDGE_MODEL, default=gpt-4o-mini"`
	MaxTokens int64  `env:"JUDGE_MAX_TOKENS, default=1024"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`

	// Project and Region select Vertex AI for Claude and Gemini models when
	// no API key is given.
	Project string `env:"GOOGLE_CLOUD_PROJECT"`
	Region  string `env:"GOOGLE_CLOUD_REGION, default=us-east5"`
}

// New creates a judge for cfg.Model, delegating to the implementation for
// the model's provider.
func New(ctx context.Context, cfg Config) (Interface, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}
	modelLower := strings.ToLower(model)

	switch {
	case strings.HasPrefix(modelLower, "claude-"):
		var opts []anthropicoption.RequestOption
		switch {
		case cfg.AnthropicAPIKey != "":
			opts = append(opts, anthropicoption.WithAPIKey(cfg.AnthropicAPIKey))
		case cfg.Project != "":
			opts = append(opts, vertex.WithGoogleAuth(ctx, cfg.Region, cfg.Project))
		default:
			return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY or GOOGLE_CLOUD_PROJECT is required for %s", ErrMissingCredential, model)
		}
		return newClaude(anthropic.NewClient(opts...), model, maxTokens)

	case strings.HasPrefix(modelLower, "gemini-"):
		cc := &genai.ClientConfig{}
		switch {
		case cfg.GeminiAPIKey != "":
			cc.APIKey = cfg.GeminiAPIKey
			cc.Backend = genai.BackendGeminiAPI
		case cfg.Project != "":
			cc.Project = cfg.Project
			cc.Location = cfg.Region
			cc.Backend = genai.BackendVertexAI
		default:
			return nil, fmt.Errorf("%w: GEMINI_API_KEY or GOOGLE_CLOUD_PROJECT is required for %s", ErrMissingCredential, model)
		}
		client, err := genai.NewClient(ctx, cc)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google AI client: %w", err)
		}
		return newGoogle(client, model, int32(maxTokens))

	default:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is required for %s", ErrMissingCredential, model)
		}
		opts := []openaioption.RequestOption{openaioption.WithAPIKey(cfg.OpenAIAPIKey)}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openaioption.WithBaseURL(cfg.OpenAIBaseURL))
		}
		return newOpenAI(openai.NewClient(opts...), model, maxTokens)
	}
}
