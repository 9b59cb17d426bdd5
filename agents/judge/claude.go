/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/docgrader/agents/executor/claudeexecutor"
	"github.com/anthropics/anthropic-sdk-go"
)

// claude implements Interface using Claude
type claude struct {
	executor claudeexecutor.Interface[*Request, *Judgement]
}

// newClaude creates a new Claude judge instance
func newClaude(client anthropic.Client, model string, maxTokens int64) (Interface, error) {
	executor, err := claudeexecutor.New[*Request, *Judgement](
		client,
		rulePrompt,
		claudeexecutor.WithModel[*Request, *Judgement](model),
		claudeexecutor.WithMaxTokens[*Request, *Judgement](maxTokens),
		claudeexecutor.WithTemperature[*Request, *Judgement](0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create executor: %w", err)
	}
	return &claude{executor: executor}, nil
}

// Judge implements Interface
func (c *claude) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if request == nil {
		return nil, errors.New("request cannot be nil")
	}
	return c.executor.Execute(ctx, request)
}
