/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/docgrader/agents/executor/openaiexecutor"
	"chainguard.dev/docgrader/agents/schema"
	"github.com/openai/openai-go"
)

// openaiJudge implements Interface using the OpenAI chat completions API
type openaiJudge struct {
	executor openaiexecutor.Interface[*Request, *Judgement]
}

// newOpenAI creates a new OpenAI judge instance
func newOpenAI(client openai.Client, model string, maxTokens int64) (Interface, error) {
	executor, err := openaiexecutor.New[*Request, *Judgement](
		client,
		rulePrompt,
		openaiexecutor.WithModel[*Request, *Judgement](model),
		openaiexecutor.WithMaxTokens[*Request, *Judgement](maxTokens),
		openaiexecutor.WithTemperature[*Request, *Judgement](0),
		openaiexecutor.WithResponseSchema[*Request, *Judgement]("judgement", schema.ReflectType[Judgement]()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create executor: %w", err)
	}
	return &openaiJudge{executor: executor}, nil
}

// Judge implements Interface
func (o *openaiJudge) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if request == nil {
		return nil, errors.New("request cannot be nil")
	}
	return o.executor.Execute(ctx, request)
}
