/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/docgrader/agents/executor/googleexecutor"
	"google.golang.org/genai"
)

// google implements Interface using Google Gemini
type google struct {
	executor googleexecutor.Interface[*Request, *Judgement]
}

// responseSchema constrains Gemini replies to a Judgement
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score": {
			Type:        genai.TypeInteger,
			Description: "The evaluation score from 0 to 3",
			Minimum:     genai.Ptr[float64](MinScore),
			Maximum:     genai.Ptr[float64](MaxScore),
		},
		"justification": {
			Type:        genai.TypeString,
			Description: "Brief explanation of why this score was chosen",
		},
	},
	Required:         []string{"score", "justification"},
	PropertyOrdering: []string{"score", "justification"},
}

// newGoogle creates a new Google Gemini judge instance
func newGoogle(client *genai.Client, model string, maxTokens int32) (Interface, error) {
	executor, err := googleexecutor.New[*Request, *Judgement](
		client,
		rulePrompt,
		googleexecutor.WithModel[*Request, *Judgement](model),
		googleexecutor.WithMaxOutputTokens[*Request, *Judgement](maxTokens),
		googleexecutor.WithTemperature[*Request, *Judgement](0),
		googleexecutor.WithResponseMIMEType[*Request, *Judgement]("application/json"),
		googleexecutor.WithResponseSchema[*Request, *Judgement](responseSchema),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create executor: %w", err)
	}
	return &google{executor: executor}, nil
}

// Judge implements Interface
func (g *google) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if request == nil {
		return nil, errors.New("request cannot be nil")
	}
	return g.executor.Execute(ctx, request)
}
