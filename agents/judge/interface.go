/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"chainguard.dev/docgrader/rubric"
)

const (
	// MinScore is the lowest score a judge may award.
	MinScore = 0
	// MaxScore is the highest score a judge may award.
	MaxScore = 3
)

// Request contains the context for one judgment
type Request struct {
	// Rule is the rubric rule to evaluate against.
	Rule rubric.Rule

	// Document is the extracted document text. It is truncated when bound
	// into the prompt.
	Document string
}

// Judgement is the structured reply of the judge
type Judgement struct {
	// Score is the awarded score, from 0 to 3.
	Score int `json:"score" jsonschema:"enum=0,enum=1,enum=2,enum=3"`

	// Justification briefly explains the score.
	Justification string `json:"justification" jsonschema:"description=Brief explanation of why this score was chosen"`
}

// Validate checks that the score is within range.
func (j *Judgement) Validate() error {
	if j.Score < MinScore || j.Score > MaxScore {
		return fmt.Errorf("score %d out of range [%d, %d]", j.Score, MinScore, MaxScore)
	}
	return nil
}

// UnmarshalJSON decodes a judge reply. The score must be present and a JSON
// integer in range, and the justification must be present as a string.
func (j *Judgement) UnmarshalJSON(data []byte) error {
	var raw struct {
		Score         *json.RawMessage `json:"score"`
		Justification *json.RawMessage `json:"justification"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Score == nil || bytes.Equal(*raw.Score, []byte("null")) {
		return errors.New("invalid JSON structure returned by model: missing score")
	}
	if raw.Justification == nil {
		return errors.New("invalid JSON structure returned by model: missing justification")
	}

	score, err := strconv.Atoi(string(*raw.Score))
	if err != nil {
		return fmt.Errorf("invalid JSON structure returned by model: score %s is not an integer", *raw.Score)
	}
	var justification string
	if err := json.Unmarshal(*raw.Justification, &justification); err != nil {
		return fmt.Errorf("invalid JSON structure returned by model: justification: %w", err)
	}

	out := Judgement{Score: score, Justification: justification}
	if err := out.Validate(); err != nil {
		return err
	}
	*j = out
	return nil
}

// Interface defines the contract for judge implementations
type Interface interface {
	// Judge scores request.Document against request.Rule.
	Judge(ctx context.Context, request *Request) (*Judgement, error)
}
