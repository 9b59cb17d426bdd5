/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge_test

import (
	"encoding/json"
	"testing"

	"chainguard.dev/docgrader/agents/judge"
	"github.com/google/go-cmp/cmp"
)

func TestJudgementUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    judge.Judgement
		wantErr bool
	}{{
		name:  "valid",
		input: `{"score": 2, "justification": "ok"}`,
		want:  judge.Judgement{Score: 2, Justification: "ok"},
	}, {
		name:  "zero score",
		input: `{"score": 0, "justification": "nothing relevant"}`,
		want:  judge.Judgement{Score: 0, Justification: "nothing relevant"},
	}, {
		name:  "extra fields ignored",
		input: `{"score": 3, "justification": "great", "confidence": 0.9}`,
		want:  judge.Judgement{Score: 3, Justification: "great"},
	}, {
		name:    "missing score",
		input:   `{"justification": "ok"}`,
		wantErr: true,
	}, {
		name:    "null score",
		input:   `{"score": null, "justification": "ok"}`,
		wantErr: true,
	}, {
		name:    "fractional score",
		input:   `{"score": 2.5, "justification": "ok"}`,
		wantErr: true,
	}, {
		name:    "string score",
		input:   `{"score": "2", "justification": "ok"}`,
		wantErr: true,
	}, {
		name:    "score above range",
		input:   `{"score": 4, "justification": "ok"}`,
		wantErr: true,
	}, {
		name:    "negative score",
		input:   `{"score": -1, "justification": "ok"}`,
		wantErr: true,
	}, {
		name:    "missing justification",
		input:   `{"score": 1}`,
		wantErr: true,
	}, {
		name:    "justification not a string",
		input:   `{"score": 1, "justification": 7}`,
		wantErr: true,
	}, {
		name:    "not an object",
		input:   `[1, 2]`,
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got judge.Judgement
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJudgementValidate(t *testing.T) {
	for score := -1; score <= 4; score++ {
		j := &judge.Judgement{Score: score}
		wantErr := score < judge.MinScore || score > judge.MaxScore
		if err := j.Validate(); (err != nil) != wantErr {
			t.Errorf("Validate(score=%d) error = %v, wantErr %v", score, err, wantErr)
		}
	}
}
