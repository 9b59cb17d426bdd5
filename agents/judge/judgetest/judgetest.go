/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package judgetest provides fake judges and a stub chat completions server
// for tests.
package judgetest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"chainguard.dev/docgrader/agents/judge"
)

// Func adapts a function to judge.Interface.
type Func func(ctx context.Context, request *judge.Request) (*judge.Judgement, error)

// Judge implements judge.Interface.
func (f Func) Judge(ctx context.Context, request *judge.Request) (*judge.Judgement, error) {
	return f(ctx, request)
}

// Fixed returns a judge that always awards score.
func Fixed(score int, justification string) Func {
	return func(context.Context, *judge.Request) (*judge.Judgement, error) {
		return &judge.Judgement{Score: score, Justification: justification}, nil
	}
}

// Failing returns a judge that always fails with err.
func Failing(err error) Func {
	return func(context.Context, *judge.Request) (*judge.Judgement, error) {
		return nil, err
	}
}

// Server is a stub OpenAI chat completions endpoint.
type Server struct {
	*httptest.Server

	calls atomic.Int32
}

// Calls returns the number of completion requests served.
func (s *Server) Calls() int {
	return int(s.calls.Load())
}

// NewServer starts a chat completions stub that answers every request with
// the assistant message reply(prompt), where prompt is the content of the
// last user message. The server is closed when the test ends.
func NewServer(t *testing.T, reply func(prompt string) string) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var prompt string
		for _, m := range req.Messages {
			if m.Role == "user" {
				prompt = m.Content
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"logprobs":      nil,
				"message": map[string]any{
					"role":    "assistant",
					"content": reply(prompt),
					"refusal": nil,
				},
			}},
			"usage": map[string]any{
				"prompt_tokens":     len(prompt) / 4,
				"completion_tokens": 10,
				"total_tokens":      len(prompt)/4 + 10,
			},
		})
	}))
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the base URL to configure as OPENAI_BASE_URL.
func (s *Server) BaseURL() string {
	return s.Server.URL + "/"
}
