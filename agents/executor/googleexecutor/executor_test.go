/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"chainguard.dev/docgrader/agents/executor/googleexecutor"
	"chainguard.dev/docgrader/agents/promptbuilder"
	"google.golang.org/genai"
)

type question struct {
	Text string
}

func (q *question) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindJSON("question", q.Text)
}

type answer struct {
	Answer string `json:"answer"`
}

var prompt = promptbuilder.MustNewPrompt(`Answer in JSON: {{question}}`)

func newClient(t *testing.T, url string) *genai.Client {
	t.Helper()
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: url + "/"},
	})
	if err != nil {
		t.Fatalf("genai.NewClient() error = %v", err)
	}
	return client
}

func TestExecute(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if !strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent") {
			t.Errorf("path: got = %q, wanted generateContent on gemini-2.5-flash", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "candidates": [{
    "content": {"role": "model", "parts": [{"text": "{\"answer\": \"42\"}"}]},
    "finishReason": "STOP"
  }],
  "usageMetadata": {"promptTokenCount": 8, "candidatesTokenCount": 5}
}`))
	}))
	defer srv.Close()

	exec, err := googleexecutor.New[*question, *answer](newClient(t, srv.URL), prompt,
		googleexecutor.WithResponseMIMEType[*question, *answer]("application/json"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got, err := exec.Execute(context.Background(), &question{Text: "What is 6 x 7?"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.Answer != "42" {
		t.Errorf("Answer: got = %q, wanted = 42", got.Answer)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("calls: got = %d, wanted = 1", n)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := googleexecutor.New[*question, *answer](nil, prompt); err == nil {
		t.Error("New(nil client) error = nil, wanted error")
	}
}

func TestOptions(t *testing.T) {
	client := &genai.Client{}
	tests := []struct {
		name    string
		opt     googleexecutor.Option[*question, *answer]
		wantErr bool
	}{
		{"gemini model", googleexecutor.WithModel[*question, *answer]("gemini-2.5-pro"), false},
		{"claude model", googleexecutor.WithModel[*question, *answer]("claude-sonnet-4-5"), true},
		{"temperature", googleexecutor.WithTemperature[*question, *answer](1.5), false},
		{"negative temperature", googleexecutor.WithTemperature[*question, *answer](-0.1), true},
		{"tokens", googleexecutor.WithMaxOutputTokens[*question, *answer](2048), false},
		{"zero tokens", googleexecutor.WithMaxOutputTokens[*question, *answer](0), true},
		{"json mime", googleexecutor.WithResponseMIMEType[*question, *answer]("application/json"), false},
		{"xml mime", googleexecutor.WithResponseMIMEType[*question, *answer]("application/xml"), true},
		{"nil schema", googleexecutor.WithResponseSchema[*question, *answer](nil), true},
		{"nil system", googleexecutor.WithSystemInstructions[*question, *answer](nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := googleexecutor.New[*question, *answer](client, prompt, tt.opt)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
