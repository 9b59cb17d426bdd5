/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"chainguard.dev/docgrader/agents/executor/openaiexecutor"
	"chainguard.dev/docgrader/agents/promptbuilder"
	"chainguard.dev/docgrader/agents/schema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type question struct {
	Text string
}

func (q *question) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindXML("question", struct {
		XMLName struct{} `xml:"question"`
		Content string   `xml:",chardata"`
	}{Content: q.Text})
}

type answer struct {
	Answer string `json:"answer"`
}

var prompt = promptbuilder.MustNewPrompt(`Answer in JSON.
{{question}}`)

// completion renders a minimal chat completion body with content as the
// assistant message.
func completion(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"logprobs":      nil,
			"message": map[string]any{
				"role":    "assistant",
				"content": content,
				"refusal": nil,
			},
		}},
		"usage": map[string]any{
			"prompt_tokens":     12,
			"completion_tokens": 5,
			"total_tokens":      17,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func newClient(url string) openai.Client {
	return openai.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(url+"/"),
	)
}

func TestExecute(t *testing.T) {
	var request map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path: got = %q, wanted = /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization: got = %q", got)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatal(err)
		}
		if err := json.Unmarshal(body, &request); err != nil {
			t.Fatal(err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completion(t, "```json\n{\"answer\": \"42\"}\n```"))
	}))
	defer srv.Close()

	exec, err := openaiexecutor.New[*question, *answer](
		newClient(srv.URL),
		prompt,
		openaiexecutor.WithModel[*question, *answer]("gpt-4o"),
		openaiexecutor.WithResponseSchema[*question, *answer]("answer", schema.ReflectType[answer]()),
	)
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

	if request["model"] != "gpt-4o" {
		t.Errorf("model: got = %v, wanted = gpt-4o", request["model"])
	}
	if request["temperature"] != float64(0) {
		t.Errorf("temperature: got = %v, wanted = 0", request["temperature"])
	}
	messages, _ := request["messages"].([]any)
	if len(messages) != 1 {
		t.Fatalf("messages: got = %d, wanted = 1", len(messages))
	}
	msg, _ := messages[0].(map[string]any)
	if content, _ := msg["content"].(string); !strings.Contains(content, "<question>What is 6 x 7?</question>") {
		t.Errorf("message content: got = %q", content)
	}
	format, _ := request["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format.type: got = %v, wanted = json_schema", format["type"])
	}
}

func TestExecuteSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	exec, err := openaiexecutor.New[*question, *answer](newClient(srv.URL), prompt)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := exec.Execute(context.Background(), &question{Text: "hi"}); err == nil {
		t.Fatal("Execute() error = nil, wanted error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls: got = %d, wanted = 1", got)
	}
}

func TestExecuteMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completion(t, "I would rather not answer in JSON."))
	}))
	defer srv.Close()

	exec, err := openaiexecutor.New[*question, *answer](newClient(srv.URL), prompt)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = exec.Execute(context.Background(), &question{Text: "hi"})
	if err == nil || !strings.Contains(err.Error(), "failed to parse response") {
		t.Errorf("Execute(): got = %v, wanted parse error", err)
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  openaiexecutor.Option[*question, *answer]
	}{
		{"claude model", openaiexecutor.WithModel[*question, *answer]("claude-sonnet-4")},
		{"empty model", openaiexecutor.WithModel[*question, *answer]("")},
		{"negative temperature", openaiexecutor.WithTemperature[*question, *answer](-0.1)},
		{"high temperature", openaiexecutor.WithTemperature[*question, *answer](2.5)},
		{"zero tokens", openaiexecutor.WithMaxTokens[*question, *answer](0)},
		{"nil system", openaiexecutor.WithSystemInstructions[*question, *answer](nil)},
		{"unnamed schema", openaiexecutor.WithResponseSchema[*question, *answer]("", map[string]any{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := openaiexecutor.New[*question, *answer](openai.NewClient(), prompt, tt.opt); err == nil {
				t.Error("New() error = nil, wanted error")
			}
		})
	}

	if _, err := openaiexecutor.New[*question, *answer](openai.NewClient(), nil); err == nil {
		t.Error("New(nil prompt) error = nil, wanted error")
	}
}
