/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaiexecutor runs single-turn structured prompts against the
// OpenAI chat completions API.
//
// An executor binds a request to its prompt template, sends one chat
// completion request, and parses the reply into the response type:
//
//	client := openai.NewClient(option.WithAPIKey(key))
//
//	exec, err := openaiexecutor.New[*Request, *Response](
//	    client,
//	    prompt,
//	    openaiexecutor.WithModel[*Request, *Response]("gpt-4o-mini"),
//	    openaiexecutor.WithTemperature[*Request, *Response](0),
//	    openaiexecutor.WithResponseSchema[*Request, *Response]("judgement", schema.ReflectType[Response]()),
//	)
//	if err != nil {
//	    return err
//	}
//	resp, err := exec.Execute(ctx, req)
//
// Each Execute call makes exactly one HTTP attempt; the SDK's automatic
// retries are disabled per request.
package openaiexecutor
