/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeexecutor runs single-turn structured prompts against Claude.
//
// The executor renders the request into its prompt template, sends one
// Messages API call, and extracts a JSON reply into the response type:
//
//	client := anthropic.NewClient(option.WithAPIKey(key))
//
//	exec, err := claudeexecutor.New[*Request, *Response](
//	    client,
//	    prompt,
//	    claudeexecutor.WithModel[*Request, *Response]("claude-sonnet-4-5"),
//	    claudeexecutor.WithTemperature[*Request, *Response](0),
//	)
//
// Clients built with vertex.WithGoogleAuth work the same way. Exactly one
// request is made per Execute call.
package claudeexecutor
