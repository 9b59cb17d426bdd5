/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package googleexecutor runs single-turn structured prompts against Gemini
models through google.golang.org/genai.

# Usage

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
	    APIKey:  key,
	    Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
	    return err
	}

	exec, err := googleexecutor.New[*Request, *Response](
	    client,
	    prompt,
	    googleexecutor.WithModel[*Request, *Response]("gemini-2.5-flash"),
	    googleexecutor.WithResponseMIMEType[*Request, *Response]("application/json"),
	    googleexecutor.WithResponseSchema[*Request, *Response](schema),
	)

Vertex AI clients (genai.BackendVertexAI with Project and Location) work
the same way. Each Execute call sends exactly one GenerateContent request.

# Options

  - WithModel: Override the default model (gemini-2.5-flash)
  - WithTemperature: Control randomness (0.0-2.0)
  - WithMaxOutputTokens: Set the response token limit
  - WithSystemInstructions: Provide a system prompt
  - WithResponseMIMEType: Request JSON or plain text replies
  - WithResponseSchema: Constrain the reply to a schema
*/
package googleexecutor
