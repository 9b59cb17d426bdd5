/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package judge asks a language model to score a document against one rubric
// rule.
//
// # Overview
//
// The judge package provides:
//   - A common Interface over OpenAI, Claude and Gemini judges
//   - Provider selection from the model name (claude-*, gemini-*, otherwise OpenAI)
//   - Strict decoding of the {"score", "justification"} reply
//   - Evaluate, which turns every failure into a Failed Result
//
// # Usage
//
//	j, err := judge.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	res := judge.Evaluate(ctx, j, rule, text)
//	if res.Status == judge.Scored {
//		fmt.Println(res.Score, res.Justification)
//	}
//
// # Scoring
//
// Scores are integers from 0 to 3. Documents are truncated to
// MaxDocumentChars characters before they are sent. Each call is a single
// attempt at temperature 0.
package judge
