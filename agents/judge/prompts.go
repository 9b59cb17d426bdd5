/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"unicode/utf8"

	"chainguard.dev/docgrader/agents/promptbuilder"
)

// MaxDocumentChars is the number of characters of a document sent to the judge.
const MaxDocumentChars = 8000

// rulePrompt asks for a single rule evaluation
var rulePrompt = promptbuilder.MustNewPrompt(`You are an evaluator. Assess the following document based on this rule.

{{rule}}

Scoring Criteria:
{{criteria}}

<document>
{{document}}
</document>

Respond in strict JSON format:
{
  "score": 0-3,
  "justification": "Brief explanation of why this score was chosen"
}`)

// Truncate returns the first MaxDocumentChars characters of text. Shorter
// text is returned unmodified.
func Truncate(text string) string {
	if utf8.RuneCountInString(text) <= MaxDocumentChars {
		return text
	}
	n := 0
	for i := range text {
		if n == MaxDocumentChars {
			return text[:i]
		}
		n++
	}
	return text
}

// Bind implements promptbuilder.Bindable for Request
func (r *Request) Bind(prompt *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	var err error

	if prompt, err = prompt.BindXML("rule", struct {
		XMLName     struct{} `xml:"rule"`
		Name        string   `xml:"name"`
		Description string   `xml:"description"`
	}{
		Name:        r.Rule.Name,
		Description: r.Rule.Description,
	}); err != nil {
		return nil, err
	}

	if prompt, err = prompt.BindJSON("criteria", r.Rule.Criteria); err != nil {
		return nil, err
	}

	return prompt.BindText("document", Truncate(r.Document))
}
