/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder builds judge prompts from developer-written templates
and untrusted document content.

Templates contain {{name}} placeholders. Template text must be a string
literal; content that comes from rule files or documents is bound through an
encoder (XML or JSON) so it cannot introduce new placeholders or break out of
its section of the prompt:

	p := promptbuilder.MustNewPrompt(`Grade this:
	{{document}}`)

	p, err := p.BindXML("document", struct {
		XMLName struct{} `xml:"document"`
		Content string   `xml:",chardata"`
	}{Content: text})
	if err != nil {
		return err
	}
	prompt, err := p.Build()

Substitution is single pass: bound values are never rescanned for
placeholders. Prompts are immutable; every Bind method returns a new Prompt,
so a package-level template can be shared by concurrent callers.
*/
package promptbuilder
