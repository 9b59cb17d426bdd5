/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package extracttest writes minimal office documents for tests.
package extracttest

import (
	"archive/zip"
	"encoding/xml"
	"os"
	"strings"
	"testing"
)

const header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const footer = `<w:sectPr/></w:body></w:document>`

// WriteDOCX writes a DOCX file at path with one body paragraph per element
// of paragraphs.
func WriteDOCX(t testing.TB, path string, paragraphs ...string) {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t xml:space=\"preserve\">")
		if err := xml.EscapeText(&body, []byte(p)); err != nil {
			t.Fatalf("escaping paragraph: %v", err)
		}
		body.WriteString("</w:t></w:r></w:p>")
	}
	WriteDOCXBody(t, path, body.String())
}

// WriteDOCXBody writes a DOCX file at path whose w:body contains the raw
// WordprocessingML in body.
func WriteDOCXBody(t testing.TB, path, body string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("[Content_Types].xml")
	if err != nil {
		t.Fatalf("creating content types: %v", err)
	}
	if _, err := w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`)); err != nil {
		t.Fatalf("writing content types: %v", err)
	}
	w, err = zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating document part: %v", err)
	}
	if _, err := w.Write([]byte(header + body + footer)); err != nil {
		t.Fatalf("writing document part: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing docx: %v", err)
	}
}
