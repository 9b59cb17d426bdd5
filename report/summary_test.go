/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report_test

import (
	"bytes"
	"strings"
	"testing"

	"chainguard.dev/docgrader/report"
)

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	err := report.Summary(&buf, header, [][]any{
		{"a.docx", 2, 3, 5},
		{"b.pdf", nil, 1, 1},
	})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Document Name", "Total Score", "a.docx", "b.pdf"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<nil>") {
		t.Errorf("Summary() rendered nil cell:\n%s", out)
	}
}
