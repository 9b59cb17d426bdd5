/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report_test

import (
	"path/filepath"
	"testing"

	"chainguard.dev/docgrader/report"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var header = []string{"Document Name", "Clarity check", "Tone check", "Total Score"}

func open(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.xlsx")
	records := [][]any{
		{"a.docx", 2, 3, 5},
		{"b.pdf", nil, 1, 1},
		{"c.pdf", nil, nil, nil},
	}
	require.NoError(t, report.Write(path, header, records))

	f := open(t, path)
	rows, err := f.GetRows(report.Sheet)
	require.NoError(t, err)

	want := [][]string{
		header,
		{"a.docx", "2", "3", "5"},
		{"b.pdf", "", "1", "1"},
		{"c.pdf"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	styleID, err := f.GetCellStyle(report.Sheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	require.True(t, style.Font.Bold)
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.xlsx")
	require.NoError(t, report.Write(path, header, nil))

	rows, err := open(t, path).GetRows(report.Sheet)
	require.NoError(t, err)
	if diff := cmp.Diff([][]string{header}, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyColorScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.xlsx")
	require.NoError(t, report.Write(path, header, [][]any{
		{"a.docx", 2, 3, 5},
		{"b.pdf", 0, 1, 1},
		{"c.pdf", 1, 1, 2},
	}))
	require.NoError(t, report.ApplyColorScale(path, "Total Score"))

	formats, err := open(t, path).GetConditionalFormats(report.Sheet)
	require.NoError(t, err)

	opts, ok := formats["D2:D4"]
	require.True(t, ok, "no conditional format on D2:D4: %v", formats)
	require.Len(t, opts, 1)
	require.Equal(t, "3_color_scale", opts[0].Type)
	require.Equal(t, "min", opts[0].MinType)
	require.Equal(t, "percentile", opts[0].MidType)
	require.Equal(t, "50", opts[0].MidValue)
	require.Equal(t, "max", opts[0].MaxType)
}

func TestApplyColorScaleAbsentColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.xlsx")
	require.NoError(t, report.Write(path, []string{"Document Name", "Clarity check"}, [][]any{{"a.docx", 2}}))
	require.NoError(t, report.ApplyColorScale(path, "Total Score"))

	f := open(t, path)
	formats, err := f.GetConditionalFormats(report.Sheet)
	require.NoError(t, err)
	require.Empty(t, formats)

	rows, err := f.GetRows(report.Sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestApplyColorScaleNoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.xlsx")
	require.NoError(t, report.Write(path, header, nil))
	require.NoError(t, report.ApplyColorScale(path, "Total Score"))

	formats, err := open(t, path).GetConditionalFormats(report.Sheet)
	require.NoError(t, err)
	require.Empty(t, formats)
}

func TestApplyColorScaleMissingFile(t *testing.T) {
	require.Error(t, report.ApplyColorScale(filepath.Join(t.TempDir(), "missing.xlsx"), "Total Score"))
}
