/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import "chainguard.dev/docgrader/rubric"

const (
	// DocumentColumn heads the document name column.
	DocumentColumn = rubric.DocumentColumn
	// TotalColumn heads the total score column.
	TotalColumn = rubric.TotalColumn
)

// Score is one rule's score for a document. OK is false when the evaluation
// failed and the cell is empty.
type Score struct {
	Value int
	OK    bool
}

// Cell returns the spreadsheet value of s: the score, or nil when empty.
func (s Score) Cell() any {
	if !s.OK {
		return nil
	}
	return s.Value
}

// Row holds the scores of one document, keyed by rule description.
type Row struct {
	Document string
	Scores   map[string]Score
}

// Total sums the obtained scores. It reports false when no rule was scored.
func (r Row) Total() (int, bool) {
	var total int
	var ok bool
	for _, s := range r.Scores {
		if s.OK {
			total += s.Value
			ok = true
		}
	}
	return total, ok
}

// Record returns the row's cells in Header order. Empty cells are nil.
func (r Row) Record(rules []rubric.Rule) []any {
	record := make([]any, 0, len(rules)+2)
	record = append(record, r.Document)
	for _, rule := range rules {
		record = append(record, r.Scores[rule.Description].Cell())
	}
	if total, ok := r.Total(); ok {
		record = append(record, total)
	} else {
		record = append(record, nil)
	}
	return record
}

// Header returns the report header for rules: the document name, one column
// per rule description in rule order, then the total.
func Header(rules []rubric.Rule) []string {
	header := make([]string, 0, len(rules)+2)
	header = append(header, DocumentColumn)
	header = append(header, rubric.Descriptions(rules)...)
	return append(header, TotalColumn)
}

// Records converts rows to report records.
func Records(rules []rubric.Rule, rows []Row) [][]any {
	records := make([][]any, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record(rules))
	}
	return records
}
