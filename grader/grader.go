/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"chainguard.dev/docgrader/agents/judge"
	"chainguard.dev/docgrader/extract"
	"chainguard.dev/docgrader/rubric"
	"github.com/chainguard-dev/clog"
)

// Grader evaluates documents against a fixed rule set, one rule at a time.
type Grader struct {
	judge judge.Interface
	rules []rubric.Rule
}

// New creates a Grader that asks j to score each of rules.
func New(j judge.Interface, rules []rubric.Rule) *Grader {
	return &Grader{judge: j, rules: rules}
}

// Rules returns the rule set in evaluation order.
func (g *Grader) Rules() []rubric.Rule {
	return g.rules
}

// Document scores text against every rule, in rule order. Failed
// evaluations yield empty scores.
func (g *Grader) Document(ctx context.Context, text string) map[string]Score {
	scores := make(map[string]Score, len(g.rules))
	for _, rule := range g.rules {
		res := judge.Evaluate(ctx, g.judge, rule, text)
		clog.FromContext(ctx).With("rule", rule.Name).
			With("status", res.Status).
			With("score", res.Score).
			With("justification", res.Justification).
			Debug("Evaluated rule")

		var s Score
		if res.Status == judge.Scored {
			s = Score{Value: res.Score, OK: true}
		}
		scores[rule.Description] = s
	}
	return scores
}

// File extracts and scores the document at path.
func (g *Grader) File(ctx context.Context, path string) (Row, error) {
	text, err := extract.File(ctx, path)
	if err != nil {
		return Row{}, fmt.Errorf("extracting %s: %w", filepath.Base(path), err)
	}
	return Row{
		Document: filepath.Base(path),
		Scores:   g.Document(ctx, text),
	}, nil
}

// Folder scores every supported document directly inside dir, in name
// order. Subdirectories and other files are skipped.
func (g *Grader) Folder(ctx context.Context, dir string) ([]Row, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading documents folder: %w", err)
	}

	var rows []Row
	for _, entry := range entries {
		if entry.IsDir() || !extract.Supported(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		log := clog.FromContext(ctx).With("document", entry.Name())
		log.Info("Evaluating document")

		row, err := g.File(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			return rows, err
		}
		if total, ok := row.Total(); ok {
			log.With("total", total).Info("Evaluated document")
		} else {
			log.Warn("No rule could be scored")
		}
		rows = append(rows, row)
	}
	return rows, nil
}
