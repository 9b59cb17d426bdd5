/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"errors"

	"chainguard.dev/docgrader/agents/metrics"
	"chainguard.dev/docgrader/rubric"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Status is the outcome of one rule evaluation.
type Status int

const (
	// Failed means no score was obtained.
	Failed Status = iota
	// Scored means the judge returned a valid score.
	Scored
)

func (s Status) String() string {
	switch s {
	case Scored:
		return "scored"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailurePrefix starts the justification of every Failed result.
const FailurePrefix = "Evaluation failed: "

// Result is the outcome of evaluating one document against one rule.
type Result struct {
	Status Status

	// Score is only meaningful when Status is Scored.
	Score int

	// Justification is the judge's explanation, or the failure reason.
	Justification string
}

var (
	tracer      = otel.Tracer("chainguard.dev/docgrader/agents/judge")
	evalMetrics = metrics.NewGenAI(metrics.MeterName)
)

// Evaluate asks j to score text against rule. It never fails: any error from
// the judge is logged and reported as a Failed result.
func Evaluate(ctx context.Context, j Interface, rule rubric.Rule, text string) Result {
	ctx, span := tracer.Start(ctx, "judge.Evaluate", trace.WithAttributes(
		attribute.String("rule.name", rule.Name),
		attribute.Int("document.length", len(text)),
	))
	defer span.End()

	res, err := evaluate(ctx, j, rule, text)
	if err != nil {
		clog.FromContext(ctx).With("rule", rule.Name).With("error", err).Warn("Error evaluating rule")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		evalMetrics.RecordEvaluation(ctx, rule.Name, Failed.String())
		return Result{Status: Failed, Justification: FailurePrefix + err.Error()}
	}

	span.SetAttributes(attribute.Int("score", res.Score))
	evalMetrics.RecordEvaluation(ctx, rule.Name, Scored.String())
	return res
}

func evaluate(ctx context.Context, j Interface, rule rubric.Rule, text string) (Result, error) {
	judgement, err := j.Judge(ctx, &Request{Rule: rule, Document: text})
	if err != nil {
		return Result{}, err
	}
	if judgement == nil {
		return Result{}, errors.New("judge returned nil judgement")
	}
	if err := judgement.Validate(); err != nil {
		return Result{}, err
	}
	return Result{
		Status:        Scored,
		Score:         judgement.Score,
		Justification: judgement.Justification,
	}, nil
}
