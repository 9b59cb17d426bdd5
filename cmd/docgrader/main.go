/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements docgrader, which scores every DOCX and PDF document
// in a folder against a rubric using an LLM judge and writes the scores to a
// spreadsheet.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/docgrader/agents/judge"
	"chainguard.dev/docgrader/grader"
	"chainguard.dev/docgrader/report"
	"chainguard.dev/docgrader/rubric"
	"github.com/chainguard-dev/clog"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/urfave/cli/v2"
)

// options are the command line settings of one run.
type options struct {
	Documents string
	Rules     string
	Output    string
	Summary   bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = clog.WithLogger(ctx, newLogger(os.Stdout, false))

	loadEnvFile(ctx, ".env")

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		clog.FatalContextf(ctx, "docgrader: %v", err)
	}
}

// newLogger returns a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *clog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return clog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadEnvFile loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func loadEnvFile(ctx context.Context, path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		clog.WarnContextf(ctx, "loading %s: %v", path, err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "docgrader",
		Usage: "score documents against a rubric with an LLM judge",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "documents",
				Aliases: []string{"d"},
				Usage:   "folder of .docx and .pdf documents to evaluate",
				Value:   "documents",
				EnvVars: []string{"DOCGRADER_DOCUMENTS"},
			},
			&cli.StringFlag{
				Name:    "rules",
				Aliases: []string{"r"},
				Usage:   "rule set file (JSON, or YAML with a .yaml/.yml extension)",
				Value:   "rules.json",
				EnvVars: []string{"DOCGRADER_RULES"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "spreadsheet to write",
				Value:   "evaluation.xlsx",
				EnvVars: []string{"DOCGRADER_OUTPUT"},
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "judge model, overriding JUDGE_MODEL (claude-* and gemini-* select those providers)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every rule evaluation",
				EnvVars: []string{"DOCGRADER_VERBOSE"},
			},
			&cli.BoolFlag{
				Name:    "no-summary",
				Usage:   "do not print the summary table",
				EnvVars: []string{"DOCGRADER_NO_SUMMARY"},
			},
		},
		Action: func(c *cli.Context) error {
			ctx := clog.WithLogger(c.Context, newLogger(c.App.Writer, c.Bool("verbose")))

			var cfg judge.Config
			if err := envconfig.Process(ctx, &cfg); err != nil {
				return fmt.Errorf("processing config: %w", err)
			}
			if c.IsSet("model") {
				cfg.Model = c.String("model")
			}

			return run(ctx, cfg, options{
				Documents: c.String("documents"),
				Rules:     c.String("rules"),
				Output:    c.String("output"),
				Summary:   !c.Bool("no-summary"),
			}, c.App.Writer)
		},
	}
}

// run evaluates every document and writes the report. The summary table, if
// requested, is printed to w.
func run(ctx context.Context, cfg judge.Config, opts options, w io.Writer) error {
	log := clog.FromContext(ctx)

	j, err := judge.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("creating judge: %w", err)
	}

	rules, err := rubric.Load(opts.Rules)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	log.With("rules", len(rules)).With("path", opts.Rules).Info("Loaded rules")

	rows, err := grader.New(j, rules).Folder(ctx, opts.Documents)
	if err != nil {
		return fmt.Errorf("evaluating documents: %w", err)
	}

	header := grader.Header(rules)
	records := grader.Records(rules, rows)
	if err := report.Write(opts.Output, header, records); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := report.ApplyColorScale(opts.Output, grader.TotalColumn); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	log.With("documents", len(rows)).With("path", opts.Output).Info("Evaluation complete")

	if opts.Summary {
		if err := report.Summary(w, header, records); err != nil {
			return fmt.Errorf("printing summary: %w", err)
		}
	}
	return nil
}
