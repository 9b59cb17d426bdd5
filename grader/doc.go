/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package grader scores documents against every rule of a rubric and
// aggregates the results into report rows.
package grader
