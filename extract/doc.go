/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package extract converts office documents into plain text for grading.
//
// Two formats are supported, selected by file extension (case-insensitive):
//
//   - .docx: the text of every body paragraph, joined by newlines.
//   - .pdf: the plain text of every page, joined by newlines.
//
// PDF extraction never fails: read errors are logged and whatever text was
// recovered before the failure is returned. DOCX errors are returned to the
// caller.
package extract
