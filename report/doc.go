/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report writes evaluation rows to a spreadsheet and renders them as
// a console table.
//
// A record is one row of cells matching the header. Numeric cells are
// written as numbers and nil cells are left empty.
package report
