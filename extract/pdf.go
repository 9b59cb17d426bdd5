/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/ledongthuc/pdf"
)

// PDF returns the plain text of every page of the document at path, joined
// by newlines. On any failure it logs a warning and returns the text
// accumulated so far, which may be empty.
func PDF(ctx context.Context, path string) (text string) {
	log := clog.FromContext(ctx).With("path", path)

	var pages []string
	defer func() {
		// The parser panics on some malformed inputs.
		if r := recover(); r != nil {
			log.With("error", fmt.Sprint(r)).Warn("Error reading PDF")
			text = strings.Join(pages, "\n")
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		log.With("error", err).Warn("Error reading PDF")
		return ""
	}
	defer f.Close()

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			log.With("page", i).With("error", err).Warn("Error reading PDF")
			return strings.Join(pages, "\n")
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n")
}
