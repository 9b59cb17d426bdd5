/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for files that are neither DOCX nor PDF.
var ErrUnsupported = errors.New("unsupported document format")

// Kind identifies a supported document format.
type Kind string

const (
	// KindDOCX is an Office Open XML word processing document.
	KindDOCX Kind = "docx"
	// KindPDF is a Portable Document Format file.
	KindPDF Kind = "pdf"
)

// KindOf returns the document kind for a file name, or "" when unsupported.
func KindOf(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".docx":
		return KindDOCX
	case ".pdf":
		return KindPDF
	default:
		return ""
	}
}

// Supported reports whether name has a supported extension.
func Supported(name string) bool {
	return KindOf(name) != ""
}

// File extracts the text of the document at path.
func File(ctx context.Context, path string) (string, error) {
	switch KindOf(path) {
	case KindDOCX:
		return DOCX(path)
	case KindPDF:
		return PDF(ctx, path), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
}
