/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
)

type binding interface {
	value() (string, error)
}

type unboundBinding string

func (u unboundBinding) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", string(u))
}

type literalBinding string

func (l literalBinding) value() (string, error) {
	return string(l), nil
}

type textBinding string

func (t textBinding) value() (string, error) {
	return string(t), nil
}

type xmlBinding struct {
	data any
}

func (x xmlBinding) value() (string, error) {
	b, err := xml.MarshalIndent(x.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return string(b), nil
}

type jsonBinding struct {
	data any
}

func (j jsonBinding) value() (string, error) {
	// HTML escaping would turn "<" and "&" into \u003c and \u0026.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j.data); err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
