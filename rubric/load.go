/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rubric

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateDescription is returned when two rules share a description.
	ErrDuplicateDescription = errors.New("duplicate rule description")

	// ErrReservedDescription is returned when a rule description names one
	// of the fixed report columns.
	ErrReservedDescription = errors.New("reserved rule description")
)

// Report columns that surround the per-rule columns. Rule descriptions may
// not use them.
const (
	DocumentColumn = "Document Name"
	TotalColumn    = "Total Score"
)

// Format is the encoding of a rule file.
type Format string

const (
	// JSON rule files are the default.
	JSON Format = "json"
	// YAML rule files use the .yaml or .yml extension.
	YAML Format = "yaml"
)

// FormatOf returns the rule file format implied by the path's extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Load reads and parses the rule file at path.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	rules, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rules, nil
}

// Parse decodes a rule set. The shape of each rule is not validated beyond
// what decoding requires, but descriptions must be unique.
func Parse(data []byte, format Format) ([]Rule, error) {
	var rules []Rule
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return nil, err
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&rules); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown rule format %q", format)
	}

	seen := make(map[string]string, len(rules))
	for _, r := range rules {
		if r.Description == DocumentColumn || r.Description == TotalColumn {
			return nil, fmt.Errorf("%w %q: rule %q", ErrReservedDescription, r.Description, r.Name)
		}
		if prev, ok := seen[r.Description]; ok {
			return nil, fmt.Errorf("%w %q: rules %q and %q", ErrDuplicateDescription, r.Description, prev, r.Name)
		}
		seen[r.Description] = r.Name
	}
	return rules, nil
}

// Descriptions returns the rule descriptions in rule order.
func Descriptions(rules []Rule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Description)
	}
	return out
}
