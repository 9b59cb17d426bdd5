/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rubric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Rule is a single named scoring criterion.
type Rule struct {
	// Name is the human readable rule name shown to the judge.
	Name string `json:"name" yaml:"name"`

	// Description identifies the rule and is used as the report column key.
	Description string `json:"description" yaml:"description"`

	// Criteria is the free-form grading guidance for the rule.
	Criteria Criteria `json:"criteria" yaml:"criteria"`
}

// Criteria holds arbitrary structured grading guidance as JSON, preserving
// the key order of the rule file.
type Criteria struct {
	raw json.RawMessage
}

// NewCriteria marshals v into Criteria.
func NewCriteria(v any) (Criteria, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Criteria{}, fmt.Errorf("marshaling criteria: %w", err)
	}
	return Criteria{raw: b}, nil
}

// IsZero reports whether no criteria were supplied.
func (c Criteria) IsZero() bool {
	return len(c.raw) == 0 || bytes.Equal(c.raw, []byte("null"))
}

// MarshalJSON implements json.Marshaler.
func (c Criteria) MarshalJSON() ([]byte, error) {
	if len(c.raw) == 0 {
		return []byte("null"), nil
	}
	return c.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Criteria) UnmarshalJSON(data []byte) error {
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler by converting the node tree to
// JSON in document order.
func (c *Criteria) UnmarshalYAML(node *yaml.Node) error {
	var buf bytes.Buffer
	if err := writeJSON(&buf, node); err != nil {
		return err
	}
	c.raw = buf.Bytes()
	return nil
}

// String returns the criteria as indented JSON.
func (c Criteria) String() string {
	if c.IsZero() {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, c.raw, "", "  "); err != nil {
		return string(c.raw)
	}
	return buf.String()
}

func writeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, node.Content[0])

	case yaml.AliasNode:
		return writeJSON(buf, node.Alias)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Quote(node.Content[i].Value))
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: decoding scalar: %w", node.Line, err)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("line %d: encoding scalar: %w", node.Line, err)
		}
		buf.Write(b)
		return nil

	default:
		return fmt.Errorf("line %d: unsupported yaml node kind %d", node.Line, node.Kind)
	}
}
