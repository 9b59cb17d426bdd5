/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives JSON schemas for structured model replies.
package schema

import "github.com/invopop/jsonschema"

// Generator wraps jsonschema.Reflector with the settings strict structured
// output requires: every field without omitempty is required, objects are
// closed, and definitions are inlined.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator returns a Generator with strict defaults.
func NewGenerator() *Generator {
	return &Generator{
		reflector: jsonschema.Reflector{
			ExpandedStruct:            true,
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		},
	}
}

// Reflect returns the schema for v without the $schema and $id keywords,
// which model APIs reject.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	s := g.reflector.Reflect(v)
	s.Version = ""
	s.ID = ""
	return s
}

// Reflect derives the schema for v with a default Generator.
func Reflect(v any) *jsonschema.Schema {
	return NewGenerator().Reflect(v)
}

// ReflectType reflects the schema of T.
func ReflectType[T any]() *jsonschema.Schema {
	var zero T
	return Reflect(&zero)
}
