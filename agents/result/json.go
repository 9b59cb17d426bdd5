/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrEmpty is returned when a reply holds no JSON content.
var ErrEmpty = errors.New("empty response")

// ExtractJSON returns the JSON content of a model reply. The first ```json
// fenced block wins; otherwise the whole reply is returned with any bare
// fence markers and surrounding whitespace removed.
func ExtractJSON(reply string) string {
	lines := strings.Split(reply, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "```json" {
			continue
		}
		var body []string
		for _, l := range lines[i+1:] {
			if strings.TrimSpace(l) == "```" {
				break
			}
			body = append(body, l)
		}
		return strings.TrimSpace(strings.Join(body, "\n"))
	}

	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	return strings.TrimSpace(reply)
}

// Extract unmarshals the JSON content of reply into a T.
func Extract[T any](reply string) (T, error) {
	var out T
	content := ExtractJSON(reply)
	if content == "" {
		return out, ErrEmpty
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return out, err
	}
	return out, nil
}
