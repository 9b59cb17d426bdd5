/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package result pulls JSON replies out of model output.

Models asked for "strict JSON" still occasionally wrap the object in a
markdown fence or add a sentence around it. ExtractJSON strips that framing:

	ExtractJSON("```json\n{\"score\": 2}\n```") // {"score": 2}
	ExtractJSON("  {\"score\": 2}  ")           // {"score": 2}

Extract combines ExtractJSON with json.Unmarshal into a caller-chosen type,
so types with their own UnmarshalJSON can enforce the reply contract.
*/
package result
