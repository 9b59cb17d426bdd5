/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package rubric loads the rule sets that documents are graded against.
//
// A rule set is an ordered sequence of rules, each with a name, a description
// and free-form scoring criteria:
//
//	[
//	  {
//	    "name": "Clarity",
//	    "description": "Clarity check",
//	    "criteria": {"3": "Very clear", "0": "Unreadable"}
//	  }
//	]
//
// Rule sets may be written as JSON or YAML. The description is the rule's
// identity: it becomes the column header in the generated report, so it must
// be unique within a rule set.
//
// Criteria are kept as ordered JSON so that the judge sees them in the same
// order they were written, regardless of the source format.
package rubric
