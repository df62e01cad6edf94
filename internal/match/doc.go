// Package match provides identifier normalization and Levenshtein-based
// ranking of property names.
//
// Key functions:
//   - NormalizeIdent: folds identifiers for loose lookup ("customer_id" == "CustomerID")
//   - Levenshtein: edit distance between strings
//   - Suggest: "did you mean" candidates for an unknown property name
package match
