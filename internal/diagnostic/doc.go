// Package diagnostic provides structured errors, warnings and infos about
// property path sets and profiles.
//
// Key capabilities:
//   - Malformed path errors (empty segments)
//   - Leaf/branch conflict warnings between paths sharing a prefix
//   - Unknown property errors with "did you mean" suggestions
package diagnostic
