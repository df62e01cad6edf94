package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes reported by path linting.
const (
	CodeEmptyPath          = "empty_path"
	CodeEmptySegment       = "empty_segment"
	CodeInvalidIdentifier  = "invalid_identifier"
	CodeDuplicatePath      = "duplicate_path"
	CodeLeafBranchConflict = "leaf_branch_conflict"
	CodeUnknownProperty    = "unknown_property"
	CodeUnknownProfile     = "unknown_profile"
	CodeUnnamedProfile     = "unnamed_profile"
	CodeDuplicateProfile   = "duplicate_profile"
	CodeProfileCycle       = "profile_cycle"
)

// Diagnostics holds everything reported about one path set.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code identifies the kind of problem.
	Code string
	// Message is the human-readable description.
	Message string
	// Scope names the profile or type the path belongs to (if any).
	Scope string
	// Path is the dotted property path concerned (if any).
	Path string
	// Suggestions are likely intended names.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, scope, path string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Scope: scope, Path: path})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, scope, path string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Scope: scope, Path: path})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, scope, path string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Scope: scope, Path: path})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	return out
}

// Codes returns the codes of All, in the same order.
func (d *Diagnostics) Codes() []string {
	var out []string
	for _, diag := range d.All() {
		out = append(out, diag.Code)
	}

	return out
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Scope != "" {
		prefix = append(prefix, "["+d.Scope+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, fmt.Sprintf("%q", d.Path))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
