package diagnostic

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mapping-generator/internal/errors"
)

// Diagnostic codes.
const (
	CodeUnknownRoot        = "unknown-root"
	CodeAmbiguousRoot      = "ambiguous-root"
	CodeUnresolvedType     = "unresolved-type"
	CodeMissingType        = "missing-type"
	CodeOpaqueGeneric      = "opaque-generic"
	CodeDuplicateMapping   = "duplicate-mapping"
	CodeInvalidName        = "invalid-name"
	CodeInvalidTransform   = "invalid-transform"
	CodeDictionaryTypes    = "dictionary-types"
	CodeSquash             = "squash"
	CodeEnumWithProperties = "enum-with-properties"
	CodeUnusedTransform    = "unused-transform"
)

// Diagnostics holds the findings of discovery or mapping validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Subject is the type (mapping) the finding is about, if any.
	Subject string
	// Property is the property the finding is about, if any.
	Property string
	// Suggestions are potential fixes or alternatives.
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

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject, property string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, subject, property, suggestions))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject, property string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, subject, property, nil))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject, property string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, subject, property, nil))
}

func newDiagnostic(sev Severity, code, message, subject, property string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Subject:     subject,
		Property:    property,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// ByCode returns every diagnostic, of any severity, carrying code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// Err returns a combined error from all error diagnostics, or nil.
// The result is marked with mark so callers can classify it with errors.Is,
// and every suggestion becomes a hint.
func (d *Diagnostics) Err(mark error) error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	err := errors.Mark(errors.New(strings.Join(parts, "; ")), mark)

	for _, e := range d.Errors {
		if len(e.Suggestions) > 0 {
			err = errors.WithHintf(err, "%s: did you mean %s?", e.Subject, strings.Join(e.Suggestions, ", "))
		}
	}

	return err
}

// Log writes warnings and infos to the logger. Errors are returned, not logged.
func (d *Diagnostics) Log(log *zap.SugaredLogger) {
	for _, w := range d.Warnings {
		log.Warnw(w.Message, w.fields()...)
	}

	for _, i := range d.Infos {
		log.Debugw(i.Message, i.fields()...)
	}
}

func (d Diagnostic) fields() []any {
	fields := []any{"code", d.Code}
	if d.Subject != "" {
		fields = append(fields, "type", d.Subject)
	}

	if d.Property != "" {
		fields = append(fields, "property", d.Property)
	}

	return fields
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	if d.Property != "" {
		prefix = append(prefix, d.Property)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
