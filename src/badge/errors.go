package badge

import (
	"errors"
	"fmt"
	"strings"
)

// Status classifies a badge generation failure.
type Status string

// Known failure kinds. Other values are accepted as extension kinds and are
// surfaced the same way.
const (
	StatusInvalidInput       Status = "INVALID_INPUT"
	StatusUnsupportedVariant Status = "UNSUPPORTED_VARIANT"
	StatusConfigurationError Status = "CONFIGURATION_ERROR"
)

// Known reports whether s is one of the built-in kinds.
func (s Status) Known() bool {
	switch s {
	case StatusInvalidInput, StatusUnsupportedVariant, StatusConfigurationError:
		return true
	}
	return false
}

// ErrorContext carries diagnostics attached to an Error. It never changes
// control flow.
type ErrorContext struct {
	RowID   string         `json:"rowId,omitempty"`   // caller's identifier for the badge being built
	Variant string         `json:"variant,omitempty"` // variant that raised the error
	Details map[string]any `json:"details,omitempty"`
}

// Error is the single error type raised by the badge packages.
type Error struct {
	Status  Status
	Message string
	Context *ErrorContext
}

// NewError returns an *Error with the given status, message and context.
func NewError(status Status, message string, ctx *ErrorContext) *Error {
	return &Error{Status: status, Message: message, Context: ctx}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Status))
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Context == nil {
		return b.String()
	}
	var tags []string
	if e.Context.Variant != "" {
		tags = append(tags, "variant="+e.Context.Variant)
	}
	if e.Context.RowID != "" {
		tags = append(tags, "row="+e.Context.RowID)
	}
	if len(tags) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(tags, ", "))
	}
	return b.String()
}

// StatusOf returns the Status of the first *Error in err's chain, or "" when
// there is none.
func StatusOf(err error) Status {
	var be *Error
	if errors.As(err, &be) {
		return be.Status
	}
	return ""
}

// IsStatus reports whether err's chain holds an *Error with the given status.
func IsStatus(err error, status Status) bool {
	return err != nil && StatusOf(err) == status
}

// ApplyVariantContext tags ctx with the variant that is building the badge.
// A context that already names a variant is returned unchanged; otherwise a
// copy is returned so the caller's value is never modified.
func ApplyVariantContext(ctx *ErrorContext, variant string) *ErrorContext {
	if ctx == nil {
		return &ErrorContext{Variant: variant}
	}
	if ctx.Variant != "" {
		return ctx
	}
	tagged := *ctx
	tagged.Variant = variant
	return &tagged
}
