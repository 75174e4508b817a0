package chi

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ErrorCode is the machine-readable error kind in ErrorResponse.
type ErrorCode string

// Error codes returned by the API.
const (
	ErrorCodeBadRequest           ErrorCode = "bad_request"
	ErrorCodeUnauthorized         ErrorCode = "unauthorized"
	ErrorCodeNotFound             ErrorCode = "not_found"
	ErrorCodeAlreadyExists        ErrorCode = "already_exists"
	ErrorCodeValidationFailed     ErrorCode = "validation_failed"
	ErrorCodeTransitionNotAllowed ErrorCode = "transition_not_allowed"
	ErrorCodeConfirmationRequired ErrorCode = "confirmation_required"
	ErrorCodeSubmitInProgress     ErrorCode = "submit_in_progress"
	ErrorCodeRemoteUnavailable    ErrorCode = "remote_unavailable"
	ErrorCodeInternalError        ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ListResponse wraps a projected listing.
type ListResponse[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Visible    int  `json:"visible"`
	Submitting bool `json:"submitting"`
}

// Number decodes a JSON number or a numeric string. Unparseable input becomes 0,
// the same as an empty form field.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number(parseNumber(b))
	return nil
}

// Int decodes a JSON number or a numeric string, truncated to an integer and
// clamped to the int range. Unparseable input becomes 0.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(b []byte) error {
	f := math.Trunc(parseNumber(b))
	switch {
	case f >= math.MaxInt:
		*i = math.MaxInt
	case f <= math.MinInt:
		*i = math.MinInt
	default:
		*i = Int(f)
	}
	return nil
}

func parseNumber(b []byte) float64 {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0
		}
		b = []byte(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func numberPtr(n *Number) *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}

func intPtr(n *Int) *int {
	if n == nil {
		return nil
	}
	i := int(*n)
	return &i
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func derefNumber(n *Number) float64 { return float64(deref(n)) }

func derefInt(n *Int) int { return int(deref(n)) }

// convertPtr maps an optional wire value to its domain type.
func convertPtr[W any, D any](p *W, fn func(W) D) *D {
	if p == nil {
		return nil
	}
	d := fn(*p)
	return &d
}
