package hubspot

import (
	"errors"
	"fmt"
)

// Kind classifies an adapter failure. Callers are expected to branch on the
// kind rather than parse messages.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindRateLimit  Kind = "rate_limit"
	KindUpstream   Kind = "upstream"
	KindTransport  Kind = "transport"
)

// Error is the failure type returned by every Client operation. Status is the
// HTTP status code when the remote system answered, zero for transport-level
// failures. Body carries the remote error payload verbatim when one exists.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Body    string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("hubspot %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("hubspot %s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is (or wraps) an adapter Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func validationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// classifyStatus maps a non-2xx HubSpot response to the error taxonomy. The
// remote body is surfaced verbatim so the caller can relay HubSpot's own
// message. No status triggers a retry here; recovery is the caller's call.
func classifyStatus(status int, body string) *Error {
	switch {
	case status == 401:
		return &Error{Kind: KindAuth, Status: status, Message: "authentication failed, check HUBSPOT_ACCESS_TOKEN", Body: body}
	case status == 404:
		return &Error{Kind: KindNotFound, Status: status, Message: "record not found", Body: body}
	case status == 429:
		return &Error{Kind: KindRateLimit, Status: status, Message: "rate limited, retry after a delay", Body: body}
	case status >= 500:
		return &Error{Kind: KindUpstream, Status: status, Message: "hubspot API error", Body: body}
	default:
		return &Error{Kind: KindValidation, Status: status, Message: body, Body: body}
	}
}
