package domain

import "errors"

var (
	// ErrInvalidCredentials is returned when the upstream rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionNotFound covers missing, expired and logged-out sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrForbidden is returned when a role has no access to a screen or action.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound is returned when the upstream reports a missing record.
	ErrNotFound = errors.New("record not found")
	// ErrPageOutOfRange is returned for page changes outside [1, totalPages].
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrInvalidLimit is returned for page sizes outside the allowed set.
	ErrInvalidLimit = errors.New("invalid page size")
	// ErrConfirmationRequired guards destructive calls: deletes must carry an
	// explicit confirmation before any upstream request is issued.
	ErrConfirmationRequired = errors.New("confirmation required")
	// ErrNoOpenForm is returned when a form action arrives with no open draft.
	ErrNoOpenForm = errors.New("no form is open")
)

// UpstreamError carries a message the backend returned on a rejected call.
// The message is shown to the user verbatim (or the generic fallback when empty).
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return "upstream request rejected"
	}
	return e.Message
}

// ShapeError reports an upstream response that did not match the expected
// envelope. It is distinct from UpstreamError so that contract breakage is
// never mistaken for an ordinary rejection.
type ShapeError struct {
	Endpoint string
	Reason   string
}

func (e *ShapeError) Error() string {
	return "malformed response from " + e.Endpoint + ": " + e.Reason
}

// ValidationError aggregates field-level validation failures for one draft.
// Submission is blocked while any are present; nothing is sent upstream.
type ValidationError struct {
	Fields []FieldError
}

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := e.Fields[0].Message
	for _, f := range e.Fields[1:] {
		msg += "; " + f.Message
	}
	return msg
}
