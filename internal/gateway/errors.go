package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorKind is the coarse classification of a backend failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindTransport
)

// Reason narrows a validation error to a specific user-correctable cause.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonDeckEmpty
	ReasonNotEnoughKeys
)

// Error is a classified backend failure.
type Error struct {
	Kind    ErrorKind
	Reason  Reason
	Status  int    // HTTP status, 0 for transport faults
	Message string // raw backend message
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return e.Message
}

// classificationTable maps backend message substrings to error kinds. The
// backend has no structured error codes, so this table is the single
// place where its message texts are interpreted. Extend it here, never in
// individual handlers.
var classificationTable = []struct {
	substr string
	kind   ErrorKind
	reason Reason
}{
	{"deck is empty", KindValidation, ReasonDeckEmpty},
	{"not enough keys", KindValidation, ReasonNotEnoughKeys},
	{"not found", KindNotFound, ReasonNone},
	{"already", KindConflict, ReasonNone},
}

// Classify builds a classified error from a non-2xx backend response.
// Bodies are usually {"error": "..."}; the bare body is kept when that
// shape does not parse.
func Classify(status int, body string) *Error {
	msg := strings.TrimSpace(body)

	var wrapped struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(msg), &wrapped); err == nil && wrapped.Error != "" {
		msg = wrapped.Error
	}

	for _, row := range classificationTable {
		if strings.Contains(msg, row.substr) {
			return &Error{Kind: row.kind, Reason: row.reason, Status: status, Message: msg}
		}
	}
	return &Error{Kind: KindUnknown, Status: status, Message: msg}
}

// TransportError wraps a network or decode failure.
func TransportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error()}
}
