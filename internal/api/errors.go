package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	appErrors "ticketdesk/internal/errors"
)

// ErrMockNotImplemented is returned when a MockClient method lacks an override.
var ErrMockNotImplemented = errors.New("api.MockClient: method not implemented")

// RejectedError is returned when the backend answers with a non-2xx status.
type RejectedError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *RejectedError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("backend rejected request: status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend rejected request: status %d: %s", e.StatusCode, compactJSON(e.Body))
}

// Unwrap exposes the structured code so appErrors.IsCode works.
func (e *RejectedError) Unwrap() error {
	return appErrors.New(appErrors.CodeRejected, "", nil)
}

func networkError(op string, err error) error {
	return appErrors.New(appErrors.CodeNetwork, fmt.Sprintf("%s: %v", op, err), err)
}

func decodeError(op string, err error) error {
	return appErrors.New(appErrors.CodeDecode, fmt.Sprintf("decode %s response: %v", op, err), err)
}

// compactJSON strips insignificant whitespace. Payloads that are not valid
// JSON are returned as-is.
func compactJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}
