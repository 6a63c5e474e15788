package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIError is a non 2xx answer from the identity server. Description keeps
// the server supplied explanation so it can be shown to the administrator.
type APIError struct {
	StatusCode  int    `json:"status_code"`
	Code        string `json:"code,omitempty"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
	TraceID     string `json:"trace_id,omitempty"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString("identity server returned ")
	b.WriteString(strconv.Itoa(e.StatusCode))
	if len(e.Code) > 0 {
		b.WriteString(" (" + e.Code + ")")
	}
	if len(e.Message) > 0 {
		b.WriteString(": " + e.Message)
	}
	if len(e.Description) > 0 {
		b.WriteString(": " + e.Description)
	}
	return b.String()
}

// errorBody covers both the management API error shape and the SCIM one.
type errorBody struct {
	Code        string          `json:"code"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
	TraceID     string          `json:"traceId"`
	Detail      string          `json:"detail"`
	Status      json.RawMessage `json:"status"`
}

func newAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		apiErr.Message = resp.Status()
		return apiErr
	}

	apiErr.Code = body.Code
	apiErr.Message = body.Message
	apiErr.Description = body.Description
	apiErr.TraceID = body.TraceID

	if len(apiErr.Description) == 0 {
		apiErr.Description = body.Detail
	}
	if len(apiErr.Message) == 0 {
		apiErr.Message = resp.Status()
	}

	return apiErr
}

// Description returns the server description carried by err, if any.
func Description(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Description) > 0 {
		return apiErr.Description, true
	}
	return "", false
}

// IsNotFound reports whether err is a 404 from the identity server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

func wrap(operation string, err error) error {
	return fmt.Errorf("failed to %s: %w", operation, err)
}
