package client

import (
	"fmt"
	"strings"
)

// maxErrorBody caps how much of a remote error body is echoed back
const maxErrorBody = 512

// TransportError reports that no HTTP response was received: DNS failure,
// refused connection, TLS failure, timeout or cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach provisioning API (%s %s): %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError reports a non-2xx response from the provisioning API.
type RemoteError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		return fmt.Sprintf("provisioning API request failed with status %d (%s %s)", e.StatusCode, e.Method, e.URL)
	}
	return fmt.Sprintf("provisioning API request failed with status %d (%s %s): %s", e.StatusCode, e.Method, e.URL, body)
}

// ResponseError reports a 2xx response whose body is not the JSON the
// operation expects.
type ResponseError struct {
	Method string
	URL    string
	Err    error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("malformed response from provisioning API (%s %s): %v", e.Method, e.URL, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
