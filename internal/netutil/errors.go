// Package netutil provides network error classification and listener binding
// for s3mctl and the s3mstub emulator.
//
// Errors are classified by type rather than by message so the checks behave
// the same across operating systems and Go versions:
//   - Address-in-use detection for the stub's listen address
//   - Connection-refused detection for an unreachable provisioning API
//   - Timeout detection for requests cut off by --timeout
package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError checks if an error indicates "address already in use"
// using proper error type checking rather than string matching.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError checks if an error indicates "connection refused".
// Used by the CLI to suggest checking the endpoint URLs when nothing listens
// at the configured host.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}

// IsTimeoutError reports whether err is a network timeout, including an
// http.Client deadline.
func IsTimeoutError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
