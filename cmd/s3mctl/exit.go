package main

import (
	"errors"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/client"
	"github.com/concave-dev/s3mctl/internal/settings"
)

// Exit statuses
const (
	ExitOK        = 0
	ExitSettings  = 1 // settings file missing, unparsable or lacking a key
	ExitUsage     = 2 // bad flags or arguments
	ExitRemote    = 3 // the API answered with a non-2xx status
	ExitTransport = 4 // the API could not be reached
	ExitResponse  = 5 // the API answered 2xx with an unusable body
)

// ExitCode maps an error returned by command execution to the process exit
// status. Errors not produced by the settings or client packages come from
// cobra or argument validation and count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		loadErr      *settings.LoadError
		keyErr       *settings.KeyError
		remoteErr    *client.RemoteError
		transportErr *client.TransportError
		responseErr  *client.ResponseError
	)

	switch {
	case errors.As(err, &loadErr), errors.As(err, &keyErr):
		return ExitSettings
	case errors.As(err, &remoteErr):
		return ExitRemote
	case errors.As(err, &transportErr):
		return ExitTransport
	case errors.As(err, &responseErr):
		return ExitResponse
	default:
		return ExitUsage
	}
}
