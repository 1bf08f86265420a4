// Package validate provides input validation utilities for s3mctl and the
// s3mstub emulator, built on the go-playground/validator library.
//
// VALIDATION COVERAGE:
//   - Listen addresses: "host:port" parsing for the stub server
//   - Cluster names: path-segment safety for names placed into request URLs
//   - Settings values: required keys and expanded endpoint URLs
//   - Flag values: timeouts and other numeric CLI options
//
// Used at every entry point that turns user input into a request, so bad
// input is rejected before anything goes over the network.
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// NetworkAddress represents a validated "host:port" listen address.
type NetworkAddress struct {
	Host string `validate:"required,ip"`
	Port int    `validate:"min=0,max=65535"`
}

// String returns the network address in standard "host:port" format.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// ParseBindAddress parses and validates a "host:port" address string. The host
// must be a literal IP address; port 0 is accepted and lets the OS choose.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ValidateField validates a single value against validator tags without
// requiring a struct definition.
//
// Example: ValidateField("https://s3m.example.org/v1", "required,url")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
