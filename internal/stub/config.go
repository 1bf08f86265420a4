// Package stub provides s3mstub, an in-memory emulator of the S3M streaming
// provisioning API.
//
// The stub serves the four endpoints s3mctl calls under the same path layout
// as the production service, checks the Authorization header against a
// configured token, and keeps clusters in memory with a fixed lifetime that
// extension resets. It exists so the CLI can be developed and tested without
// facility credentials; nothing is provisioned.
package stub

import (
	"fmt"
	"strings"
	"time"

	"github.com/concave-dev/s3mctl/internal/config"
	"github.com/concave-dev/s3mctl/internal/validate"
)

// Config holds the parameters of a stub server.
type Config struct {
	BindAddr string        // HTTP server bind address (e.g., "127.0.0.1")
	BindPort int           // HTTP server bind port, 0 picks a free port
	Prefix   string        // Route prefix, e.g. /olcf/v1alpha/streaming
	Token    string        // Expected Authorization value; empty accepts any non-empty value
	Lifetime time.Duration // Cluster lifetime after provisioning or extension

	// Now is the clock used for lifetimes; nil means time.Now
	Now func() time.Time
}

// DefaultConfig returns a loopback configuration on the default stub address.
func DefaultConfig() *Config {
	addr, err := validate.ParseBindAddress(config.DefaultStubAddr)
	if err != nil {
		panic(fmt.Sprintf("invalid default stub address %q: %v", config.DefaultStubAddr, err))
	}

	return &Config{
		BindAddr: addr.Host,
		BindPort: addr.Port,
		Prefix:   config.DefaultStubPrefix,
		Lifetime: config.DefaultClusterLifetime,
	}
}

// Validate checks the configuration before the server starts.
func (c *Config) Validate() error {
	if err := validate.ValidateField(c.BindAddr, "required,ip"); err != nil {
		return fmt.Errorf("invalid bind address %q: %w", c.BindAddr, err)
	}
	if err := validate.ValidateField(c.BindPort, "min=0,max=65535"); err != nil {
		return fmt.Errorf("invalid bind port %d: %w", c.BindPort, err)
	}
	if c.Prefix != "" && !strings.HasPrefix(c.Prefix, "/") {
		return fmt.Errorf("route prefix must start with '/': %q", c.Prefix)
	}
	if c.Lifetime <= 0 {
		return fmt.Errorf("cluster lifetime must be positive, got %v", c.Lifetime)
	}
	return nil
}

func (c *Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
