package stub

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/concave-dev/s3mctl/internal/netutil"
	"github.com/gin-gonic/gin"
)

// Server is the stub HTTP server.
type Server struct {
	config     *Config
	registry   *Registry
	httpServer *http.Server
	listener   net.Listener
	startTime  time.Time
}

// NewServer creates a stub server with an empty registry.
func NewServer(config *Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Set Gin to release mode; tests switch to TestMode themselves
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		config:    config,
		registry:  NewRegistry(config.Lifetime, config.now),
		startTime: time.Now(),
	}, nil
}

// Handler builds the router. Exposed so tests can drive the API through
// httptest without binding a port.
func (s *Server) Handler() http.Handler {
	router := gin.New()

	gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
	gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")

	router.Use(s.loggingMiddleware())
	router.Use(gin.Recovery())

	s.setupRoutes(router)
	return router
}

// Start binds the listen address and serves in the background.
func (s *Server) Start() error {
	logging.Info("Starting S3M API stub on %s%s",
		net.JoinHostPort(s.config.BindAddr, strconv.Itoa(s.config.BindPort)), s.config.Prefix)

	listener, err := netutil.BindTCP(s.config.BindAddr, s.config.BindPort)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("S3M API stub listening on http://%s%s", listener.Addr(), s.config.Prefix)
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down S3M API stub...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
