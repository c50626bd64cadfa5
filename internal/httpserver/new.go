package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rima-workspace/internal/middleware"
	workspaceHTTP "rima-workspace/internal/workspace/delivery/http"
	"rima-workspace/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Workspace domain
	workspaceHandler workspaceHTTP.Handler
	middleware       middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	WorkspaceHandler workspaceHTTP.Handler
	Middleware       middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		workspaceHandler: cfg.WorkspaceHandler,
		middleware:       cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.workspaceHandler == nil {
		return errors.New("workspace handler is required")
	}
	return nil
}
