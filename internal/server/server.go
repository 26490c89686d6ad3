package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wraps the HTTP server around the gin router.
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New creates a new server instance.
func New(router *gin.Engine, addr string, logger *zap.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		logger: logger,
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
