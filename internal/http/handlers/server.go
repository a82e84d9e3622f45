package handlers

import (
	"github.com/rogerio-castellano/product-manager/internal/auth"
	repo "github.com/rogerio-castellano/product-manager/internal/repo"
	"go.uber.org/zap"
)

// Server holds the dependencies shared by the HTTP handlers.
// Auth is nil when write routes are open.
type Server struct {
	Products repo.ProductRepository
	Metrics  repo.MetricsRepository
	Auth     *auth.Service
	Log      *zap.Logger
}

func NewServer(products repo.ProductRepository, metrics repo.MetricsRepository, authSvc *auth.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Products: products,
		Metrics:  metrics,
		Auth:     authSvc,
		Log:      log,
	}
}
