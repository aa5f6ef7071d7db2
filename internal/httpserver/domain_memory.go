package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	memoryHTTP "resume-roast/internal/memory/delivery/http"
)

// setupMemoryDomain registers the read-only learning patterns API. The
// memory use case itself is built in main and shared with the debate domain.
func (srv HTTPServer) setupMemoryDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := memoryHTTP.New(srv.l, srv.memoryUC)
	memoryHTTP.RegisterRoutes(api.Group("/memory"), h)

	srv.l.Infof(ctx, "Memory domain registered")
	return nil
}
