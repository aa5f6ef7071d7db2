package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	debateHTTP "resume-roast/internal/debate/delivery/http"
	"resume-roast/internal/debate/engine"
	debateRepo "resume-roast/internal/debate/repository/postgre"
	debateUC "resume-roast/internal/debate/usecase"
)

// setupDebateDomain initializes the debate domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv HTTPServer) setupDebateDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := debateRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase (with the streaming engine)
	eng := engine.New(srv.llm, srv.l)
	uc := debateUC.New(repo, eng, srv.memoryUC, srv.l)

	// 3. HTTP Handler
	h := debateHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/debate/...
	debateHTTP.RegisterRoutes(api.Group("/debate"), h)

	srv.l.Infof(ctx, "Debate domain registered")
	return nil
}
