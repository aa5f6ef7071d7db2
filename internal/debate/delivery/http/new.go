package http

import (
	"github.com/gin-gonic/gin"

	"resume-roast/internal/debate"
	"resume-roast/pkg/log"
)

// Handler is the public interface for the debate HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Stream(c *gin.Context)
	Detail(c *gin.Context)
	Feedback(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc debate.UseCase
}

// New creates a new HTTP handler for the debate domain.
func New(l log.Logger, uc debate.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
