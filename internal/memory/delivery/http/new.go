package http

import (
	"github.com/gin-gonic/gin"

	"resume-roast/internal/memory"
	"resume-roast/pkg/log"
)

// Handler is the public interface for the memory HTTP delivery layer.
type Handler interface {
	Patterns(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc memory.UseCase
}

// New creates a new HTTP handler for the memory domain.
func New(l log.Logger, uc memory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
