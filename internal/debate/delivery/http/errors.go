package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"resume-roast/internal/agent"
	"resume-roast/internal/debate"
	"resume-roast/pkg/response"
)

var errSessionIDRequired = errors.New("session id is required")

// respondError translates domain errors into the JSON envelope. Unknown
// errors become an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, debate.ErrSessionNotFound),
		errors.Is(err, debate.ErrTurnNotFound):
		response.NotFound(c, err)
	case errors.Is(err, debate.ErrSessionTerminal),
		errors.Is(err, debate.ErrSessionRunning),
		errors.Is(err, debate.ErrInvalidAgentName),
		errors.Is(err, agent.ErrEmptyResume),
		errors.Is(err, agent.ErrEmptyJobDescription):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
