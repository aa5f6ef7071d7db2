package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-roast/pkg/response"
)

// Patterns godoc
// @Summary     List learning patterns
// @Description Returns aggregated feedback patterns ordered by frequency, then recency.
// @Tags        Memory
// @Produce     json
// @Param       limit query int false "Maximum patterns to return (default: 10)"
// @Success     200 {object} patternsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memory/patterns [GET]
func (h *handler) Patterns(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, errInvalidLimit)
			return
		}
		limit = parsed
	}

	patterns, err := h.uc.TopPatterns(ctx, limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.TopPatterns: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newPatternsResp(patterns))
}
