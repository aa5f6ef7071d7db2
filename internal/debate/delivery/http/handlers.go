package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-roast/pkg/response"
)

// Create godoc
// @Summary     Create a debate session
// @Description Registers a resume and job description pair and returns a session ID for streaming.
// @Tags        Debate
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Resume and job description"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/debate/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Stream godoc
// @Summary     Stream the debate
// @Description Runs the Critic, Advocate and Realist in order, streaming each agent's output as server-sent events.
// @Tags        Debate
// @Produce     text/event-stream
// @Param       id path string true "Session ID"
// @Success     200 {string} string "SSE stream of debate events"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/debate/sessions/{id}/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("id")
	if sessionID == "" {
		response.Error(c, errSessionIDRequired)
		return
	}

	events, err := h.uc.StreamSession(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.StreamSession: %v", err)
		h.respondError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	for ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			h.l.Errorf(ctx, "marshal event: %v", err)
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
		c.Writer.Flush()
	}
}

// Detail godoc
// @Summary     Get session detail
// @Description Returns the session and its recorded agent turns in debate order.
// @Tags        Debate
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/debate/sessions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("id")
	if sessionID == "" {
		response.Error(c, errSessionIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Feedback godoc
// @Summary     Submit feedback on an agent turn
// @Description Stores thumbs-up/down on a recorded turn and folds it into the learning memory.
// @Tags        Debate
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Feedback"
// @Success     200 {object} feedbackResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/debate/feedback [POST]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ApplyFeedback(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ApplyFeedback: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newFeedbackResp(output))
}
