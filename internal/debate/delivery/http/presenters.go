package http

import (
	"time"

	"resume-roast/internal/debate"
	"resume-roast/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	ResumeText     string `json:"resume_text"     binding:"required,min=1"`
	JobDescription string `json:"job_description" binding:"required,min=10,max=10000"`
}

func (r createReq) toInput() debate.CreateSessionInput {
	return debate.CreateSessionInput{
		ResumeText:     r.ResumeText,
		JobDescription: r.JobDescription,
	}
}

type feedbackReq struct {
	SessionID    string `json:"session_id" binding:"required"`
	AgentName    string `json:"agent_name" binding:"required"`
	ThumbsUp     *bool  `json:"thumbs_up"  binding:"required"`
	FeedbackText string `json:"feedback_text" binding:"max=2000"`
}

func (r feedbackReq) toInput() debate.ApplyFeedbackInput {
	return debate.ApplyFeedbackInput{
		SessionID:    r.SessionID,
		AgentName:    r.AgentName,
		ThumbsUp:     *r.ThumbsUp,
		FeedbackText: r.FeedbackText,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	JobDescription string     `json:"job_description"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func newSessionResp(sess model.Session) sessionResp {
	return sessionResp{
		ID:             sess.ID,
		Status:         string(sess.Status),
		JobDescription: sess.JobDescription,
		CreatedAt:      sess.CreatedAt,
		CompletedAt:    sess.CompletedAt,
	}
}

type turnResp struct {
	ID           string    `json:"id"`
	AgentName    string    `json:"agent_name"`
	Text         string    `json:"response_text"`
	Order        int       `json:"order"`
	ThumbsUp     *bool     `json:"thumbs_up,omitempty"`
	FeedbackText *string   `json:"feedback_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newTurnResp(turn model.AgentTurn) turnResp {
	return turnResp{
		ID:           turn.ID,
		AgentName:    turn.AgentName,
		Text:         turn.Text,
		Order:        turn.Order,
		ThumbsUp:     turn.ThumbsUp,
		FeedbackText: turn.FeedbackText,
		CreatedAt:    turn.CreatedAt,
	}
}

type createResp struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (h *handler) newCreateResp(out debate.CreateSessionOutput) createResp {
	return createResp{
		SessionID: out.Session.ID,
		Message:   "Session created. Use session_id to stream agent responses.",
	}
}

type detailResp struct {
	Session sessionResp `json:"session"`
	Turns   []turnResp  `json:"turns"`
}

func (h *handler) newDetailResp(out debate.SessionDetailOutput) detailResp {
	turns := make([]turnResp, len(out.Turns))
	for i, turn := range out.Turns {
		turns[i] = newTurnResp(turn)
	}
	return detailResp{
		Session: newSessionResp(out.Session),
		Turns:   turns,
	}
}

type feedbackResp struct {
	Turn turnResp `json:"turn"`
}

func (h *handler) newFeedbackResp(out debate.ApplyFeedbackOutput) feedbackResp {
	return feedbackResp{Turn: newTurnResp(out.Turn)}
}
