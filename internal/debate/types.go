package debate

import (
	"encoding/json"

	"resume-roast/internal/model"
)

// WorkflowResults carries the three final agent texts on the terminal
// workflow event.
type WorkflowResults struct {
	Critic   string `json:"critic"`
	Advocate string `json:"advocate"`
	Realist  string `json:"realist"`
}

// Event is one element of a debate run's ordered output sequence. It
// marshals as one of two JSON shapes: a stream event
// {agent_name, chunk, is_complete, order[, results]} or a terminal error
// event {error, message}.
type Event struct {
	AgentName  string
	Chunk      string
	IsComplete bool
	Order      int
	Results    *WorkflowResults
	Err        bool
	Message    string
}

type streamEventJSON struct {
	AgentName  string           `json:"agent_name"`
	Chunk      string           `json:"chunk"`
	IsComplete bool             `json:"is_complete"`
	Order      int              `json:"order"`
	Results    *WorkflowResults `json:"results,omitempty"`
}

type errorEventJSON struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MarshalJSON implements json.Marshaler for Event.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Err {
		return json.Marshal(errorEventJSON{Error: true, Message: e.Message})
	}
	return json.Marshal(streamEventJSON{
		AgentName:  e.AgentName,
		Chunk:      e.Chunk,
		IsComplete: e.IsComplete,
		Order:      e.Order,
		Results:    e.Results,
	})
}

// NewChunkEvent returns a non-terminal stream event for one agent fragment.
// An empty chunk marks the start of the agent's stream.
func NewChunkEvent(agentName, chunk string, order int) Event {
	return Event{AgentName: agentName, Chunk: chunk, Order: order}
}

// NewCompletionEvent returns the single completion event for one agent.
func NewCompletionEvent(agentName string, order int) Event {
	return Event{AgentName: agentName, IsComplete: true, Order: order}
}

// NewWorkflowEvent returns the terminal workflow event with all results.
func NewWorkflowEvent(results *WorkflowResults) Event {
	return Event{
		AgentName:  model.AgentWorkflow,
		IsComplete: true,
		Order:      model.OrderWorkflow,
		Results:    results,
	}
}

// NewErrorEvent returns a terminal error event.
func NewErrorEvent(message string) Event {
	return Event{Err: true, Message: message}
}

// --- Engine Inputs ---

// RunInput is the validated input for one debate run.
type RunInput struct {
	ResumeText     string
	JobDescription string
	MemoryContext  []string
}

// --- UseCase Inputs ---

type CreateSessionInput struct {
	ResumeText     string
	JobDescription string
}

type ApplyFeedbackInput struct {
	SessionID    string
	AgentName    string
	ThumbsUp     bool
	FeedbackText string
}

// --- UseCase Outputs ---

type CreateSessionOutput struct {
	Session model.Session
}

type SessionDetailOutput struct {
	Session model.Session
	Turns   []model.AgentTurn
}

type ApplyFeedbackOutput struct {
	Turn model.AgentTurn
}
