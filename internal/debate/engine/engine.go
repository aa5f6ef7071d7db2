package engine

import (
	"context"
	"fmt"
	"io"
	"strings"

	"resume-roast/internal/agent"
	"resume-roast/internal/debate"
)

// Run validates the inputs and starts the debate. The returned channel emits
// events in strict production order and is closed when the run ends, whether
// by completion, failure, or cancellation.
func (e *Engine) Run(ctx context.Context, input debate.RunInput) (<-chan debate.Event, error) {
	inputs := agent.Inputs{
		ResumeText:     input.ResumeText,
		JobDescription: input.JobDescription,
	}

	// Resume and job description are validated once, before any gateway
	// call. The Critic template checks exactly those two fields.
	if _, err := e.critic.UserMessage(inputs); err != nil {
		return nil, err
	}

	events := make(chan debate.Event)
	go e.run(ctx, inputs, input.MemoryContext, events)
	return events, nil
}

func (e *Engine) run(ctx context.Context, inputs agent.Inputs, memoryContext []string, events chan<- debate.Event) {
	defer close(events)

	criticText, ok := e.runAgent(ctx, e.critic, inputs, memoryContext, events)
	if !ok {
		return
	}
	inputs.CriticText = criticText

	advocateText, ok := e.runAgent(ctx, e.advocate, inputs, memoryContext, events)
	if !ok {
		return
	}
	inputs.AdvocateText = advocateText

	realistText, ok := e.runAgent(ctx, e.realist, inputs, memoryContext, events)
	if !ok {
		return
	}

	e.emit(ctx, events, debate.NewWorkflowEvent(&debate.WorkflowResults{
		Critic:   criticText,
		Advocate: advocateText,
		Realist:  realistText,
	}))
}

// runAgent streams one agent to completion: a start marker, one chunk event
// per fragment, then exactly one completion event. It returns the full
// accumulated text. ok=false means the run must stop, either because a
// terminal error event was emitted or because ctx was cancelled.
func (e *Engine) runAgent(ctx context.Context, tmpl agent.Template, inputs agent.Inputs, memoryContext []string, events chan<- debate.Event) (string, bool) {
	name := tmpl.Name()
	order := tmpl.Order()

	userMessage, err := tmpl.UserMessage(inputs)
	if err != nil {
		// Realist predecessor checks land here; resume/job were validated
		// up front, so reaching this is a dependency violation.
		e.l.Errorf(ctx, "engine.runAgent %s: %v", name, err)
		e.emit(ctx, events, debate.NewErrorEvent(err.Error()))
		return "", false
	}

	if !e.emit(ctx, events, debate.NewChunkEvent(name, "", order)) {
		return "", false
	}

	stream, err := e.llm.StreamChat(ctx, tmpl.SystemPrompt(memoryContext), userMessage, memoryContext)
	if err != nil {
		return "", e.fail(ctx, events, name, err)
	}
	defer stream.Close()

	var full strings.Builder
	for {
		if ctx.Err() != nil {
			return "", false
		}

		chunk, recvErr := stream.Recv()
		if recvErr == io.EOF {
			break
		}
		if recvErr != nil {
			if ctx.Err() != nil {
				return "", false
			}
			return "", e.fail(ctx, events, name, recvErr)
		}

		full.WriteString(chunk)
		if !e.emit(ctx, events, debate.NewChunkEvent(name, chunk, order)) {
			return "", false
		}
	}

	if !e.emit(ctx, events, debate.NewCompletionEvent(name, order)) {
		return "", false
	}

	e.l.Infof(ctx, "engine.runAgent %s: completed, %d bytes", name, full.Len())
	return full.String(), true
}

// fail emits the single terminal error event naming the offending agent.
// Always returns false.
func (e *Engine) fail(ctx context.Context, events chan<- debate.Event, agentName string, err error) bool {
	e.l.Errorf(ctx, "engine.runAgent %s: generation failed: %v", agentName, err)
	e.emit(ctx, events, debate.NewErrorEvent(fmt.Sprintf("generation failed for %s: %v", agentName, err)))
	return false
}

// emit delivers one event unless the consumer is gone.
func (e *Engine) emit(ctx context.Context, events chan<- debate.Event, ev debate.Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
