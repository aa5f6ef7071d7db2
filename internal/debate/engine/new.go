package engine

import (
	"resume-roast/internal/agent"
	"resume-roast/internal/debate"
	"resume-roast/pkg/log"
	"resume-roast/pkg/openai"
)

// Engine sequences the three debate agents against the completion gateway.
// The dependency graph is fixed: Critic and Advocate depend only on the
// inputs, Realist additionally depends on both predecessors' full texts, so
// an explicit linear sequencer is all this needs.
type Engine struct {
	llm openai.IOpenAI
	l   log.Logger

	critic   agent.Template
	advocate agent.Template
	realist  agent.Template
}

var _ debate.Engine = (*Engine)(nil)

// New creates a new debate Engine.
func New(llm openai.IOpenAI, l log.Logger) *Engine {
	return &Engine{
		llm:      llm,
		l:        l,
		critic:   agent.Critic{},
		advocate: agent.Advocate{},
		realist:  agent.Realist{},
	}
}
