package agent

import (
	"fmt"

	"resume-roast/internal/model"
)

// Realist synthesizes the Critic's and Advocate's output into balanced,
// actionable recommendations. It cannot run until both predecessors have
// finished, because their full texts are embedded in its user message.
type Realist struct{}

var _ Template = Realist{}

func (Realist) Name() string { return model.AgentRealist }
func (Realist) Order() int   { return model.OrderRealist }

func (Realist) SystemPrompt(memoryContext []string) string {
	return withMemorySection(SystemPromptRealist, memoryContext)
}

func (Realist) UserMessage(in Inputs) (string, error) {
	if blank(in.ResumeText) {
		return "", ErrEmptyResume
	}
	if blank(in.JobDescription) {
		return "", ErrEmptyJobDescription
	}
	if blank(in.CriticText) {
		return "", ErrEmptyCriticText
	}
	if blank(in.AdvocateText) {
		return "", ErrEmptyAdvocateText
	}
	return fmt.Sprintf(realistMessageTemplate,
		in.JobDescription, in.ResumeText, in.CriticText, in.AdvocateText), nil
}
