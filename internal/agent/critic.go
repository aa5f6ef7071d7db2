package agent

import (
	"fmt"

	"resume-roast/internal/model"
)

// Critic identifies the most critical issues in a resume.
type Critic struct{}

var _ Template = Critic{}

func (Critic) Name() string { return model.AgentCritic }
func (Critic) Order() int   { return model.OrderCritic }

func (Critic) SystemPrompt(memoryContext []string) string {
	return withMemorySection(SystemPromptCritic, memoryContext)
}

func (Critic) UserMessage(in Inputs) (string, error) {
	if blank(in.ResumeText) {
		return "", ErrEmptyResume
	}
	if blank(in.JobDescription) {
		return "", ErrEmptyJobDescription
	}
	return fmt.Sprintf(userMessageTemplate,
		in.JobDescription, criticMessageLabel, in.ResumeText, criticMessageClosing), nil
}
