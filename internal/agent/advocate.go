package agent

import (
	"fmt"

	"resume-roast/internal/model"
)

// Advocate highlights the candidate's strengths.
type Advocate struct{}

var _ Template = Advocate{}

func (Advocate) Name() string { return model.AgentAdvocate }
func (Advocate) Order() int   { return model.OrderAdvocate }

func (Advocate) SystemPrompt(memoryContext []string) string {
	return withMemorySection(SystemPromptAdvocate, memoryContext)
}

func (Advocate) UserMessage(in Inputs) (string, error) {
	if blank(in.ResumeText) {
		return "", ErrEmptyResume
	}
	if blank(in.JobDescription) {
		return "", ErrEmptyJobDescription
	}
	return fmt.Sprintf(userMessageTemplate,
		in.JobDescription, advocateMessageLabel, in.ResumeText, advocateMessageClosing), nil
}
