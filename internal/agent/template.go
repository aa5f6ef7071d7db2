package agent

import "strings"

// Inputs carries everything a template may embed in its user message.
// CriticText and AdvocateText are only consulted by the Realist.
type Inputs struct {
	ResumeText     string
	JobDescription string
	CriticText     string
	AdvocateText   string
}

// Template builds the prompts for one debate agent. Templates are stateless
// pure functions over their inputs.
type Template interface {
	Name() string
	Order() int

	// SystemPrompt returns the agent persona, with the memory-context
	// section appended only when memoryContext is non-empty.
	SystemPrompt(memoryContext []string) string

	// UserMessage formats the inputs into the agent's user message,
	// validating required fields first.
	UserMessage(in Inputs) (string, error)
}

// withMemorySection appends the learning patterns to a base prompt.
func withMemorySection(base string, memoryContext []string) string {
	if len(memoryContext) == 0 {
		return base
	}
	return base + MemorySectionHeader + strings.Join(memoryContext, "\n")
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
