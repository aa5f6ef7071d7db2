package openai

import "context"

// IOpenAI is the completion gateway contract consumed by the debate engine.
type IOpenAI interface {
	// Complete returns the full completion text in one call.
	Complete(ctx context.Context, systemPrompt, userMessage string, memoryContext []string) (string, error)

	// StreamChat starts a streaming completion. The caller must drain the
	// stream until io.EOF and Close it.
	StreamChat(ctx context.Context, systemPrompt, userMessage string, memoryContext []string) (Stream, error)

	// Model returns the configured deployment/model name.
	Model() string
}

// Stream is a lazy sequence of completion text fragments.
// Recv returns io.EOF after the final fragment.
type Stream interface {
	Recv() (string, error)
	Close() error
}
