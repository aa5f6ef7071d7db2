package openai

import "time"

// Defaults applied when Config fields are zero.
const (
	DefaultAPIVersion  = "2024-02-15-preview"
	DefaultMaxTokens   = 4000
	DefaultTemperature = 0.7

	responseHeaderTimeout = 120 * time.Second
)

// Chat roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// MemoryContextPreamble prefixes the aggregated learning patterns injected as
// an extra system message.
const MemoryContextPreamble = "Based on previous feedback, consider these patterns:\n"

// streamDonePayload terminates a server-sent completion stream.
const streamDonePayload = "[DONE]"
