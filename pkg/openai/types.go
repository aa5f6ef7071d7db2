package openai

// Config holds client configuration for an OpenAI-compatible
// chat-completions API. APIVersion non-empty selects Azure-style routing
// (deployment path + api-key header); empty selects the plain
// /chat/completions path with a bearer token.
type Config struct {
	APIKey            string
	Endpoint          string
	APIVersion        string
	Deployment        string
	MaxTokens         int
	Temperature       float64
	RequestsPerMinute int
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_completion_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream,omitempty"`
}

type chatChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
