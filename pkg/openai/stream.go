package openai

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// chatStream reads server-sent completion events off the response body and
// yields content deltas.
type chatStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

var _ Stream = (*chatStream)(nil)

func newChatStream(body io.ReadCloser) *chatStream {
	scanner := bufio.NewScanner(body)
	// Completion fragments are small, but a single data line can carry a
	// large JSON payload when the server batches tokens.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &chatStream{body: body, scanner: scanner}
}

// Recv returns the next non-empty content delta. io.EOF signals a normally
// terminated stream.
func (s *chatStream) Recv() (string, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}
		if payload == streamDonePayload {
			return "", io.EOF
		}

		var chunk chatResponse
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// Skip malformed keep-alive frames rather than killing the run.
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if content := chunk.Choices[0].Delta.Content; content != "" {
			return content, nil
		}
	}

	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close releases the underlying response body.
func (s *chatStream) Close() error {
	return s.body.Close()
}
