package engine

import (
	"context"
	"io"

	"resume-roast/pkg/openai"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// scriptedStream yields its chunks in order, then err (io.EOF for a normal
// finish). onRecv, when set, runs before every Recv and can cancel contexts.
type scriptedStream struct {
	chunks []string
	err    error
	onRecv func()
	pos    int
}

func (s *scriptedStream) Recv() (string, error) {
	if s.onRecv != nil {
		s.onRecv()
	}
	if s.pos < len(s.chunks) {
		chunk := s.chunks[s.pos]
		s.pos++
		return chunk, nil
	}
	if s.err != nil {
		return "", s.err
	}
	return "", io.EOF
}

func (s *scriptedStream) Close() error { return nil }

// mockGateway returns one scripted stream per StreamChat call, in order.
type mockGateway struct {
	streams   []*scriptedStream
	streamErr error
	calls     int
}

func (m *mockGateway) StreamChat(ctx context.Context, systemPrompt, userMessage string, memoryContext []string) (openai.Stream, error) {
	m.calls++
	if m.streamErr != nil {
		return nil, m.streamErr
	}
	if m.calls > len(m.streams) {
		return &scriptedStream{}, nil
	}
	return m.streams[m.calls-1], nil
}

func (m *mockGateway) Complete(ctx context.Context, systemPrompt, userMessage string, memoryContext []string) (string, error) {
	return "", nil
}

func (m *mockGateway) Model() string { return "gpt-test" }
