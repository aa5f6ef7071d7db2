package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"resume-roast/internal/debate"
	"resume-roast/internal/debate/repository"
	"resume-roast/internal/memory"
	"resume-roast/internal/model"
	"resume-roast/pkg/log"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                 {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

var _ log.Logger = mockLogger{}

// mockRepository is an in-memory Repository with the real store's semantics:
// forward-only session transitions, idempotent turn creation.
type mockRepository struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
	turns    map[string]*model.AgentTurn // keyed session|agent

	nextID          int
	getSessionCalls int

	createTurnErr     error
	createTurnFailFor string // agent name that fails to persist
	updateStatusErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		sessions: make(map[string]*model.Session),
		turns:    make(map[string]*model.AgentTurn),
	}
}

func (m *mockRepository) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *mockRepository) seedSession(status model.SessionStatus) *model.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := &model.Session{
		ID:             m.id("sess"),
		Status:         status,
		ResumeText:     "resume text",
		JobDescription: "job description",
		CreatedAt:      time.Now(),
	}
	m.sessions[sess.ID] = sess
	return sess
}

func (m *mockRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := &model.Session{
		ID:             m.id("sess"),
		Status:         model.SessionStatusPending,
		ResumeText:     opt.ResumeText,
		JobDescription: opt.JobDescription,
		CreatedAt:      time.Now(),
	}
	m.sessions[sess.ID] = sess
	return *sess, nil
}

func (m *mockRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getSessionCalls++
	sess, ok := m.sessions[id]
	if !ok {
		return model.Session{}, nil
	}
	return *sess, nil
}

func (m *mockRepository) UpdateSessionStatus(ctx context.Context, id string, status model.SessionStatus) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateStatusErr != nil {
		return model.Session{}, m.updateStatusErr
	}
	sess, ok := m.sessions[id]
	if !ok || sess.Status.Terminal() {
		return model.Session{}, nil
	}
	sess.Status = status
	if status.Terminal() {
		now := time.Now()
		sess.CompletedAt = &now
	}
	return *sess, nil
}

func (m *mockRepository) sessionStatus(id string) model.SessionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id].Status
}

func turnKey(sessionID, agentName string) string {
	return sessionID + "|" + agentName
}

func (m *mockRepository) CreateTurn(ctx context.Context, opt repository.CreateTurnOptions) (model.AgentTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createTurnErr != nil {
		return model.AgentTurn{}, m.createTurnErr
	}
	if m.createTurnFailFor != "" && m.createTurnFailFor == opt.AgentName {
		return model.AgentTurn{}, repository.ErrFailedToInsert
	}
	key := turnKey(opt.SessionID, opt.AgentName)
	if existing, ok := m.turns[key]; ok {
		return *existing, nil
	}
	turn := &model.AgentTurn{
		ID:        m.id("turn"),
		SessionID: opt.SessionID,
		AgentName: opt.AgentName,
		Text:      opt.Text,
		Order:     opt.Order,
		CreatedAt: time.Now(),
	}
	m.turns[key] = turn
	return *turn, nil
}

func (m *mockRepository) GetTurn(ctx context.Context, opt repository.GetTurnOptions) (model.AgentTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, turn := range m.turns {
		if opt.ID != "" && turn.ID != opt.ID {
			continue
		}
		if opt.SessionID != "" && turn.SessionID != opt.SessionID {
			continue
		}
		if opt.AgentName != "" && turn.AgentName != opt.AgentName {
			continue
		}
		return *turn, nil
	}
	return model.AgentTurn{}, nil
}

func (m *mockRepository) ListTurns(ctx context.Context, sessionID string) ([]model.AgentTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.AgentTurn
	for _, turn := range m.turns {
		if turn.SessionID == sessionID {
			out = append(out, *turn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *mockRepository) UpdateTurnFeedback(ctx context.Context, opt repository.UpdateTurnFeedbackOptions) (model.AgentTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, turn := range m.turns {
		if turn.ID == opt.TurnID {
			thumbs := opt.ThumbsUp
			turn.ThumbsUp = &thumbs
			if opt.FeedbackText != "" {
				text := opt.FeedbackText
				turn.FeedbackText = &text
			}
			return *turn, nil
		}
	}
	return model.AgentTurn{}, nil
}

var _ repository.Repository = (*mockRepository)(nil)

// mockEngine replays a scripted event sequence, honoring ctx cancellation
// between events the way the real engine does.
type mockEngine struct {
	script []debate.Event
	runErr error

	mu    sync.Mutex
	calls []debate.RunInput
}

func (m *mockEngine) Run(ctx context.Context, input debate.RunInput) (<-chan debate.Event, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()
	if m.runErr != nil {
		return nil, m.runErr
	}
	events := make(chan debate.Event)
	go func() {
		defer close(events)
		for _, ev := range m.script {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

var _ debate.Engine = (*mockEngine)(nil)

// mockMemory records Submit calls and serves a fixed snapshot.
type mockMemory struct {
	mu        sync.Mutex
	snapshot  []string
	submits   []memory.SubmitInput
	submitErr error
}

func (m *mockMemory) Submit(ctx context.Context, in memory.SubmitInput) (model.LearningPattern, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submits = append(m.submits, in)
	if m.submitErr != nil {
		return model.LearningPattern{}, m.submitErr
	}
	return model.LearningPattern{ID: "lp-1", AgentName: in.AgentName, Frequency: 1}, nil
}

func (m *mockMemory) TopPatterns(ctx context.Context, limit int) ([]model.LearningPattern, error) {
	return nil, nil
}

func (m *mockMemory) Snapshot() []string { return m.snapshot }

func (m *mockMemory) StartRefresher(ctx context.Context) {}

var _ memory.UseCase = (*mockMemory)(nil)

// debateScript builds the full happy-path event sequence the engine emits.
func debateScript() []debate.Event {
	return []debate.Event{
		debate.NewChunkEvent(model.AgentCritic, "", model.OrderCritic),
		debate.NewChunkEvent(model.AgentCritic, "Weak ", model.OrderCritic),
		debate.NewChunkEvent(model.AgentCritic, "verbs.", model.OrderCritic),
		debate.NewCompletionEvent(model.AgentCritic, model.OrderCritic),
		debate.NewChunkEvent(model.AgentAdvocate, "", model.OrderAdvocate),
		debate.NewChunkEvent(model.AgentAdvocate, "Strong ", model.OrderAdvocate),
		debate.NewChunkEvent(model.AgentAdvocate, "impact.", model.OrderAdvocate),
		debate.NewCompletionEvent(model.AgentAdvocate, model.OrderAdvocate),
		debate.NewChunkEvent(model.AgentRealist, "", model.OrderRealist),
		debate.NewChunkEvent(model.AgentRealist, "Quantify ", model.OrderRealist),
		debate.NewChunkEvent(model.AgentRealist, "results.", model.OrderRealist),
		debate.NewCompletionEvent(model.AgentRealist, model.OrderRealist),
		debate.NewWorkflowEvent(&debate.WorkflowResults{
			Critic:   "Weak verbs.",
			Advocate: "Strong impact.",
			Realist:  "Quantify results.",
		}),
	}
}
