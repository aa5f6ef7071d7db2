package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-roast/internal/memory/repository"
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

type patternKey struct {
	patternType model.PatternType
	description string
	agentName   string
}

// mockRepository keeps learnings in memory with the same upsert semantics as
// the real store.
type mockRepository struct {
	patterns   map[patternKey]*model.LearningPattern
	upsertErr  error
	listErr    error
	listCalls  int
	upsertCall int
	clock      time.Time
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		patterns: make(map[patternKey]*model.LearningPattern),
		clock:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *mockRepository) UpsertLearning(ctx context.Context, opt repository.UpsertLearningOptions) (model.LearningPattern, error) {
	m.upsertCall++
	if m.upsertErr != nil {
		return model.LearningPattern{}, m.upsertErr
	}
	m.clock = m.clock.Add(time.Second)
	key := patternKey{opt.PatternType, opt.Description, opt.AgentName}
	capped := opt.ConfidenceScore
	if capped > opt.ConfidenceCap {
		capped = opt.ConfidenceCap
	}
	if existing, ok := m.patterns[key]; ok {
		existing.Frequency++
		if capped > existing.ConfidenceScore {
			existing.ConfidenceScore = capped
		}
		existing.LastUpdated = m.clock
		return *existing, nil
	}
	lp := &model.LearningPattern{
		ID:              uuid.New().String(),
		PatternType:     opt.PatternType,
		Description:     opt.Description,
		AgentName:       opt.AgentName,
		Frequency:       1,
		ConfidenceScore: capped,
		LastUpdated:     m.clock,
	}
	m.patterns[key] = lp
	return *lp, nil
}

func (m *mockRepository) ListLearnings(ctx context.Context, opt repository.ListLearningsOptions) ([]model.LearningPattern, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.LearningPattern
	for _, lp := range m.patterns {
		if opt.AgentName != "" && lp.AgentName != opt.AgentName {
			continue
		}
		out = append(out, *lp)
	}
	// frequency DESC, last_updated DESC
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Frequency > out[i].Frequency ||
				(out[j].Frequency == out[i].Frequency && out[j].LastUpdated.After(out[i].LastUpdated)) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

var _ repository.Repository = (*mockRepository)(nil)
