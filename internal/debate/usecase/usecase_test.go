package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-roast/internal/agent"
	"resume-roast/internal/debate"
	"resume-roast/internal/model"
)

func newTestUseCase(repo *mockRepository, eng *mockEngine, mem *mockMemory) *implUseCase {
	return New(repo, eng, mem, mockLogger{}).(*implUseCase)
}

func collect(ch <-chan debate.Event) []debate.Event {
	var out []debate.Event
	for ev := range ch {
		out = append(out, ev)
	}
	return out
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo, &mockEngine{}, &mockMemory{})

		out, err := uc.CreateSession(ctx, debate.CreateSessionInput{
			ResumeText:     "resume",
			JobDescription: "job",
		})
		if err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
		if out.Session.ID == "" {
			t.Fatal("expected a session ID")
		}
		if out.Session.Status != model.SessionStatusPending {
			t.Errorf("status = %s, want pending", out.Session.Status)
		}
	})

	t.Run("empty inputs rejected", func(t *testing.T) {
		uc := newTestUseCase(newMockRepository(), &mockEngine{}, &mockMemory{})

		if _, err := uc.CreateSession(ctx, debate.CreateSessionInput{JobDescription: "job"}); !errors.Is(err, agent.ErrEmptyResume) {
			t.Errorf("err = %v, want ErrEmptyResume", err)
		}
		if _, err := uc.CreateSession(ctx, debate.CreateSessionInput{ResumeText: "resume"}); !errors.Is(err, agent.ErrEmptyJobDescription) {
			t.Errorf("err = %v, want ErrEmptyJobDescription", err)
		}
	})

	t.Run("whitespace-only inputs rejected before persisting", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo, &mockEngine{}, &mockMemory{})

		if _, err := uc.CreateSession(ctx, debate.CreateSessionInput{
			ResumeText:     " \n\t ",
			JobDescription: "job",
		}); !errors.Is(err, agent.ErrEmptyResume) {
			t.Errorf("err = %v, want ErrEmptyResume", err)
		}
		if _, err := uc.CreateSession(ctx, debate.CreateSessionInput{
			ResumeText:     "resume",
			JobDescription: "   ",
		}); !errors.Is(err, agent.ErrEmptyJobDescription) {
			t.Errorf("err = %v, want ErrEmptyJobDescription", err)
		}
		if len(repo.sessions) != 0 {
			t.Errorf("persisted %d sessions, want 0", len(repo.sessions))
		}
	})
}

func TestStreamSessionHappyPath(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	eng := &mockEngine{script: debateScript()}
	mem := &mockMemory{snapshot: []string{"be more specific", "mention remote work"}}
	uc := newTestUseCase(repo, eng, mem)

	sess := repo.seedSession(model.SessionStatusPending)

	ch, err := uc.StreamSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("StreamSession: %v", err)
	}
	events := collect(ch)

	if len(events) != len(debateScript()) {
		t.Fatalf("forwarded %d events, want %d", len(events), len(debateScript()))
	}
	for i, want := range debateScript() {
		got := events[i]
		if got.AgentName != want.AgentName || got.Chunk != want.Chunk || got.IsComplete != want.IsComplete || got.Order != want.Order {
			t.Errorf("event %d = %+v, want %+v", i, got, want)
		}
	}

	if len(eng.calls) != 1 {
		t.Fatalf("engine called %d times, want 1", len(eng.calls))
	}
	in := eng.calls[0]
	if in.ResumeText != sess.ResumeText || in.JobDescription != sess.JobDescription {
		t.Errorf("engine input = %+v, want session texts", in)
	}
	if len(in.MemoryContext) != 2 || in.MemoryContext[0] != "be more specific" {
		t.Errorf("memory context = %v, want snapshot passed through", in.MemoryContext)
	}

	turns, _ := repo.ListTurns(ctx, sess.ID)
	if len(turns) != 3 {
		t.Fatalf("recorded %d turns, want 3", len(turns))
	}
	wantTurns := []struct {
		agent string
		text  string
		order int
	}{
		{"critic", "Weak verbs.", 1},
		{"advocate", "Strong impact.", 2},
		{"realist", "Quantify results.", 3},
	}
	for i, want := range wantTurns {
		got := turns[i]
		if got.AgentName != want.agent || got.Text != want.text || got.Order != want.order {
			t.Errorf("turn %d = {%s %q %d}, want {%s %q %d}",
				i, got.AgentName, got.Text, got.Order, want.agent, want.text, want.order)
		}
	}

	if status := repo.sessionStatus(sess.ID); status != model.SessionStatusCompleted {
		t.Errorf("session status = %s, want completed", status)
	}
}

func TestStreamSessionGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		uc := newTestUseCase(newMockRepository(), &mockEngine{}, &mockMemory{})
		if _, err := uc.StreamSession(ctx, "missing"); !errors.Is(err, debate.ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("terminal session", func(t *testing.T) {
		repo := newMockRepository()
		sess := repo.seedSession(model.SessionStatusCompleted)
		uc := newTestUseCase(repo, &mockEngine{}, &mockMemory{})
		if _, err := uc.StreamSession(ctx, sess.ID); !errors.Is(err, debate.ErrSessionTerminal) {
			t.Errorf("err = %v, want ErrSessionTerminal", err)
		}
	})

	t.Run("already streaming", func(t *testing.T) {
		repo := newMockRepository()
		sess := repo.seedSession(model.SessionStatusRunning)
		uc := newTestUseCase(repo, &mockEngine{}, &mockMemory{})
		if _, err := uc.StreamSession(ctx, sess.ID); !errors.Is(err, debate.ErrSessionRunning) {
			t.Errorf("err = %v, want ErrSessionRunning", err)
		}
	})

	t.Run("engine refusal marks session failed", func(t *testing.T) {
		repo := newMockRepository()
		sess := repo.seedSession(model.SessionStatusPending)
		eng := &mockEngine{runErr: agent.ErrEmptyResume}
		uc := newTestUseCase(repo, eng, &mockMemory{})

		if _, err := uc.StreamSession(ctx, sess.ID); !errors.Is(err, agent.ErrEmptyResume) {
			t.Fatalf("err = %v, want ErrEmptyResume", err)
		}
		if status := repo.sessionStatus(sess.ID); status != model.SessionStatusFailed {
			t.Errorf("session status = %s, want failed", status)
		}
	})
}

func TestStreamSessionGenerationFailure(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	script := []debate.Event{
		debate.NewChunkEvent(model.AgentCritic, "", model.OrderCritic),
		debate.NewChunkEvent(model.AgentCritic, "Weak verbs.", model.OrderCritic),
		debate.NewCompletionEvent(model.AgentCritic, model.OrderCritic),
		debate.NewChunkEvent(model.AgentAdvocate, "", model.OrderAdvocate),
		debate.NewErrorEvent("Advocate generation failed: rate limited"),
	}
	uc := newTestUseCase(repo, &mockEngine{script: script}, &mockMemory{})
	sess := repo.seedSession(model.SessionStatusPending)

	ch, err := uc.StreamSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("StreamSession: %v", err)
	}
	events := collect(ch)

	last := events[len(events)-1]
	if !last.Err || last.Message == "" {
		t.Errorf("last event = %+v, want forwarded error event", last)
	}

	turns, _ := repo.ListTurns(ctx, sess.ID)
	if len(turns) != 1 || turns[0].AgentName != "critic" {
		t.Fatalf("turns = %+v, want only the critic recorded", turns)
	}
	if status := repo.sessionStatus(sess.ID); status != model.SessionStatusFailed {
		t.Errorf("session status = %s, want failed", status)
	}
}

func TestStreamSessionDisconnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newMockRepository()
	// The engine stops mid-Advocate on cancellation: no completion event, no
	// Realist, no workflow.
	script := []debate.Event{
		debate.NewChunkEvent(model.AgentCritic, "", model.OrderCritic),
		debate.NewChunkEvent(model.AgentCritic, "Weak verbs.", model.OrderCritic),
		debate.NewCompletionEvent(model.AgentCritic, model.OrderCritic),
		debate.NewChunkEvent(model.AgentAdvocate, "", model.OrderAdvocate),
		debate.NewChunkEvent(model.AgentAdvocate, "Strong ", model.OrderAdvocate),
	}
	uc := newTestUseCase(repo, &mockEngine{script: script}, &mockMemory{})
	sess := repo.seedSession(model.SessionStatusPending)

	ch, err := uc.StreamSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("StreamSession: %v", err)
	}

	// Walk away mid-Advocate; the channel still drains to close.
	for ev := range ch {
		if ev.AgentName == model.AgentAdvocate && ev.Chunk != "" {
			cancel()
		}
	}

	turns, _ := repo.ListTurns(context.Background(), sess.ID)
	if len(turns) != 1 || turns[0].AgentName != "critic" {
		t.Fatalf("turns = %+v, want only the critic preserved", turns)
	}
	if status := repo.sessionStatus(sess.ID); status != model.SessionStatusFailed {
		t.Errorf("session status = %s, want failed", status)
	}
}

func TestStreamSessionRecordFailure(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	repo.createTurnFailFor = "realist"
	uc := newTestUseCase(repo, &mockEngine{script: debateScript()}, &mockMemory{})
	sess := repo.seedSession(model.SessionStatusPending)

	ch, err := uc.StreamSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("StreamSession: %v", err)
	}
	events := collect(ch)

	// Streaming is unaffected; the terminal workflow event still arrives.
	last := events[len(events)-1]
	if last.AgentName != model.AgentWorkflow || !last.IsComplete {
		t.Errorf("last event = %+v, want workflow completion", last)
	}

	if status := repo.sessionStatus(sess.ID); status != model.SessionStatusFailed {
		t.Errorf("session status = %s, want failed after lost turn", status)
	}
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		uc := newTestUseCase(newMockRepository(), &mockEngine{}, &mockMemory{})
		if _, err := uc.Detail(ctx, "missing"); !errors.Is(err, debate.ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("returns turns in debate order", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo, &mockEngine{script: debateScript()}, &mockMemory{})
		sess := repo.seedSession(model.SessionStatusPending)

		ch, err := uc.StreamSession(ctx, sess.ID)
		if err != nil {
			t.Fatalf("StreamSession: %v", err)
		}
		collect(ch)

		out, err := uc.Detail(ctx, sess.ID)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if out.Session.Status != model.SessionStatusCompleted {
			t.Errorf("status = %s, want completed", out.Session.Status)
		}
		if len(out.Turns) != 3 {
			t.Fatalf("got %d turns, want 3", len(out.Turns))
		}
		for i, turn := range out.Turns {
			if turn.Order != i+1 {
				t.Errorf("turn %d order = %d", i, turn.Order)
			}
		}
	})

	t.Run("terminal sessions served from cache", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo, &mockEngine{script: debateScript()}, &mockMemory{})
		sess := repo.seedSession(model.SessionStatusCompleted)

		if _, err := uc.Detail(ctx, sess.ID); err != nil {
			t.Fatalf("Detail: %v", err)
		}
		before := repo.getSessionCalls
		if _, err := uc.Detail(ctx, sess.ID); err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if repo.getSessionCalls != before {
			t.Errorf("second Detail hit the repository")
		}
	})
}

func TestApplyFeedback(t *testing.T) {
	ctx := context.Background()

	runDebate := func(t *testing.T, repo *mockRepository, uc *implUseCase) *model.Session {
		t.Helper()
		sess := repo.seedSession(model.SessionStatusPending)
		ch, err := uc.StreamSession(ctx, sess.ID)
		if err != nil {
			t.Fatalf("StreamSession: %v", err)
		}
		collect(ch)
		return sess
	}

	t.Run("stores feedback and submits one learning", func(t *testing.T) {
		repo := newMockRepository()
		mem := &mockMemory{}
		uc := newTestUseCase(repo, &mockEngine{script: debateScript()}, mem)
		sess := runDebate(t, repo, uc)

		out, err := uc.ApplyFeedback(ctx, debate.ApplyFeedbackInput{
			SessionID:    sess.ID,
			AgentName:    "Critic",
			ThumbsUp:     false,
			FeedbackText: "too harsh",
		})
		if err != nil {
			t.Fatalf("ApplyFeedback: %v", err)
		}
		if out.Turn.ThumbsUp == nil || *out.Turn.ThumbsUp {
			t.Errorf("thumbs up = %v, want false", out.Turn.ThumbsUp)
		}
		if out.Turn.FeedbackText == nil || *out.Turn.FeedbackText != "too harsh" {
			t.Errorf("feedback text = %v", out.Turn.FeedbackText)
		}

		if len(mem.submits) != 1 {
			t.Fatalf("memory submitted %d times, want 1", len(mem.submits))
		}
		submit := mem.submits[0]
		if submit.AgentName != "critic" || submit.ThumbsUp || submit.FeedbackText != "too harsh" {
			t.Errorf("submit = %+v", submit)
		}
	})

	t.Run("unknown agent", func(t *testing.T) {
		uc := newTestUseCase(newMockRepository(), &mockEngine{}, &mockMemory{})
		_, err := uc.ApplyFeedback(ctx, debate.ApplyFeedbackInput{SessionID: "s", AgentName: "judge"})
		if !errors.Is(err, debate.ErrInvalidAgentName) {
			t.Errorf("err = %v, want ErrInvalidAgentName", err)
		}
	})

	t.Run("turn not recorded", func(t *testing.T) {
		repo := newMockRepository()
		mem := &mockMemory{}
		uc := newTestUseCase(repo, &mockEngine{}, mem)
		sess := repo.seedSession(model.SessionStatusPending)

		_, err := uc.ApplyFeedback(ctx, debate.ApplyFeedbackInput{SessionID: sess.ID, AgentName: "critic"})
		if !errors.Is(err, debate.ErrTurnNotFound) {
			t.Errorf("err = %v, want ErrTurnNotFound", err)
		}
		if len(mem.submits) != 0 {
			t.Errorf("memory submitted %d times, want 0", len(mem.submits))
		}
	})

	t.Run("feedback evicts cached detail", func(t *testing.T) {
		repo := newMockRepository()
		uc := newTestUseCase(repo, &mockEngine{script: debateScript()}, &mockMemory{})
		sess := runDebate(t, repo, uc)

		if _, err := uc.Detail(ctx, sess.ID); err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if _, err := uc.ApplyFeedback(ctx, debate.ApplyFeedbackInput{
			SessionID: sess.ID, AgentName: "realist", ThumbsUp: true,
		}); err != nil {
			t.Fatalf("ApplyFeedback: %v", err)
		}

		out, err := uc.Detail(ctx, sess.ID)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		var realist *model.AgentTurn
		for i := range out.Turns {
			if out.Turns[i].AgentName == "realist" {
				realist = &out.Turns[i]
			}
		}
		if realist == nil || realist.ThumbsUp == nil || !*realist.ThumbsUp {
			t.Errorf("cached detail still missing feedback: %+v", realist)
		}
	})
}
