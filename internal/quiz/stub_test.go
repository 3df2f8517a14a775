package quiz_test

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/quiz"
)

var errStoreDown = errors.New("store down")

type stubRepo struct {
	mu        sync.Mutex
	questions map[uuid.UUID]quiz.Question
	attempts  []quiz.Attempt
	fail      bool
	block     bool
}

func newStubRepo(qs ...quiz.Question) *stubRepo {
	r := &stubRepo{questions: make(map[uuid.UUID]quiz.Question)}
	for _, q := range qs {
		r.questions[q.ID] = q
	}
	return r
}

func (r *stubRepo) wait(ctx context.Context) error {
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if r.fail {
		return errStoreDown
	}
	return nil
}

func (r *stubRepo) GetQuestion(ctx context.Context, id uuid.UUID) (*quiz.Question, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	q, ok := r.questions[id]
	if !ok {
		return nil, quiz.ErrQuestionNotFound
	}
	return &q, nil
}

func (r *stubRepo) ListQuestions(ctx context.Context, category, difficulty string, limit int) ([]quiz.Question, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	var out []quiz.Question
	for _, q := range r.questions {
		if q.Category == category && (difficulty == "" || string(q.Difficulty) == difficulty) {
			out = append(out, q)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubRepo) CountQuestions(ctx context.Context) (int64, error) {
	if err := r.wait(ctx); err != nil {
		return 0, err
	}
	return int64(len(r.questions)), nil
}

func (r *stubRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, q := range r.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out, nil
}

func (r *stubRepo) DistinctDifficulties(ctx context.Context) ([]string, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return []string{"Easy"}, nil
}

func (r *stubRepo) CategoryProfile(ctx context.Context) ([]quiz.CategoryDifficultyCount, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	counts := map[[2]string]int64{}
	for _, q := range r.questions {
		counts[[2]string{q.Category, string(q.Difficulty)}]++
	}
	var out []quiz.CategoryDifficultyCount
	for k, n := range counts {
		out = append(out, quiz.CategoryDifficultyCount{Category: k[0], Difficulty: k[1], Count: n})
	}
	return out, nil
}

func (r *stubRepo) InsertMissingQuestions(ctx context.Context, questions []quiz.Question) (int, error) {
	if err := r.wait(ctx); err != nil {
		return 0, err
	}
	n := 0
	for _, q := range questions {
		dup := false
		for _, existing := range r.questions {
			if existing.Prompt == q.Prompt {
				dup = true
				break
			}
		}
		if !dup {
			r.questions[q.ID] = q
			n++
		}
	}
	return n, nil
}

func (r *stubRepo) CreateAttempt(ctx context.Context, a *quiz.Attempt) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uint(len(r.attempts) + 1)
	r.attempts = append(r.attempts, *a)
	return nil
}

func (r *stubRepo) ListAttempts(ctx context.Context) ([]quiz.Attempt, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return append([]quiz.Attempt{}, r.attempts...), nil
}

func (r *stubRepo) ListAttemptsByUser(ctx context.Context, userID uuid.UUID) ([]quiz.Attempt, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	var out []quiz.Attempt
	for _, a := range r.attempts {
		if a.UserID != nil && *a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubProgress struct {
	calls []quiz.Outcome
	err   error
}

func (p *stubProgress) RecordQuizResult(ctx context.Context, userID uuid.UUID, outcome quiz.Outcome) error {
	if p.err != nil {
		return p.err
	}
	p.calls = append(p.calls, outcome)
	return nil
}
