package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/catalog"
	"github.com/saulo-duarte/careercoach/internal/config"
	util "github.com/saulo-duarte/careercoach/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	statsRecentWindow     = 3
	userStatsRecentWindow = 10
	defaultQuestionLimit  = 10
	maxQuestionLimit      = 50
)

// Outcome is what a submission contributes to a user's progress.
type Outcome struct {
	Category   string
	Correct    bool
	Score      int
	RecordedAt time.Time
}

// ProgressRecorder applies an Outcome to the user's durable progress as one
// unit: counter, interview score and improved skill.
type ProgressRecorder interface {
	RecordQuizResult(ctx context.Context, userID uuid.UUID, outcome Outcome) error
}

type QuizService interface {
	Submit(ctx context.Context, userID *uuid.UUID, req SubmitRequest) (*SubmitResult, error)
	Categories(ctx context.Context) CategoriesResponse
	Stats(ctx context.Context) StatsResponse
	UserStats(ctx context.Context, userID uuid.UUID) UserStatsResponse
	Questions(ctx context.Context, category, difficulty string, limit int) ([]QuestionDTO, error)
	Seed(ctx context.Context) (*SeedResult, error)
}

type quizService struct {
	repo         QuizRepository
	progress     ProgressRecorder
	statsTimeout time.Duration
	now          func() time.Time
}

func NewService(repo QuizRepository, progress ProgressRecorder, statsTimeout time.Duration) QuizService {
	return &quizService{
		repo:         repo,
		progress:     progress,
		statsTimeout: statsTimeout,
		now:          time.Now,
	}
}

// Submit stores the attempt first and only then updates progress. A failed
// progress update is logged and the stored attempt is kept.
func (s *quizService) Submit(ctx context.Context, userID *uuid.UUID, req SubmitRequest) (*SubmitResult, error) {
	log := config.WithContext(ctx)

	questionID, err := uuid.Parse(strings.TrimSpace(req.QuizID))
	if err != nil {
		return nil, fmt.Errorf("%w: quizId must be a valid id", ErrInvalidInput)
	}
	if req.TimeSpent < 0 {
		req.TimeSpent = 0
	}

	q, err := s.repo.GetQuestion(ctx, questionID)
	if err != nil {
		if !errors.Is(err, ErrQuestionNotFound) {
			log.WithError(err).Error("Failed to load question")
		}
		return nil, err
	}

	correct := q.IsCorrectAnswer(req.SelectedAnswer)
	attempt := &Attempt{
		UserID:           userID,
		QuestionID:       q.ID,
		SelectedOption:   req.SelectedAnswer,
		IsCorrect:        correct,
		TimeSpentSeconds: req.TimeSpent,
		Category:         q.Category,
		SubmittedAt:      s.now().UTC(),
	}
	if err := s.repo.CreateAttempt(ctx, attempt); err != nil {
		log.WithError(err).Error("Failed to store quiz attempt")
		return nil, err
	}

	if userID != nil && s.progress != nil {
		outcome := Outcome{
			Category:   q.Category,
			Correct:    correct,
			Score:      ScoreFor(correct),
			RecordedAt: attempt.SubmittedAt,
		}
		if err := s.progress.RecordQuizResult(ctx, *userID, outcome); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"user_id":    userID.String(),
				"attempt_id": attempt.ID,
			}).Error("Attempt stored but progress update failed")
		}
	}

	log.WithFields(logrus.Fields{
		"question_id": q.ID.String(),
		"is_correct":  correct,
	}).Info("Quiz answer recorded")

	return &SubmitResult{
		IsCorrect:     correct,
		CorrectAnswer: q.CorrectOption,
		Explanation:   q.Explanation,
	}, nil
}

func (s *quizService) Categories(ctx context.Context) CategoriesResponse {
	log := config.WithContext(ctx)

	res := util.Fetch(ctx, s.statsTimeout, s.repo.CategoryProfile)
	if !res.Ok() || len(res.Value) == 0 {
		if !res.Ok() {
			log.WithError(res.Err).WithField("status", res.Status.String()).Warn("Serving fallback categories")
		}
		fallback := catalog.FallbackCategories()
		return CategoriesResponse{Success: true, Categories: fallback, TotalCategories: len(fallback)}
	}

	summaries := summarizeProfile(res.Value)
	return CategoriesResponse{Success: true, Categories: summaries, TotalCategories: len(summaries)}
}

func summarizeProfile(rows []CategoryDifficultyCount) []catalog.CategorySummary {
	var out []catalog.CategorySummary
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(out)
			index[row.Category] = i
			out = append(out, catalog.CategorySummary{
				Name:         row.Category,
				Difficulties: []catalog.Difficulty{},
				Icon:         catalog.Icon(row.Category),
			})
		}
		out[i].QuestionCount += row.Count
		out[i].Difficulties = append(out[i].Difficulties, catalog.Difficulty(row.Difficulty))
	}
	return out
}

// Stats never fails: every read is bounded by the stats timeout and falls
// back to its own default.
func (s *quizService) Stats(ctx context.Context) StatsResponse {
	log := config.WithContext(ctx)

	var (
		total        util.Result[int64]
		categories   util.Result[[]string]
		difficulties util.Result[[]string]
		profile      util.Result[[]CategoryDifficultyCount]
		attempts     util.Result[[]Attempt]
	)

	var g errgroup.Group
	g.Go(func() error { total = util.Fetch(ctx, s.statsTimeout, s.repo.CountQuestions); return nil })
	g.Go(func() error { categories = util.Fetch(ctx, s.statsTimeout, s.repo.DistinctCategories); return nil })
	g.Go(func() error { difficulties = util.Fetch(ctx, s.statsTimeout, s.repo.DistinctDifficulties); return nil })
	g.Go(func() error { profile = util.Fetch(ctx, s.statsTimeout, s.repo.CategoryProfile); return nil })
	g.Go(func() error { attempts = util.Fetch(ctx, s.statsTimeout, s.repo.ListAttempts); return nil })
	_ = g.Wait()

	for name, st := range map[string]util.FetchStatus{
		"total_questions": total.Status,
		"categories":      categories.Status,
		"difficulties":    difficulties.Status,
		"profile":         profile.Status,
		"attempts":        attempts.Status,
	} {
		if st != util.FetchOk {
			log.WithFields(logrus.Fields{"source": name, "status": st.String()}).Warn("Stats source degraded")
		}
	}

	resp := StatsResponse{
		Success:           true,
		TotalQuestions:    total.Or(catalog.PlaceholderTotalQuestions),
		Categories:        categories.Or(catalog.FallbackCategoryNames()),
		Difficulties:      difficulties.Or(catalog.Difficulties()),
		CategoryBreakdown: []CategoryCountDTO{},
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if resp.Difficulties == nil {
		resp.Difficulties = []string{}
	}
	resp.TotalCategories = len(resp.Categories)

	if profile.Ok() {
		for _, c := range summarizeProfile(profile.Value) {
			resp.CategoryBreakdown = append(resp.CategoryBreakdown, CategoryCountDTO{Category: c.Name, Count: c.QuestionCount})
		}
	}

	agg := Aggregate(attempts.Or(nil), statsRecentWindow)
	resp.AverageScore = agg.AverageScore(catalog.PlaceholderAverageScore)
	resp.CompletedToday = agg.CompletedOn(s.now())
	if len(agg.RecentSamples) > 0 {
		resp.RecentQuizzes = toRecentDTOs(agg.RecentSamples)
	} else {
		for _, sample := range catalog.SampleRecentQuizzes() {
			resp.RecentQuizzes = append(resp.RecentQuizzes, RecentQuizDTO{
				Category: sample.Category,
				Score:    sample.Score,
				Date:     util.NewDate(sample.Date),
			})
		}
	}
	return resp
}

// UserStats aggregates the caller's own attempts. A store that fails or
// misses the deadline yields empty stats rather than an error.
func (s *quizService) UserStats(ctx context.Context, userID uuid.UUID) UserStatsResponse {
	res := util.Fetch(ctx, s.statsTimeout, func(ctx context.Context) ([]Attempt, error) {
		return s.repo.ListAttemptsByUser(ctx, userID)
	})
	if !res.Ok() {
		config.WithContext(ctx).WithError(res.Err).WithFields(logrus.Fields{
			"user_id": userID.String(),
			"status":  res.Status.String(),
		}).Warn("User attempts unavailable, serving empty stats")
	}

	agg := Aggregate(res.Or(nil), userStatsRecentWindow)
	resp := UserStatsResponse{
		TotalAttempts:  agg.TotalAttempts,
		CorrectAnswers: agg.CorrectAnswers,
		AverageScore:   agg.AverageScore(0),
		CategoryStats:  make(map[string]CategoryStatsDTO, len(agg.CategoryBreakdown)),
		RecentQuizzes:  toRecentDTOs(agg.RecentSamples),
	}
	for name, cs := range agg.CategoryBreakdown {
		resp.CategoryStats[name] = CategoryStatsDTO{
			Total:    cs.Total,
			Correct:  cs.Correct,
			Accuracy: Percent(cs.Correct, cs.Total),
		}
	}
	return resp
}

func (s *quizService) Questions(ctx context.Context, category, difficulty string, limit int) ([]QuestionDTO, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	known, ok := catalog.ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	if difficulty != "" && !catalog.Difficulty(difficulty).IsValid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, difficulty)
	}
	if limit <= 0 {
		limit = defaultQuestionLimit
	}
	if limit > maxQuestionLimit {
		limit = maxQuestionLimit
	}

	questions, err := s.repo.ListQuestions(ctx, string(known), difficulty, limit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list questions")
		return nil, err
	}

	out := make([]QuestionDTO, 0, len(questions))
	for i := range questions {
		out = append(out, ToQuestionDTO(&questions[i]))
	}
	return out, nil
}

// Seed inserts the built-in questions that are not stored yet. Running it
// twice inserts nothing the second time.
func (s *quizService) Seed(ctx context.Context) (*SeedResult, error) {
	seeds := catalog.SeedQuestions()
	questions := make([]Question, 0, len(seeds))
	for _, sq := range seeds {
		questions = append(questions, Question{
			ID:            uuid.New(),
			Category:      string(sq.Category),
			Difficulty:    sq.Difficulty,
			Prompt:        sq.Prompt,
			Options:       append([]string{}, sq.Options...),
			CorrectOption: sq.CorrectOption,
			Explanation:   sq.Explanation,
			Tags:          append([]string{}, sq.Tags...),
		})
	}

	inserted, err := s.repo.InsertMissingQuestions(ctx, questions)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to seed questions")
		return nil, err
	}

	config.WithContext(ctx).WithField("inserted", inserted).Info("Quiz catalog seeded")
	return &SeedResult{Inserted: inserted, Total: len(questions)}, nil
}
