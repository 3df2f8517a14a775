package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidInput     = errors.New("invalid input")
)

type CategoryDifficultyCount struct {
	Category   string
	Difficulty string
	Count      int64
}

type QuizRepository interface {
	GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error)
	ListQuestions(ctx context.Context, category, difficulty string, limit int) ([]Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctDifficulties(ctx context.Context) ([]string, error)
	CategoryProfile(ctx context.Context) ([]CategoryDifficultyCount, error)
	InsertMissingQuestions(ctx context.Context, questions []Question) (int, error)

	CreateAttempt(ctx context.Context, a *Attempt) error
	ListAttempts(ctx context.Context) ([]Attempt, error)
	ListAttemptsByUser(ctx context.Context, userID uuid.UUID) ([]Attempt, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) ListQuestions(ctx context.Context, category, difficulty string, limit int) ([]Question, error) {
	var questions []Question
	tx := r.db.WithContext(ctx).Where("category = ?", category)
	if difficulty != "" {
		tx = tx.Where("difficulty = ?", difficulty)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) CountQuestions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Question{}).Count(&n).Error
	return n, err
}

func (r *quizRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&Question{}).Distinct().Order("category").Pluck("category", &out).Error
	return out, err
}

func (r *quizRepository) DistinctDifficulties(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&Question{}).Distinct().Order("difficulty").Pluck("difficulty", &out).Error
	return out, err
}

func (r *quizRepository) CategoryProfile(ctx context.Context) ([]CategoryDifficultyCount, error) {
	var rows []CategoryDifficultyCount
	err := r.db.WithContext(ctx).
		Model(&Question{}).
		Select("category, difficulty, COUNT(*) AS count").
		Group("category, difficulty").
		Order("category, difficulty").
		Scan(&rows).Error
	return rows, err
}

// InsertMissingQuestions inserts the questions whose prompt is not stored yet
// and returns how many were new.
func (r *quizRepository) InsertMissingQuestions(ctx context.Context, questions []Question) (int, error) {
	if len(questions) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "prompt"}}, DoNothing: true}).
		Create(&questions)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *quizRepository) CreateAttempt(ctx context.Context, a *Attempt) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *quizRepository) ListAttempts(ctx context.Context) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *quizRepository) ListAttemptsByUser(ctx context.Context, userID uuid.UUID) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
