package user

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/quiz"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) (*Profile, error)

	GetProgress(ctx context.Context, id uuid.UUID) (*Progress, error)
	RecordQuizResult(ctx context.Context, id uuid.UUID, outcome quiz.Outcome) error

	RecordResume(ctx context.Context, id uuid.UUID, rec *ResumeRecord) error
	ListResumeRecords(ctx context.Context, id uuid.UUID) ([]ResumeRecord, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&User{}).Where("email = ?", u.Email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrEmailTaken
		}
		return tx.Create(u).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u User
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		dto.Apply(&u.Profile)
		if err := tx.Model(&u).Select(
			"profile_avatar", "profile_phone", "profile_location", "profile_experience",
			"profile_current_role", "profile_target_role", "profile_skills",
		).Updates(&u).Error; err != nil {
			return err
		}
		profile = u.Profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) GetProgress(ctx context.Context, id uuid.UUID) (*Progress, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var scores []InterviewScore
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("id ASC").
		Find(&scores).Error; err != nil {
		return nil, err
	}

	skills := append([]string{}, u.SkillsImproved...)
	if scores == nil {
		scores = []InterviewScore{}
	}
	return &Progress{
		ResumeScore:       u.ResumeScore,
		InterviewScores:   scores,
		TotalQuizzesTaken: u.TotalQuizzesTaken,
		SkillsImproved:    skills,
	}, nil
}

// RecordQuizResult bumps the quiz counter in the store, appends the interview
// score and marks the category as improved on a correct answer, all in one
// transaction.
func (r *userRepository) RecordQuizResult(ctx context.Context, id uuid.UUID, outcome quiz.Outcome) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&User{}).
			Where("id = ?", id).
			UpdateColumn("total_quizzes_taken", gorm.Expr("total_quizzes_taken + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}

		score := InterviewScore{
			UserID:     id,
			Score:      outcome.Score,
			Category:   outcome.Category,
			RecordedAt: outcome.RecordedAt,
		}
		if err := tx.Create(&score).Error; err != nil {
			return err
		}

		if !outcome.Correct || outcome.Category == "" {
			return nil
		}

		var u User
		if err := tx.Select("id", "skills_improved").First(&u, "id = ?", id).Error; err != nil {
			return err
		}
		if slices.Contains(u.SkillsImproved, outcome.Category) {
			return nil
		}
		u.SkillsImproved = append(u.SkillsImproved, outcome.Category)
		return tx.Model(&User{}).Where("id = ?", id).UpdateColumn("skills_improved", u.SkillsImproved).Error
	})
}

// RecordResume appends rec to the user's history and makes its score the
// current resume score.
func (r *userRepository) RecordResume(ctx context.Context, id uuid.UUID, rec *ResumeRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&User{}).Where("id = ?", id).UpdateColumn("resume_score", rec.ATSScore)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		rec.UserID = id
		return tx.Create(rec).Error
	})
}

func (r *userRepository) ListResumeRecords(ctx context.Context, id uuid.UUID) ([]ResumeRecord, error) {
	var records []ResumeRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
