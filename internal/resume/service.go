package resume

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/user"
	"github.com/sirupsen/logrus"
)

const previewLength = 500

// HistoryStore persists analyses into the user's resume history.
type HistoryStore interface {
	RecordResume(ctx context.Context, id uuid.UUID, rec *user.ResumeRecord) error
	ListResumeRecords(ctx context.Context, id uuid.UUID) ([]user.ResumeRecord, error)
}

type Upload struct {
	Filename       string
	ContentType    string
	Data           []byte
	JobDescription string
}

type Service interface {
	Analyze(ctx context.Context, userID uuid.UUID, in Upload) (*UploadResponse, error)
	History(ctx context.Context, userID uuid.UUID) ([]user.ResumeRecord, error)
}

type service struct {
	scorer *Scorer
	store  HistoryStore
	delay  time.Duration
	now    func() time.Time
}

func NewService(scorer *Scorer, store HistoryStore, delay time.Duration) Service {
	return &service{
		scorer: scorer,
		store:  store,
		delay:  delay,
		now:    time.Now,
	}
}

// Analyze scores the document and records it in the user's history. Only a
// missing user stops the response; other persistence errors are logged.
func (s *service) Analyze(ctx context.Context, userID uuid.UUID, in Upload) (*UploadResponse, error) {
	log := config.WithContext(ctx).WithField("user_id", userID.String())

	text, err := Extract(in.Filename, in.ContentType, in.Data)
	if err != nil {
		log.WithError(err).WithField("filename", in.Filename).Warn("Could not read resume")
		return nil, err
	}

	jd := strings.TrimSpace(in.JobDescription)
	analysis := s.scorer.Score(ctx, text, jd)

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := s.now().UTC()
	preview := Preview(text, previewLength)
	rec := &user.ResumeRecord{
		Filename:    in.Filename,
		UploadedAt:  now,
		ATSScore:    analysis.ATSScore,
		Suggestions: append([]string{}, analysis.Suggestions...),
	}
	if config.CryptoEnabled() {
		if enc, err := config.Encrypt(preview); err == nil {
			rec.EncryptedPreview = enc
		} else {
			log.WithError(err).Warn("Could not encrypt resume preview")
		}
	}

	if err := s.store.RecordResume(ctx, userID, rec); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		log.WithError(err).Error("Failed to store resume analysis")
	}

	log.WithFields(logrus.Fields{
		"ats_score": analysis.ATSScore,
		"source":    analysis.Source,
	}).Info("Resume analysed")

	return &UploadResponse{
		Analysis:          analysis,
		Filename:          in.Filename,
		ResumeText:        preview,
		AnalysisDate:      now,
		HasJobDescription: jd != "",
	}, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID) ([]user.ResumeRecord, error) {
	records, err := s.store.ListResumeRecords(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list resume history")
		return nil, err
	}

	for i := range records {
		if records[i].Suggestions == nil {
			records[i].Suggestions = []string{}
		}
		if records[i].EncryptedPreview == "" || !config.CryptoEnabled() {
			continue
		}
		if plain, err := config.Decrypt(records[i].EncryptedPreview); err == nil {
			records[i].Preview = plain
		}
	}
	if records == nil {
		records = []user.ResumeRecord{}
	}
	return records, nil
}
