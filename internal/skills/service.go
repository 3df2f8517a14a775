package skills

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/user"
	util "github.com/saulo-duarte/careercoach/internal/utils"
	"github.com/sirupsen/logrus"
)

var ErrInvalidInput = errors.New("invalid input")

const defaultLookupTimeout = 3 * time.Second

// UserSource resolves the caller for personalisation.
type UserSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type Service interface {
	Demand(ctx context.Context) DemandResponse
	CoverLetter(ctx context.Context, userID uuid.UUID, req CoverLetterRequest) (*CoverLetterResponse, error)
	CareerTips(ctx context.Context, userID uuid.UUID) TipsResponse
}

type service struct {
	writer  *LetterWriter
	users   UserSource
	timeout time.Duration
	now     func() time.Time
}

// NewService builds the skills service. timeout bounds each user lookup.
func NewService(writer *LetterWriter, users UserSource, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &service{
		writer:  writer,
		users:   users,
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *service) Demand(ctx context.Context) DemandResponse {
	table := DemandTable()
	total := 0
	for _, d := range table {
		total += d.Jobs
	}
	return DemandResponse{Skills: table, LastUpdated: s.now().UTC(), TotalJobs: total}
}

// CoverLetter validates the request and always returns a letter once it is
// valid: a missing stored profile or an unusable model only change where the
// text comes from.
func (s *service) CoverLetter(ctx context.Context, userID uuid.UUID, req CoverLetterRequest) (*CoverLetterResponse, error) {
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.Company = strings.TrimSpace(req.Company)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	if req.JobTitle == "" || req.Company == "" {
		return nil, fmt.Errorf("%w: jobTitle and company are required", ErrInvalidInput)
	}
	if r := []rune(req.JobDescription); len(r) > maxJobDescription {
		req.JobDescription = string(r[:maxJobDescription])
	}

	var profile CoverLetterProfile
	if req.UserProfile != nil {
		profile = *req.UserProfile
	} else if u := s.lookup(ctx, userID); u != nil {
		profile = profileFromUser(u)
	}

	letter, source := s.writer.Write(ctx, req, profile)

	config.WithContext(ctx).WithFields(logrus.Fields{
		"user_id": userID.String(),
		"source":  source,
	}).Info("Cover letter generated")

	return &CoverLetterResponse{
		CoverLetter: letter,
		GeneratedAt: s.now().UTC(),
		Source:      source,
	}, nil
}

func (s *service) CareerTips(ctx context.Context, userID uuid.UUID) TipsResponse {
	resp := TipsResponse{Tips: append([]string{}, careerTips[:tipsShown]...)}
	if u := s.lookup(ctx, userID); u != nil {
		resp.PersonalizedFor = u.Name
	}
	return resp
}

// lookup returns nil when the user cannot be loaded in time.
func (s *service) lookup(ctx context.Context, userID uuid.UUID) *user.User {
	if s.users == nil {
		return nil
	}
	res := util.Fetch(ctx, s.timeout, func(ctx context.Context) (*user.User, error) {
		return s.users.FindByID(ctx, userID)
	})
	if !res.Ok() {
		config.WithContext(ctx).WithError(res.Err).WithFields(logrus.Fields{
			"user_id": userID.String(),
			"status":  res.Status.String(),
		}).Warn("User unavailable for personalisation")
		return nil
	}
	return res.Value
}

func profileFromUser(u *user.User) CoverLetterProfile {
	p := CoverLetterProfile{Name: u.Name, Skills: append([]string{}, u.Profile.Skills...)}
	if u.Profile.CurrentRole != nil {
		p.CurrentRole = *u.Profile.CurrentRole
	}
	if u.Profile.Experience != nil {
		p.Experience = *u.Profile.Experience
	}
	return p
}
