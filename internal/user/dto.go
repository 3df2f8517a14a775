package user

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	maxFieldLength = 200
	maxSkills      = 50
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Profile  Profile   `json:"profile"`
	Progress Progress  `json:"progress"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileDTO lists every profile field a client may change. A nil
// field is left untouched.
type UpdateProfileDTO struct {
	Avatar      *string   `json:"avatar"`
	Phone       *string   `json:"phone"`
	Location    *string   `json:"location"`
	Experience  *string   `json:"experience"`
	CurrentRole *string   `json:"currentRole"`
	TargetRole  *string   `json:"targetRole"`
	Skills      *[]string `json:"skills"`
}

func (d *UpdateProfileDTO) Validate() error {
	fields := map[string]*string{
		"avatar":      d.Avatar,
		"phone":       d.Phone,
		"location":    d.Location,
		"experience":  d.Experience,
		"currentRole": d.CurrentRole,
		"targetRole":  d.TargetRole,
	}
	for name, v := range fields {
		if v == nil {
			continue
		}
		*v = strings.TrimSpace(*v)
		if len(*v) > maxFieldLength {
			return fmt.Errorf("%w: %s is too long", ErrInvalidInput, name)
		}
	}

	if d.Skills != nil {
		if len(*d.Skills) > maxSkills {
			return fmt.Errorf("%w: at most %d skills", ErrInvalidInput, maxSkills)
		}
		cleaned := make([]string, 0, len(*d.Skills))
		seen := make(map[string]bool)
		for _, s := range *d.Skills {
			s = strings.TrimSpace(s)
			if s == "" || seen[strings.ToLower(s)] {
				continue
			}
			if len(s) > maxFieldLength {
				return fmt.Errorf("%w: skill is too long", ErrInvalidInput)
			}
			seen[strings.ToLower(s)] = true
			cleaned = append(cleaned, s)
		}
		*d.Skills = cleaned
	}
	return nil
}

// Apply copies the set fields onto p. Empty strings clear a field.
func (d *UpdateProfileDTO) Apply(p *Profile) {
	set := func(dst **string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			*dst = nil
			return
		}
		s := *v
		*dst = &s
	}
	set(&p.Avatar, d.Avatar)
	set(&p.Phone, d.Phone)
	set(&p.Location, d.Location)
	set(&p.Experience, d.Experience)
	set(&p.CurrentRole, d.CurrentRole)
	set(&p.TargetRole, d.TargetRole)
	if d.Skills != nil {
		p.Skills = append([]string{}, (*d.Skills)...)
	}
}

func toUserResponse(u *User, progress *Progress) UserResponse {
	resp := UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Profile: normalizeProfile(u.Profile),
	}
	if progress != nil {
		resp.Progress = *progress
	}
	return resp
}

func normalizeProfile(p Profile) Profile {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p
}
