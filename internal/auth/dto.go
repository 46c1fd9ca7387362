package auth

import (
	"strings"
	"time"

	"github.com/frahmantamala/recognition/internal/user"
)

// RegisterDTO is the transport shape for the register endpoint.
type RegisterDTO struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Name      string  `json:"name"`
	Birthday  *string `json:"birthday,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	TeamID    *int64  `json:"team_id,omitempty"`
}

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d RegisterDTO) Validate() error {
	if strings.TrimSpace(d.Email) == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	if strings.TrimSpace(d.Name) == "" {
		return ValidationError{Msg: "name is required"}
	}
	if d.Birthday != nil && *d.Birthday != "" {
		if _, err := time.Parse(user.BirthdayLayout, *d.Birthday); err != nil {
			return ValidationError{Msg: "birthday must be formatted YYYY-MM-DD"}
		}
	}
	return nil
}

// BirthdayDate parses the optional birthday field. Validate must pass first.
func (d RegisterDTO) BirthdayDate() *time.Time {
	if d.Birthday == nil || *d.Birthday == "" {
		return nil
	}
	t, err := time.Parse(user.BirthdayLayout, *d.Birthday)
	if err != nil {
		return nil
	}
	return &t
}

func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}
