package user

import (
	"errors"
	"time"

	userDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/user"
)

// BirthdayLayout is the wire format for birthdays (calendar date, the year
// only matters for display).
const BirthdayLayout = "2006-01-02"

// User is the password-stripped projection returned by every access path.
// The hash never leaves the repository layer.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	Birthday   *string   `json:"birthday,omitempty"`
	Team       *string   `json:"team,omitempty"`
	Department *string   `json:"department,omitempty"`
	Area       *string   `json:"area,omitempty"`
	Branch     *string   `json:"branch,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
}

// BirthdayDate parses the stored birthday into a calendar date.
func (u *User) BirthdayDate() (time.Time, bool) {
	if u.Birthday == nil || *u.Birthday == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(BirthdayLayout, *u.Birthday)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// UpcomingBirthday decorates a user with the distance to the next birthday
// occurrence. DaysUntil of zero means today.
type UpcomingBirthday struct {
	User
	DaysUntil int  `json:"days_until"`
	IsToday   bool `json:"is_today"`
}

var ErrNotFound = errors.New("user not found")

func FromDataModel(u *userDatamodel.User) *User {
	domainUser := &User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
	if u.Birthday != nil {
		b := u.Birthday.Format(BirthdayLayout)
		domainUser.Birthday = &b
	}
	return domainUser
}
