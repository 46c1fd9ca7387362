package postgres

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/frahmantamala/recognition/internal/auth"
	sessionDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/session"
	userDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/user"
	"github.com/frahmantamala/recognition/internal/user"
	"gorm.io/gorm"
)

// Repository implements both auth.CredentialRepository and
// auth.SessionRepository on the same handle.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(u *userDatamodel.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return auth.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *Repository) GetCredentials(email string) (int64, string, error) {
	var userID int64
	var passwordHash string

	row := r.db.Raw(`SELECT id, password_hash FROM users WHERE email = ?`, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", user.ErrNotFound
		}
		return 0, "", err
	}
	return userID, passwordHash, nil
}

func (r *Repository) CreateSession(s *auth.Session) error {
	record := &sessionDatamodel.Session{
		ID:        s.Token,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
	}
	return r.db.Create(record).Error
}

func (r *Repository) GetSession(token string) (*auth.Session, error) {
	var record sessionDatamodel.Session
	err := r.db.Where("id = ?", token).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auth.Session{
		Token:     record.ID,
		UserID:    record.UserID,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

func (r *Repository) DeleteSession(token string) error {
	return r.db.Where("id = ?", token).Delete(&sessionDatamodel.Session{}).Error
}

func (r *Repository) PurgeExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at <= ?", now).Delete(&sessionDatamodel.Session{})
	return result.RowsAffected, result.Error
}

// SetSessionExpiry force-updates a session expiry; used by tests and ops
// tooling, never by request handling.
func (r *Repository) SetSessionExpiry(token string, expiresAt time.Time) error {
	return r.db.Model(&sessionDatamodel.Session{}).
		Where("id = ?", token).
		Update("expires_at", expiresAt).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
