package auth

import (
	"errors"
	"log/slog"
	"time"

	userDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/user"
	"github.com/frahmantamala/recognition/internal/user"
	"golang.org/x/crypto/bcrypt"
)

// CredentialRepository persists identities and is the only component that
// ever touches the password hash.
type CredentialRepository interface {
	CreateUser(u *userDatamodel.User) error
	GetCredentials(email string) (userID int64, passwordHash string, err error)
}

// SessionRepository persists opaque session tokens.
type SessionRepository interface {
	CreateSession(s *Session) error
	GetSession(token string) (*Session, error)
	DeleteSession(token string) error
	PurgeExpired(now time.Time) (int64, error)
}

// Service performs registration, authentication and session management.
type Service struct {
	creds      CredentialRepository
	sessions   SessionRepository
	users      user.Repository
	bcryptCost int
	sessionTTL time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(creds CredentialRepository, sessions SessionRepository, users user.Repository, bcryptCost int, sessionTTL time.Duration, logger *slog.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		creds:      creds,
		sessions:   sessions,
		users:      users,
		bcryptCost: bcryptCost,
		sessionTTL: sessionTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// dummyHash is a bcrypt hash of a filler password. It is compared when the
// email is unknown so both login failure paths cost one hash comparison.
var dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates an identity and returns the password-stripped user.
// A duplicate email surfaces as ErrEmailTaken, never as a storage error.
func (s *Service) Register(dto RegisterDTO) (*user.User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	record := &userDatamodel.User{
		Email:        dto.Email,
		PasswordHash: string(hash),
		Name:         dto.Name,
		AvatarURL:    dto.AvatarURL,
		Birthday:     dto.BirthdayDate(),
		TeamID:       dto.TeamID,
	}

	if err := s.creds.CreateUser(record); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			s.logger.Warn("registration rejected: email taken", "email", dto.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", record.ID)
	return s.users.GetByID(record.ID)
}

// Authenticate verifies credentials and returns the password-stripped user.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(dto LoginDTO) (*user.User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	userID, storedHash, err := s.creds.GetCredentials(dto.Email)
	if err != nil {
		// burn a comparison so the unknown-email path is not faster
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(dto.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.users.GetByID(userID)
}

// CreateSession issues an opaque token with an absolute expiry.
func (s *Service) CreateSession(userID int64) (string, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", err
	}

	session := &Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	if err := s.sessions.CreateSession(session); err != nil {
		s.logger.Error("failed to create session", "error", err, "user_id", userID)
		return "", err
	}

	return token, nil
}

// SessionUser resolves a token to its user. Missing, unknown or expired
// tokens return (nil, nil); absence is the normal unauthenticated signal.
func (s *Service) SessionUser(token string) (*user.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.GetSession(token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(s.now()) {
		return nil, nil
	}

	u, err := s.users.GetByID(session.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// DeleteSession removes the session row; deleting an unknown token is a no-op.
func (s *Service) DeleteSession(token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(token)
}

// WithClock overrides the time source, used by tests to force expiry.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
