package user

import (
	"log/slog"
	"sort"
	"time"
)

type Repository interface {
	GetAll() ([]*User, error)
	GetByID(id int64) (*User, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListUsers() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *Service) GetByID(id int64) (*User, error) {
	return s.repo.GetByID(id)
}

// UpcomingBirthdays returns every user with a stored birthday, ordered by
// days until the next occurrence; ties break on name.
func (s *Service) UpcomingBirthdays(today time.Time) ([]UpcomingBirthday, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to load users for birthdays", "error", err)
		return nil, err
	}

	upcoming := make([]UpcomingBirthday, 0)
	for _, u := range users {
		birthday, ok := u.BirthdayDate()
		if !ok {
			continue
		}
		_, daysUntil := NextBirthdayOccurrence(birthday, today)
		upcoming = append(upcoming, UpcomingBirthday{
			User:      *u,
			DaysUntil: daysUntil,
			IsToday:   daysUntil == 0,
		})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].DaysUntil != upcoming[j].DaysUntil {
			return upcoming[i].DaysUntil < upcoming[j].DaysUntil
		}
		return upcoming[i].Name < upcoming[j].Name
	})

	return upcoming, nil
}
