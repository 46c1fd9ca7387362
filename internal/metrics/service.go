package metrics

import (
	"log/slog"
	"math"
	"time"
)

// Repository defines the aggregate queries the metrics service reads from.
type Repository interface {
	UserStats(userID int64) (*UserStats, error)
	CountUsers() (int64, error)
	CountParticipants() (int64, error)
	NetworkNodes() ([]NetworkNode, error)
	NetworkEdges() ([]NetworkEdge, error)
	CountRecognitions() (int64, error)
	CountRecognitionsSince(since time.Time) (int64, error)
	TopRecipients(limit int) ([]TopRecipient, error)
}

// TopRecipientCount caps the summary leaderboard.
const TopRecipientCount = 5

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the clock; tests use it to pin month boundaries.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) UserStats(userID int64) (*UserStats, error) {
	stats, err := s.repo.UserStats(userID)
	if err != nil {
		s.logger.Error("failed to compute user stats", "error", err, "user_id", userID)
		return nil, err
	}
	stats.UserID = userID
	return stats, nil
}

// Participation computes round(100 * participants / total users). An empty
// user table yields a zero rate, not a division error.
func (s *Service) Participation() (*Participation, error) {
	total, err := s.repo.CountUsers()
	if err != nil {
		s.logger.Error("failed to count users", "error", err)
		return nil, err
	}

	participation := &Participation{TotalUsers: total}
	if total == 0 {
		return participation, nil
	}

	participants, err := s.repo.CountParticipants()
	if err != nil {
		s.logger.Error("failed to count participants", "error", err)
		return nil, err
	}

	participation.Participants = participants
	participation.Rate = int(math.Round(100 * float64(participants) / float64(total)))
	return participation, nil
}

func (s *Service) Network() (*Network, error) {
	nodes, err := s.repo.NetworkNodes()
	if err != nil {
		s.logger.Error("failed to load network nodes", "error", err)
		return nil, err
	}

	edges, err := s.repo.NetworkEdges()
	if err != nil {
		s.logger.Error("failed to load network edges", "error", err)
		return nil, err
	}

	return &Network{Nodes: nodes, Edges: edges}, nil
}

func (s *Service) Summary() (*Summary, error) {
	total, err := s.repo.CountRecognitions()
	if err != nil {
		s.logger.Error("failed to count recognitions", "error", err)
		return nil, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.repo.CountRecognitionsSince(monthStart)
	if err != nil {
		s.logger.Error("failed to count recognitions this month", "error", err)
		return nil, err
	}

	top, err := s.repo.TopRecipients(TopRecipientCount)
	if err != nil {
		s.logger.Error("failed to load top recipients", "error", err)
		return nil, err
	}

	return &Summary{
		TotalRecognitions: total,
		ThisMonth:         thisMonth,
		TopRecipients:     top,
	}, nil
}
