package organization

import "log/slog"

// Repository persists the org hierarchy. Ensure methods are idempotent:
// they create by name only when missing.
type Repository interface {
	EnsureBranch(name string) (int64, error)
	EnsureArea(branchID int64, name string) (int64, error)
	EnsureDepartment(areaID int64, name string) (int64, error)
	EnsureTeam(departmentID int64, name string) (int64, error)
	TeamIDByName(name string) (int64, error)
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

// EnsureHierarchy walks the seed chains and creates whatever is missing.
// Safe to run on every seed invocation.
func (s *Service) EnsureHierarchy(seeds []TeamSeed) error {
	for _, seed := range seeds {
		branchID, err := s.repo.EnsureBranch(seed.Branch)
		if err != nil {
			return err
		}
		areaID, err := s.repo.EnsureArea(branchID, seed.Area)
		if err != nil {
			return err
		}
		departmentID, err := s.repo.EnsureDepartment(areaID, seed.Department)
		if err != nil {
			return err
		}
		if _, err := s.repo.EnsureTeam(departmentID, seed.Team); err != nil {
			return err
		}
	}

	s.logger.Info("organization hierarchy ensured", "teams", len(seeds))
	return nil
}

// TeamIDByName resolves a team for user placement.
func (s *Service) TeamIDByName(name string) (int64, error) {
	return s.repo.TeamIDByName(name)
}
