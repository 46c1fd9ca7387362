package value

import (
	"log/slog"

	valueDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/value"
)

type RepositoryAPI interface {
	GetAll() ([]*valueDatamodel.OrganizationValue, error)
	GetByID(id int64) (*valueDatamodel.OrganizationValue, error)
	Count() (int64, error)
	Create(v *valueDatamodel.OrganizationValue) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllValues() ([]Value, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get values from repository", "error", err)
		return nil, err
	}

	values := make([]Value, 0, len(records))
	for _, record := range records {
		values = append(values, *FromDataModel(record))
	}
	return values, nil
}

func (s *Service) GetValueByID(id int64) (*Value, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return FromDataModel(record), nil
}

// EnsureSeeded inserts the default catalog when the table is empty; a second
// call is a no-op.
func (s *Service) EnsureSeeded() error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range DefaultValues {
		record := ToDataModel(&DefaultValues[i])
		record.ID = 0
		if err := s.repo.Create(record); err != nil {
			return err
		}
	}

	s.logger.Info("seeded default values", "count", len(DefaultValues))
	return nil
}
