package recognition

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/recognition/internal"
	recognitionDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/recognition"
	"github.com/frahmantamala/recognition/internal/core/events"
	"github.com/frahmantamala/recognition/internal/user"
	"github.com/frahmantamala/recognition/internal/value"
)

// Repository defines the data access methods for the recognition ledger.
// Ledger rows are insert-only; there is no update or delete.
type Repository interface {
	Create(rec *recognitionDatamodel.Recognition) error
	GetByID(id int64) (*recognitionDatamodel.Recognition, error)
	ListViews() ([]*RecognitionView, error)
	CreateInteraction(interaction *recognitionDatamodel.RecognitionInteraction) error
	FindLike(recognitionID, userID int64) (*recognitionDatamodel.RecognitionInteraction, error)
	GetInteractions(recognitionID int64) ([]*InteractionView, error)
}

// UserGetter resolves recipients; satisfied by the user repository.
type UserGetter interface {
	GetByID(id int64) (*user.User, error)
}

// ValueGetter resolves value references; satisfied by the value service.
type ValueGetter interface {
	GetValueByID(id int64) (*value.Value, error)
}

type Service struct {
	repo     Repository
	users    UserGetter
	values   ValueGetter
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, users UserGetter, values ValueGetter, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		values:   values,
		eventBus: eventBus,
		logger:   logger,
	}
}

// CreateRecognition appends a new entry to the ledger and returns its id.
func (s *Service) CreateRecognition(senderID int64, dto CreateRecognitionDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("recognition validation failed", "error", err, "sender_id", senderID)
		return 0, err
	}

	if dto.RecipientID == senderID {
		s.logger.Warn("self recognition rejected", "sender_id", senderID)
		return 0, ErrSelfRecognition
	}

	if _, err := s.users.GetByID(dto.RecipientID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return 0, internal.ErrUserNotFound
		}
		s.logger.Error("failed to resolve recipient", "error", err, "recipient_id", dto.RecipientID)
		return 0, err
	}

	if _, err := s.values.GetValueByID(dto.ValueID); err != nil {
		if errors.Is(err, value.ErrNotFound) {
			return 0, internal.ErrValueNotFound
		}
		s.logger.Error("failed to resolve value", "error", err, "value_id", dto.ValueID)
		return 0, err
	}

	rec := &recognitionDatamodel.Recognition{
		SenderID:    senderID,
		RecipientID: dto.RecipientID,
		ValueID:     dto.ValueID,
		Message:     dto.Message,
	}

	if err := s.repo.Create(rec); err != nil {
		s.logger.Error("failed to create recognition", "error", err, "sender_id", senderID)
		return 0, err
	}

	s.logger.Info("recognition created",
		"recognition_id", rec.ID,
		"sender_id", senderID,
		"recipient_id", dto.RecipientID,
		"value_id", dto.ValueID)

	if s.eventBus != nil {
		event := events.NewRecognitionCreatedEvent(rec.ID, senderID, dto.RecipientID, dto.ValueID)
		if err := s.eventBus.Publish(context.Background(), event); err != nil {
			s.logger.Error("failed to publish recognition event", "error", err, "recognition_id", rec.ID)
		}
	}

	return rec.ID, nil
}

// GetRecognitions returns the whole feed, newest first.
func (s *Service) GetRecognitions() ([]*RecognitionView, error) {
	views, err := s.repo.ListViews()
	if err != nil {
		s.logger.Error("failed to list recognitions", "error", err)
		return nil, err
	}
	return views, nil
}

// AddInteraction records a like or a comment. Likes are idempotent per
// (user, recognition): a repeat like returns the existing interaction id.
func (s *Service) AddInteraction(recognitionID, userID int64, dto InteractionDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	if _, err := s.repo.GetByID(recognitionID); err != nil {
		return 0, ErrNotFound
	}

	if dto.Type == recognitionDatamodel.InteractionTypeLike {
		existing, err := s.repo.FindLike(recognitionID, userID)
		if err != nil {
			s.logger.Error("failed to look up existing like", "error", err, "recognition_id", recognitionID, "user_id", userID)
			return 0, err
		}
		if existing != nil {
			return existing.ID, nil
		}
	}

	interaction := &recognitionDatamodel.RecognitionInteraction{
		RecognitionID: recognitionID,
		UserID:        userID,
		Type:          dto.Type,
		Content:       dto.Content,
	}
	if dto.Type == recognitionDatamodel.InteractionTypeLike {
		interaction.Content = nil
	}

	if err := s.repo.CreateInteraction(interaction); err != nil {
		// lost a race against a concurrent like from the same user; the
		// stored row is the answer either way
		if errors.Is(err, ErrDuplicateLike) {
			existing, findErr := s.repo.FindLike(recognitionID, userID)
			if findErr == nil && existing != nil {
				return existing.ID, nil
			}
		}
		s.logger.Error("failed to create interaction", "error", err, "recognition_id", recognitionID, "user_id", userID, "type", dto.Type)
		return 0, err
	}

	s.logger.Info("interaction added",
		"interaction_id", interaction.ID,
		"recognition_id", recognitionID,
		"user_id", userID,
		"type", dto.Type)

	if s.eventBus != nil {
		event := events.NewInteractionAddedEvent(interaction.ID, recognitionID, userID, dto.Type)
		if err := s.eventBus.Publish(context.Background(), event); err != nil {
			s.logger.Error("failed to publish interaction event", "error", err, "interaction_id", interaction.ID)
		}
	}

	return interaction.ID, nil
}

// InteractionsFor returns the comment thread ascending, the like count, and
// whether the given user already liked the recognition.
func (s *Service) InteractionsFor(recognitionID, currentUserID int64) (*InteractionSummary, error) {
	if _, err := s.repo.GetByID(recognitionID); err != nil {
		return nil, ErrNotFound
	}

	interactions, err := s.repo.GetInteractions(recognitionID)
	if err != nil {
		s.logger.Error("failed to list interactions", "error", err, "recognition_id", recognitionID)
		return nil, err
	}

	summary := &InteractionSummary{
		Comments: make([]*InteractionView, 0),
	}
	for _, interaction := range interactions {
		switch interaction.Type {
		case recognitionDatamodel.InteractionTypeComment:
			summary.Comments = append(summary.Comments, interaction)
		case recognitionDatamodel.InteractionTypeLike:
			summary.Likes++
			if interaction.UserID == currentUserID {
				summary.UserLiked = true
			}
		}
	}

	return summary, nil
}
