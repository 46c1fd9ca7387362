package recognition

import (
	"strings"

	"github.com/frahmantamala/recognition/internal"
	"github.com/frahmantamala/recognition/internal/core/common/validation"
	recognitionDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/recognition"
)

// CreateRecognitionDTO is the request payload for posting a recognition.
type CreateRecognitionDTO struct {
	RecipientID int64  `json:"recipient_id"`
	ValueID     int64  `json:"value_id"`
	Message     string `json:"message"`
}

func (dto CreateRecognitionDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("recipient_id", dto.RecipientID).Required(internal.ErrCodeMissingField)
	v.Field("value_id", dto.ValueID).Required(internal.ErrCodeMissingField)
	v.Field("message", dto.Message).
		Required(internal.ErrCodeInvalidMessage).
		MaxLength(MaxMessageLength, internal.ErrCodeMessageTooLong)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// InteractionDTO is the request payload for liking or commenting.
type InteractionDTO struct {
	Type    string  `json:"type"`
	Content *string `json:"content,omitempty"`
}

func (dto InteractionDTO) Validate() error {
	switch dto.Type {
	case recognitionDatamodel.InteractionTypeLike:
		return nil
	case recognitionDatamodel.InteractionTypeComment:
		if dto.Content == nil || strings.TrimSpace(*dto.Content) == "" {
			return internal.NewValidationFieldError("content", "comment content is required", internal.ErrCodeInvalidInteraction)
		}
		if len(*dto.Content) > MaxMessageLength {
			return internal.NewValidationFieldError("content", "comment must be at most 1000 characters", internal.ErrCodeMessageTooLong)
		}
		return nil
	default:
		return internal.NewValidationFieldError("type", "type must be 'like' or 'comment'", internal.ErrCodeInvalidInteraction)
	}
}
