package recognition

import (
	"errors"
	"time"

	"github.com/frahmantamala/recognition/internal"
)

// RecognitionView is a ledger entry enriched with the display fields the feed
// needs: sender and recipient names, avatars and org labels, the value's
// presentation, and interaction counts.
type RecognitionView struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
	ValueID     int64     `json:"value_id"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`

	SenderName          string  `json:"sender_name"`
	SenderAvatarURL     *string `json:"sender_avatar_url,omitempty"`
	SenderTeam          *string `json:"sender_team,omitempty"`
	SenderDepartment    *string `json:"sender_department,omitempty"`
	SenderArea          *string `json:"sender_area,omitempty"`
	SenderBranch        *string `json:"sender_branch,omitempty"`
	RecipientName       string  `json:"recipient_name"`
	RecipientAvatarURL  *string `json:"recipient_avatar_url,omitempty"`
	RecipientTeam       *string `json:"recipient_team,omitempty"`
	RecipientDepartment *string `json:"recipient_department,omitempty"`
	RecipientArea       *string `json:"recipient_area,omitempty"`
	RecipientBranch     *string `json:"recipient_branch,omitempty"`

	ValueName  string `json:"value_name"`
	ValueIcon  string `json:"value_icon,omitempty"`
	ValueColor string `json:"value_color,omitempty"`

	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// InteractionView is a single like or comment with the acting user's name.
type InteractionView struct {
	ID            int64     `json:"id"`
	RecognitionID int64     `json:"recognition_id"`
	UserID        int64     `json:"user_id"`
	UserName      string    `json:"user_name"`
	Type          string    `json:"type"`
	Content       *string   `json:"content,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// InteractionSummary is what the interactions endpoint returns: the comment
// thread, the like count, and whether the requesting user already liked.
type InteractionSummary struct {
	Comments  []*InteractionView `json:"comments"`
	Likes     int64              `json:"likes"`
	UserLiked bool               `json:"user_liked"`
}

// MaxMessageLength caps recognition messages and comments.
const MaxMessageLength = 1000

var (
	ErrSelfRecognition = internal.NewValidationError("Cannot send a recognition to yourself", internal.ErrCodeSelfRecognition)
	ErrNotFound        = internal.ErrRecognitionNotFound

	// ErrDuplicateLike is the repository's translation of the unique like
	// constraint; the service resolves it to the stored interaction.
	ErrDuplicateLike = errors.New("user already liked this recognition")
)
