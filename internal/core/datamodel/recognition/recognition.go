package recognition

import "time"

// Recognition rows are append-only; nothing updates or deletes them.
type Recognition struct {
	ID          int64     `gorm:"primaryKey"`
	SenderID    int64     `gorm:"column:sender_id;not null"`
	RecipientID int64     `gorm:"column:recipient_id;not null"`
	ValueID     int64     `gorm:"column:value_id;not null"`
	Message     string    `gorm:"column:message;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

const (
	InteractionTypeLike    = "like"
	InteractionTypeComment = "comment"
)

type RecognitionInteraction struct {
	ID            int64     `gorm:"primaryKey"`
	RecognitionID int64     `gorm:"column:recognition_id;not null"`
	UserID        int64     `gorm:"column:user_id;not null"`
	Type          string    `gorm:"column:type;not null"`
	Content       *string   `gorm:"column:content"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}
