package session

import "time"

// Session maps an opaque token to a user with an absolute expiry. The token
// itself is the primary key; expiry is evaluated at read time.
type Session struct {
	ID        string    `gorm:"primaryKey;column:id"`
	UserID    int64     `gorm:"column:user_id;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
