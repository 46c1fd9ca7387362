package user

import "time"

type User struct {
	ID           int64      `gorm:"primaryKey"`
	Email        string     `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Name         string     `gorm:"column:name;not null"`
	AvatarURL    *string    `gorm:"column:avatar_url"`
	Birthday     *time.Time `gorm:"column:birthday;type:date"`
	TeamID       *int64     `gorm:"column:team_id"`
	IsAdmin      bool       `gorm:"column:is_admin;default:false"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
