package entities

import "time"

type User struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Username     string `gorm:"uniqueIndex" json:"username"`
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}
