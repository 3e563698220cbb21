package model

import "time"

// Session binds an opaque token to a user until ExpiryTime. Expired rows are
// kept; cleanup is an explicit maintenance concern, not done on validation.
// swagger:model Session
type Session struct {
	Token      string    `gorm:"primaryKey;size:64" json:"token"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	ExpiryTime time.Time `gorm:"not null" json:"expiryTime"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}
