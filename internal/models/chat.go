package models

import "time"

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"not null" json:"content"`
	Sender    string    `gorm:"not null" json:"sender"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

func IsValidSender(value string) bool {
	return value == SenderUser || value == SenderBot
}
