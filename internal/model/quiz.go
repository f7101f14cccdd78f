package model

import "time"

// QuizResult stores one quiz submission per user.
type QuizResult struct {
	ID        string    `gorm:"primaryKey" json:"ID"`
	UserID    string    `gorm:"uniqueIndex" json:"UserID"`
	Score     int       `json:"Score"`
	CreatedAt time.Time `json:"CreatedAt"`
}
