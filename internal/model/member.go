package model

import "time"

// CommunityMember records a user who joined the community. One row per
// user; a duplicate join is a no-op, not an error.
type CommunityMember struct {
	ID        uint      `gorm:"primaryKey" json:"ID"`
	UserID    string    `gorm:"uniqueIndex" json:"UserID"`
	UserName  string    `json:"UserName"`
	UserEmail string    `json:"UserEmail"`
	UserImage string    `json:"UserImage"`
	CreatedAt time.Time `json:"CreatedAt"`
}
