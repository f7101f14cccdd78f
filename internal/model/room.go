package model

import "time"

// Room is a topic room. Rooms are provisioned elsewhere; this service
// only mutates the live counters.
type Room struct {
	ID              string    `gorm:"primaryKey" json:"ID"`
	Name            string    `gorm:"index" json:"Name"`
	Topic           string    `json:"Topic"`
	Participants    int       `gorm:"not null;default:0" json:"Participants"`
	InterestedCount int       `gorm:"not null;default:0" json:"InterestedCount"`
	CreatedAt       time.Time `json:"CreatedAt"`
	UpdatedAt       time.Time `json:"UpdatedAt"`
}

// RoomInterest marks a user as interested in a room. Unique per
// (room, user); removed again when the user toggles interest off.
type RoomInterest struct {
	ID        uint      `gorm:"primaryKey" json:"ID"`
	RoomID    string    `gorm:"index;uniqueIndex:idx_room_user" json:"RoomID"`
	UserID    string    `gorm:"uniqueIndex:idx_room_user" json:"UserID"`
	UserName  string    `json:"UserName"`
	UserEmail string    `json:"UserEmail"`
	UserImage string    `json:"UserImage"`
	CreatedAt time.Time `json:"CreatedAt"`
}
