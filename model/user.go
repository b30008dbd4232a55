package model

import (
	"strings"
	"time"
)

/*

User is a registered member of the platform, both reader and author

ID: primary key
CreatedAt: time when the account is registered

Username: unique handle, addresses the profile feed
Email: contact address
FirstName:
LastName: optional, used for display name
PasswordHash: bcrypt hash, never rendered
*/
type User struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	Username     string `gorm:"size:150;uniqueIndex;not null"`
	Email        string `gorm:"size:254"`
	FirstName    string `gorm:"size:150"`
	LastName     string `gorm:"size:150"`
	PasswordHash string `json:"-"`
}

// FullName returns "first last" when any part is set, otherwise the username.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func (u User) String() string {
	return u.Username
}
