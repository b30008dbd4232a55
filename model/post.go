package model

import (
	"time"
)

const (
	// Number of characters of text used when a post is printed.
	PostStringLength = 15
)

/*

Post is a piece of text published by an author

ID: primary key
CreatedAt: publication time, set once on insert

Text: post body, never empty
GroupID:
Group: optional community, "belongs-to" relation, nullified when group is deleted
AuthorID:
Author: user who wrote the post, "belongs-to" relation, post is deleted with its author
Image: object key of the attached image in the image store, empty if none

Posts are always listed newest first.
*/
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	Text      string    `gorm:"not null"`
	GroupID   *uint
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	AuthorID  uint   `gorm:"not null;index"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Image     string
}

func (p Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > PostStringLength {
		return string(runes[:PostStringLength])
	}
	return p.Text
}

// HasImage returns true if an image is attached to the post.
func (p Post) HasImage() bool {
	return p.Image != ""
}
