package model

import "time"

/*

Comment is a reply left under a post

ID: primary key
CreatedAt: time when comment is created
PostID:
Post: commented post, "belongs-to" relation, comment is deleted with the post
AuthorID:
Author: commenter, "belongs-to" relation, comment is deleted with the author
Text: comment body, never empty
*/
type Comment struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	PostID    uint   `gorm:"not null;index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint   `gorm:"not null;index"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"not null"`
}

func (c Comment) String() string {
	return c.Text
}
