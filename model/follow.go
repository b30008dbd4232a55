package model

import "time"

/*

Follow is a directed subscription edge, User reads posts of Author

ID: primary key
CreatedAt: time when the edge is created
UserID:
User: follower, "belongs-to" relation
AuthorID:
Author: followed user, "belongs-to" relation

Both sides cascade on user deletion. A (UserID, AuthorID) pair is unique and
a user can never follow themselves.
*/
type Follow struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint `gorm:"not null;uniqueIndex:idx_follows_pair;check:chk_follows_not_self,user_id <> author_id"`
	User      User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint `gorm:"not null;uniqueIndex:idx_follows_pair;index"`
	Author    User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
