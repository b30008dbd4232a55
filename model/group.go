package model

/*

Group is a named community a post may optionally belong to

ID: primary key
Title: display title
Slug: unique, url addressable identifier
Description: free text shown on top of the group feed

Deleting a group keeps its posts, their GroupID becomes NULL.
*/
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Slug        string `gorm:"size:100;uniqueIndex;not null"`
	Description string
}

func (g Group) String() string {
	return g.Title
}
