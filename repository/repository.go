// Package repository is the only place that talks to the database. Every
// entity has an interface so that callers never depend on gorm directly.
package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned, wrapped, whenever a lookup matches no row.
	ErrNotFound = errors.New("record not found")
)

// Repositories bundles the per-entity repositories sharing one connection.
type Repositories struct {
	Users    UserRepository
	Groups   GroupRepository
	Posts    PostRepository
	Comments CommentRepository
	Follows  FollowRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    &gormUserRepository{db: db},
		Groups:   &gormGroupRepository{db: db},
		Posts:    &gormPostRepository{db: db},
		Comments: &gormCommentRepository{db: db},
		Follows:  &gormFollowRepository{db: db},
	}
}

func wrapErr(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrNotFound, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
