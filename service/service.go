// Package service implements every mutation. Authorization predicates live
// here: handlers only make sure someone is logged in and pass that actor
// explicitly.
package service

import (
	"context"

	"github.com/Luismorlan/yatube/forms"
	"github.com/Luismorlan/yatube/repository"
)

// resolveGroup checks the selected group exists.
func resolveGroup(ctx context.Context, repos *repository.Repositories, groupID *uint) (*uint, error) {
	if groupID == nil {
		return nil, nil
	}
	if _, err := repos.Groups.Get(ctx, *groupID); err != nil {
		if repository.IsNotFound(err) {
			return nil, forms.FieldErrors{"group": forms.InvalidGroupMsg}
		}
		return nil, err
	}
	return groupID, nil
}
