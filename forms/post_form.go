package forms

import (
	"strconv"
	"strings"

	"github.com/Luismorlan/yatube/model"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// InvalidGroupMsg reports a group choice that is not one of the groups.
const InvalidGroupMsg = "Select a valid choice. That choice is not one of the available choices."

var postMessages = map[string]string{
	"text.required": "Post text is required!",
	"group.numeric": InvalidGroupMsg,
}

// PostForm backs both the create and the edit page.
type PostForm struct {
	Text string `form:"text" validate:"required"`
	// Group is the selected group id, empty for no group.
	Group string `form:"group" validate:"omitempty,numeric" copier:"-"`
	// ClearImage drops the current image when editing.
	ClearImage bool `form:"image-clear" copier:"-"`
	// Image is attached by the handler from the multipart body.
	Image *ImageUpload `form:"-" validate:"-" copier:"-"`
}

// PostFormFromPost prefills the edit page with the stored post.
func PostFormFromPost(post *model.Post) (*PostForm, error) {
	form := &PostForm{}
	if err := copier.Copy(form, post); err != nil {
		return nil, errors.Wrap(err, "cannot prefill post form")
	}
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(uint64(*post.GroupID), 10)
	}
	return form, nil
}

// Clean normalizes input and validates it, returns FieldErrors on failure.
func (f *PostForm) Clean() error {
	f.Text = strings.TrimSpace(f.Text)
	f.Group = strings.TrimSpace(f.Group)
	if err := validateStruct(f, postMessages); err != nil {
		return err
	}
	if f.Group != "" {
		if _, err := strconv.ParseUint(f.Group, 10, 0); err != nil {
			return FieldErrors{"group": InvalidGroupMsg}
		}
	}
	return nil
}

// GroupID returns the selected group, nil when none. Only valid after Clean.
func (f *PostForm) GroupID() *uint {
	if f.Group == "" {
		return nil
	}
	id, err := strconv.ParseUint(f.Group, 10, 0)
	if err != nil {
		return nil
	}
	gid := uint(id)
	return &gid
}
