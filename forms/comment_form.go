package forms

import "strings"

var commentMessages = map[string]string{
	"text.required": "Comment text is required!",
}

type CommentForm struct {
	Text string `form:"text" validate:"required"`
}

func (f *CommentForm) Clean() error {
	f.Text = strings.TrimSpace(f.Text)
	return validateStruct(f, commentMessages)
}
