package forms

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// ImageKeyPrefix is the folder every post image is stored under.
	ImageKeyPrefix = "posts/"

	invalidImageMsg = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
)

// Only raster formats browsers render inline are accepted.
var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
}

// ImageUpload is an uploaded image held in memory after validation.
type ImageUpload struct {
	Filename    string
	ContentType string
	Extension   string
	Data        []byte
}

// ReadImageUpload reads at most maxBytes from r and checks that the content
// is an image. Validation failures are FieldErrors on "image".
func ReadImageUpload(filename string, r io.Reader, maxBytes int64) (*ImageUpload, error) {
	data, err := ioutil.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "cannot read uploaded image")
	}
	if len(data) == 0 {
		return nil, FieldErrors{"image": "The submitted file is empty."}
	}
	if int64(len(data)) > maxBytes {
		return nil, FieldErrors{"image": fmt.Sprintf("Ensure the image is at most %d bytes.", maxBytes)}
	}

	mime := mimetype.Detect(data)
	if !isAllowedImage(mime) {
		return nil, FieldErrors{"image": invalidImageMsg}
	}

	return &ImageUpload{
		Filename:    filename,
		ContentType: mime.String(),
		Extension:   mime.Extension(),
		Data:        data,
	}, nil
}

func isAllowedImage(mime *mimetype.MIME) bool {
	for _, t := range allowedImageTypes {
		if mime.Is(t) {
			return true
		}
	}
	return false
}

// NewKey returns a fresh object key for the image, e.g. posts/<uuid>.gif
func (u *ImageUpload) NewKey() string {
	return ImageKeyPrefix + uuid.New().String() + u.Extension
}
