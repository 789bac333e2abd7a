package profile

import (
	"errors"
	"net/http"
	"strings"
)

type Profile struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatarUrl"`
}

// Update carries the account form. Empty fields are left untouched.
type Update struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

var ErrEmptyAvatar = errors.New("avatar file is empty")

var ErrUnsupportedImage = errors.New("avatar must be a png, jpeg, webp or gif image")

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// imageExtension resolves the file extension for contentType, sniffing data
// when no usable content type was given.
func imageExtension(data []byte, contentType string) (string, string, error) {
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", ErrUnsupportedImage
	}

	return ext, contentType, nil
}
