package post

import (
	"io"
	"net/http"

	"Postline/internal/core/posts"
)

// maxUploadBytes bounds multipart parsing for post images (10MB)
const maxUploadBytes = 10 << 20

// imageUpload reads the optional "image" form file. A missing file is not
// an error; validation of content happens in the media store.
func imageUpload(r *http.Request) (*posts.ImageUpload, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &posts.ImageUpload{Filename: header.Filename, Data: data}, nil
}
