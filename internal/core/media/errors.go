package media

import "errors"

var (
	// ErrUnsupportedFormat indicates the uploaded filename's extension is
	// not in the image allow-list
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrEmptyFile indicates a zero-length upload
	ErrEmptyFile = errors.New("uploaded file is empty")

	// ErrMediaNotFound indicates the requested file does not exist under
	// the upload root
	ErrMediaNotFound = errors.New("media file not found")
)
