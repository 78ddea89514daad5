package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions is the upload allow-list, matched case-insensitively.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store is a filesystem-backed blob store. Uploaded files live flat under
// the root directory and are addressed by generated filename.
type Store struct {
	root string
}

// NewStore creates the upload root if needed and returns a store over it.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload root: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the directory uploads are written to.
func (s *Store) Root() string {
	return s.root
}

// Save validates and persists an uploaded file, returning its public URL
// ("/uploads/<name>"). The generated name carries a random suffix, so a
// save never overwrites an unrelated file.
func (s *Store) Save(data []byte, filename, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFormat
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	name := fmt.Sprintf("%s_%s%s", prefix, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "/uploads/" + name, nil
}

// Resolve maps a filename to its path under the upload root. Names that
// would escape the root (separators, dot-dot) are rejected as not found.
func (s *Store) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) ||
		filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) {
		return "", ErrMediaNotFound
	}

	path := filepath.Join(s.root, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrMediaNotFound
	}

	return path, nil
}
