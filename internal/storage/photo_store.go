package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidDataURI berarti payload bukan data-URI base64 yang valid.
var ErrInvalidDataURI = errors.New("invalid data uri")

var dataURIPattern = regexp.MustCompile(`^data:([A-Za-z0-9.+/-]+);base64,(.+)$`)

// PhotoStore menyimpan bukti foto check-in/check-out ke disk dan
// mengembalikan path relatif yang bisa diserve sebagai static file.
type PhotoStore struct {
	dir     string // direktori fisik, misal ./uploads
	urlBase string // prefix path publik, misal /uploads
}

func NewPhotoStore(dir, urlBase string) *PhotoStore {
	return &PhotoStore{dir: dir, urlBase: urlBase}
}

// ParseDataURI memisahkan mime type dan isi base64 yang sudah didecode.
func ParseDataURI(payload string) (mime string, data []byte, err error) {
	matches := dataURIPattern.FindStringSubmatch(payload)
	if matches == nil {
		return "", nil, ErrInvalidDataURI
	}
	data, err = base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return "", nil, ErrInvalidDataURI
	}
	return matches[1], data, nil
}

// Save mendecode data-URI dan menulis file dengan nama unik
// (prefix_uuid.ext). Mengembalikan path relatif, misal /uploads/xxx.jpg.
func (s *PhotoStore) Save(payload, prefix string) (string, error) {
	mime, data, err := ParseDataURI(payload)
	if err != nil {
		return "", err
	}

	ext := extFromMime(mime)
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.%s", prefix, uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0644); err != nil {
		return "", err
	}
	return s.urlBase + "/" + filename, nil
}

func extFromMime(mime string) string {
	parts := strings.Split(mime, "/")
	ext := parts[len(parts)-1]
	if ext == "" {
		return "jpg"
	}
	return ext
}
