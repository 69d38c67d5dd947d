package file

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var ErrEmptyInput = errors.New("empty file name")

// Input is the value handed to NotExists.IsValid: either a PlainPath or an
// Upload.
type Input interface {
	// FileName is the base name checked against the configured directories.
	FileName() string
}

// PlainPath is a bare file name or a full path. Only its last element is
// checked.
type PlainPath string

func (p PlainPath) FileName() string {
	return filepath.Base(string(p))
}

// Upload describes an uploaded file. TmpPath is where the bytes live, but the
// existence check only uses OriginalName.
type Upload struct {
	TmpPath      string
	OriginalName string
}

func (u Upload) FileName() string {
	return filepath.Base(u.OriginalName)
}

// UploadFromHeader builds an Upload from a multipart header. The bytes are not
// staged on disk so TmpPath stays empty.
func UploadFromHeader(fh *multipart.FileHeader) (Upload, error) {
	if fh == nil || strings.TrimSpace(fh.Filename) == "" {
		return Upload{}, ErrEmptyInput
	}
	return Upload{OriginalName: fh.Filename}, nil
}

// ParsePath validates raw user input before it becomes a PlainPath.
func ParsePath(raw string) (PlainPath, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyInput
	}
	return PlainPath(raw), nil
}
