package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 5 << 20

var (
	ErrTooManyFiles = errors.New("Too many files uploaded")
	ErrFileTooLarge = errors.New("Image exceeds the 5 MB size limit")
	ErrNotImage     = errors.New("Only image files allowed")
)

// Saver writes multipart uploads to disk and hands back the public
// URLs they are served under.
type Saver struct {
	Dir string
}

func NewSaver(dir string) *Saver {
	return &Saver{Dir: dir}
}

// Save stores up to max files from the named multipart field. Every
// file must carry an image content type and stay under MaxFileSize;
// one bad file rejects the whole batch before anything is written.
func (s *Saver) Save(form *multipart.Form, field string, max int) ([]string, error) {
	files := form.File[field]
	if len(files) > max {
		return nil, ErrTooManyFiles
	}

	for _, fh := range files {
		if fh.Size > MaxFileSize {
			return nil, ErrFileTooLarge
		}
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
			return nil, ErrNotImage
		}
	}

	if len(files) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		name := field + "-" + uuid.NewString() + filepath.Ext(fh.Filename)
		if err := s.writeFile(fh, filepath.Join(s.Dir, name)); err != nil {
			return nil, err
		}
		urls = append(urls, "/uploads/"+name)
	}
	return urls, nil
}

func (s *Saver) writeFile(fh *multipart.FileHeader, destPath string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
