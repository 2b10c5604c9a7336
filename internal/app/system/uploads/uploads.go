// Package uploads reads file inputs from multipart form submissions and
// stages them for forwarding to the backend.
//
// Browsers are not trusted about content types: every staged file is
// re-sniffed from its leading bytes. Handlers that parsed a multipart form
// must defer Cleanup so any temp files the runtime spilled to disk are
// removed.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klubbportal/klubbportal/internal/app/api"
)

// DefaultMaxBytes caps a single uploaded file when no explicit limit is
// configured.
const DefaultMaxBytes = 10 << 20

// ErrTooLarge reports a file above the configured size cap.
var ErrTooLarge = errors.New("uploaded file is too large")

// imageTypes are the sniffed MIME types accepted for image inputs.
var imageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// documentTypes are the sniffed MIME types accepted for document inputs.
var documentTypes = map[string]bool{
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain; charset=utf-8": true,
	"text/plain":                true,
}

// Staged is an uploaded file read into memory, with its sniffed type.
type Staged struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FromRequest reads the named file input from a parsed multipart request.
// It returns (nil, nil) when the input is present but empty, which is how
// edit forms signal "keep the current file".
func FromRequest(r *http.Request, field string, maxBytes int64) (*Staged, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read form file %q: %w", field, err)
	}
	defer file.Close()
	return stage(file, header, maxBytes)
}

// AllFromRequest reads every file submitted under a repeated file input,
// for gallery-style fields that accept multiple files at once.
func AllFromRequest(r *http.Request, field string, maxBytes int64) ([]*Staged, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, nil
	}
	var staged []*Staged
	for _, header := range r.MultipartForm.File[field] {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open form file %q: %w", field, err)
		}
		s, err := stage(file, header, maxBytes)
		file.Close()
		if err != nil {
			return nil, err
		}
		if s != nil {
			staged = append(staged, s)
		}
	}
	return staged, nil
}

func stage(file multipart.File, header *multipart.FileHeader, maxBytes int64) (*Staged, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if header.Size > maxBytes {
		return nil, fmt.Errorf("%q: %w (%d bytes, limit %d)", header.Filename, ErrTooLarge, header.Size, maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", header.Filename, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%q: %w", header.Filename, ErrTooLarge)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &Staged{
		Filename:    sanitizeFilename(header.Filename),
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}, nil
}

// IsImage reports whether the staged file sniffed as a supported image.
func (s *Staged) IsImage() bool {
	return imageTypes[baseType(s.ContentType)]
}

// IsDocument reports whether the staged file sniffed as a supported document.
func (s *Staged) IsDocument() bool {
	return documentTypes[s.ContentType] || documentTypes[baseType(s.ContentType)]
}

// Attach adds the staged file to a backend payload under the given field.
func (s *Staged) Attach(p *api.Payload, field string) {
	p.AttachFile(field, s.Filename, s.ContentType, s.Data)
}

// Cleanup removes any temp files the multipart parser wrote to disk.
// Safe to defer unconditionally; a nil form is a no-op.
func Cleanup(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

func baseType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		return strings.TrimSpace(ct[:i])
	}
	return ct
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return name
}
