package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/me4war/meshwar-client/internal/models"
)

// Form accumulates multipart fields in insertion order. Field names follow the
// backend's command object property paths (e.g. "VehicleDetailsCommand.Model").
type Form struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	f := &Form{}
	f.writer = multipart.NewWriter(&f.buf)
	return f
}

// Field appends a scalar field.
func (f *Form) Field(name, value string) *Form {
	if f.err == nil {
		f.err = f.writer.WriteField(name, value)
	}
	return f
}

// File appends one file under name. Repeating the same name appends to the
// server-side collection, matching FormData semantics.
func (f *Form) File(name string, file models.File) *Form {
	if f.err != nil {
		return f
	}
	part, err := f.writer.CreateFormFile(name, file.Name)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = part.Write(file.Content)
	return f
}

// Files appends every file under the same name.
func (f *Form) Files(name string, files []models.File) *Form {
	for _, file := range files {
		f.File(name, file)
	}
	return f
}

// Encode finalizes the form and returns its content type and body.
func (f *Form) Encode() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, fmt.Errorf("failed to build multipart form: %w", f.err)
	}
	if err := f.writer.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}
	return f.writer.FormDataContentType(), bytes.NewReader(f.buf.Bytes()), nil
}
