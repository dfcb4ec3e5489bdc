package wizard

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/me4war/meshwar-client/internal/models"
)

var ErrNoFiles = errors.New("at least one file is required")

var previewSeq atomic.Uint64

// Preview is a revocable reference to a locally selected file, the analog of
// a browser object URL.
type Preview struct {
	URL      string
	released bool
}

// Release revokes the preview reference.
func (p *Preview) Release() { p.released = true }

// Released reports whether the preview has been revoked.
func (p *Preview) Released() bool { return p.released }

// FileField keeps an ordered list of accepted files and a parallel list of
// preview references. Removing a file at index i removes both, and the
// pairing stays correct under repeated add/remove.
type FileField struct {
	files    []models.File
	previews []*Preview
}

// NewFileField creates an empty file field.
func NewFileField() *FileField {
	return &FileField{}
}

// Add accepts a file and creates its preview.
func (f *FileField) Add(file models.File) {
	f.files = append(f.files, file)
	f.previews = append(f.previews, &Preview{
		URL: fmt.Sprintf("preview://%d/%s", previewSeq.Add(1), file.Name),
	})
}

// RemoveAt drops the file and preview at index i, revoking the preview.
func (f *FileField) RemoveAt(i int) bool {
	if i < 0 || i >= len(f.files) {
		return false
	}
	f.previews[i].Release()
	f.files = append(f.files[:i], f.files[i+1:]...)
	f.previews = append(f.previews[:i], f.previews[i+1:]...)
	return true
}

// Files returns the accepted files in order.
func (f *FileField) Files() []models.File { return f.files }

// Previews returns the preview references in order.
func (f *FileField) Previews() []*Preview { return f.previews }

// Len returns the number of accepted files.
func (f *FileField) Len() int { return len(f.files) }

// Require returns ErrNoFiles when the field is empty, the analog of the
// array-required validator on the web form.
func (f *FileField) Require() error {
	if len(f.files) == 0 {
		return ErrNoFiles
	}
	return nil
}
