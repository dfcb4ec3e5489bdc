package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/me4war/meshwar-client/internal/models"
)

func TestFileField_AddRemove(t *testing.T) {
	f := NewFileField()
	assert.ErrorIs(t, f.Require(), ErrNoFiles)

	f.Add(models.File{Name: "a.jpg", Content: []byte("aa")})
	f.Add(models.File{Name: "b.jpg", Content: []byte("bb")})
	f.Add(models.File{Name: "c.jpg", Content: []byte("cc")})

	assert.Equal(t, 3, f.Len())
	assert.NoError(t, f.Require())
	assert.Len(t, f.Previews(), 3)

	removed := f.Previews()[1]

	// Removing the middle entry keeps files and previews paired
	assert.True(t, f.RemoveAt(1))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, "a.jpg", f.Files()[0].Name)
	assert.Equal(t, "c.jpg", f.Files()[1].Name)
	assert.Len(t, f.Previews(), 2)
	assert.Contains(t, f.Previews()[0].URL, "a.jpg")
	assert.Contains(t, f.Previews()[1].URL, "c.jpg")

	// The removed preview was revoked; the survivors were not
	assert.True(t, removed.Released())
	assert.False(t, f.Previews()[0].Released())
	assert.False(t, f.Previews()[1].Released())
}

func TestFileField_RemoveAtBounds(t *testing.T) {
	f := NewFileField()
	f.Add(models.File{Name: "only.png"})

	assert.False(t, f.RemoveAt(-1))
	assert.False(t, f.RemoveAt(1))
	assert.True(t, f.RemoveAt(0))
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.RemoveAt(0))
}

func TestFileField_PreviewURLsAreUnique(t *testing.T) {
	f := NewFileField()
	f.Add(models.File{Name: "same.png"})
	f.Add(models.File{Name: "same.png"})

	assert.NotEqual(t, f.Previews()[0].URL, f.Previews()[1].URL)
}
