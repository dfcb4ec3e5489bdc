package models

// File is an attachment selected for upload.
type File struct {
	Name    string
	Content []byte
}
