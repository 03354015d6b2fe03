package models

import (
	"io"
	"time"
)

// Upload describes an incoming multipart file part.
type Upload struct {
	FieldName    string
	OriginalName string
	Encoding     string
	MimeType     string
}

type StoredFile struct {
	Upload
	Destination string
	FileName    string
	Path        string
	Size        int64
}

type FileContent struct {
	Name    string
	Size    int64
	ModTime time.Time
	Content io.ReadSeekCloser
}
