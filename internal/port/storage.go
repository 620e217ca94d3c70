package port

import (
	"context"
	"io"
)

// ArchiveInput encapsulates the parameters needed to archive an uploaded source file.
type ArchiveInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ArchiveOutput contains the result of a successful archive.
type ArchiveOutput struct {
	Location string
	ETag     string
}

// SourceArchive keeps a copy of every accepted source spreadsheet.
type SourceArchive interface {
	Archive(ctx context.Context, input ArchiveInput) (*ArchiveOutput, error)
	Delete(ctx context.Context, key string) error
}
