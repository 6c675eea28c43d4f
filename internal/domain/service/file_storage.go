package service

import (
	"context"
	"io"
)

// FileStorage abstracts where profile pictures end up. The core treats the
// result purely as a string reference; it performs no file I/O itself.
type FileStorage interface {
	// Save stores the content under a generated name and returns the
	// string reference (URL or path) to persist on the profile.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
