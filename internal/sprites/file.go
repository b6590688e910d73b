package sprites

import (
	"context"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// FileSource reads frames from a filesystem.
type FileSource struct {
	FS billy.Filesystem
}

var _ Source = (*FileSource)(nil)

// NewDirSource returns a FileSource rooted at dir.
func NewDirSource(dir string) *FileSource {
	return &FileSource{FS: osfs.New(dir)}
}

// Fetch reads the whole file called name.
func (s *FileSource) Fetch(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := s.FS.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
