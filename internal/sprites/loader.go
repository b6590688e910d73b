package sprites

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultFrames is the frame list loaded when nothing else is given.
var DefaultFrames = []string{"frame1.txt", "frame2.txt"}

// LoadFrames fetches every name from src concurrently and returns their
// contents in the same order as names.
//
// All fetches are started before any result is awaited. If any fetch fails,
// LoadFrames returns the first error exactly as src produced it and no
// frames. Fetches still in flight are left to finish; nothing is retried.
func LoadFrames(ctx context.Context, src Source, names []string) ([]string, error) {
	return loadFrames(ctx, src, names, 0)
}

func loadFrames(ctx context.Context, src Source, names []string, limit int) ([]string, error) {
	frames := make([]string, len(names))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, name := range names {
		g.Go(func() error {
			text, err := src.Fetch(ctx, name)
			if err != nil {
				return err
			}
			frames[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

// Loader loads a fixed frame list once and keeps the result for the life of
// the process.
type Loader struct {
	src   Source
	names []string
	limit int

	mu     sync.Mutex
	frames []string
	loaded bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithConcurrency caps the number of fetches in flight. n <= 0 means no cap.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		l.limit = n
	}
}

// NewLoader creates a Loader for names. Call Frames to load them.
func NewLoader(src Source, names []string, opts ...Option) *Loader {
	l := &Loader{
		src:   src,
		names: slices.Clone(names),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Names returns the frame names in load order.
func (l *Loader) Names() []string {
	return slices.Clone(l.names)
}

// Frames returns the loaded frames, fetching them on the first call.
// Only a successful load is kept; after a failure the next call fetches
// again. Concurrent callers wait for a single load.
func (l *Loader) Frames(ctx context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.loaded {
		frames, err := loadFrames(ctx, l.src, l.names, l.limit)
		if err != nil {
			return nil, err
		}
		l.frames = frames
		l.loaded = true
	}
	return slices.Clone(l.frames), nil
}
