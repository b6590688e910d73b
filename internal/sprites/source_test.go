package sprites

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpriteServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sprites/frame1.txt":
			w.Write([]byte("AAA"))
		case "/sprites/frame2.txt":
			w.Write([]byte("BBB"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := newSpriteServer(t)
	src := &HTTPSource{BaseURL: srv.URL + "/sprites"}

	got, err := src.Fetch(context.Background(), "frame1.txt")
	require.NoError(t, err)
	assert.Equal(t, "AAA", got)
}

func TestHTTPSource_NotFound(t *testing.T) {
	srv := newSpriteServer(t)
	src := &HTTPSource{BaseURL: srv.URL + "/sprites/", Client: srv.Client()}

	_, err := src.Fetch(context.Background(), "frame9.txt")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr), "err = %T, want *StatusError", err)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "frame9.txt")
}

func TestHTTPSource_LoadFrames(t *testing.T) {
	srv := newSpriteServer(t)
	src := &HTTPSource{BaseURL: srv.URL + "/sprites"}

	frames, err := LoadFrames(context.Background(), src, []string{"frame2.txt", "frame1.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BBB", "AAA"}, frames)

	_, err = LoadFrames(context.Background(), src, []string{"frame1.txt", "missing.txt"})
	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestFileSource_Fetch(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "frame1.txt", []byte("AAA"), 0o644))

	src := &FileSource{FS: fs}
	got, err := src.Fetch(context.Background(), "frame1.txt")
	require.NoError(t, err)
	assert.Equal(t, "AAA", got)
}

func TestFileSource_Missing(t *testing.T) {
	src := &FileSource{FS: memfs.New()}

	_, err := src.Fetch(context.Background(), "frame2.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "err = %v, want not-exist", err)
}

func TestFileSource_CancelledContext(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "frame1.txt", []byte("AAA"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&FileSource{FS: fs}).Fetch(ctx, "frame1.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frame1.txt"), []byte("AAA"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frame2.txt"), []byte("BBB"), 0o644))

	frames, err := LoadFrames(context.Background(), NewDirSource(dir), DefaultFrames)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB"}, frames)

	_, err = NewDirSource(dir).Fetch(context.Background(), "frame3.txt")
	assert.True(t, errors.Is(err, os.ErrNotExist), "err = %v, want not-exist", err)
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		wantHTTP bool
		wantErr  bool
	}{
		{"directory", "sprites", false, false},
		{"absolute directory", "/srv/sprites", false, false},
		{"http", "http://example.com/sprites", true, false},
		{"https upper case", "HTTPS://example.com/sprites", true, false},
		{"empty", "", false, true},
		{"blank", "   ", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource(tt.base, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isHTTP := src.(*HTTPSource)
			assert.Equal(t, tt.wantHTTP, isHTTP)
		})
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Dimensions
	}{
		{"empty", "", Dimensions{}},
		{"single line", "AAA", Dimensions{Lines: 1, Width: 3}},
		{"trailing newline", "AAA\n", Dimensions{Lines: 1, Width: 3}},
		{"ragged", " (o)\n(   )\n  v\n", Dimensions{Lines: 3, Width: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Measure(tt.text))
		})
	}
}
