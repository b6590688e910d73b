package sprites

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Source retrieves the text of a named sprite frame.
// HTTPSource and FileSource implement this interface. Tests can provide mock implementations.
type Source interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// NewSource picks a Source for base. http:// and https:// bases are fetched
// over HTTP with client (nil means http.DefaultClient); anything else is
// treated as a directory on disk.
func NewSource(base string, client *http.Client) (Source, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil, fmt.Errorf("empty sprite source")
	}

	lower := strings.ToLower(base)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return &HTTPSource{BaseURL: base, Client: client}, nil
	}
	return NewDirSource(base), nil
}
