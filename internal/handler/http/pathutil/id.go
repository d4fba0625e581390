// Package pathutil extracts and normalizes URL path components.
package pathutil

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when a path's id segment is missing or not a UUID.
var ErrInvalidID = errors.New("article ID is invalid")

// ArticleID extracts the {id} path value and validates it as a UUID.
func ArticleID(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if id == "" {
		return "", ErrInvalidID
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidID
	}
	return id, nil
}

// NormalizePath replaces UUID path segments with ":id" so metrics labels
// stay bounded regardless of how many articles exist.
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if _, err := uuid.Parse(s); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
