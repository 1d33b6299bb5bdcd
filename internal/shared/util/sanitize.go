package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName rejects names that are empty or attempt traversal.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName flattens a client-supplied file name into a single safe
// path element. Traversal sequences are rejected outright rather than
// stripped, since a name containing ".." is never an honest upload.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
