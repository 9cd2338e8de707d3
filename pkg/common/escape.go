package common

import (
	"net/url"
	"strings"
)

// EscapePath escapes every segment of a slash separated path so it can be
// used in a url.
func EscapePath(p string) string {
	return EscapeAndJoin(p, "/")
}

func EscapeAndJoin(input string, delimiter string) string {
	segments := strings.Split(input, delimiter)
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, delimiter)
}
