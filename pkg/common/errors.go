package common

import (
	"errors"
	"net/http"
	"os"
)

var (
	ErrNotExist          = errors.New("the resource does not exist")
	ErrIsNotDirectory    = errors.New("path is not a directory")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidFolderKey  = errors.New("invalid folder key")
	ErrFolderUnavailable = errors.New("folder unavailable")
	ErrInvalidSongId     = errors.New("invalid song id")
)

// InvalidFolderKeyMessage is the error body clients receive for an
// unknown folder key.
const InvalidFolderKeyMessage = "Invalid folder key"

// ErrorMessage returns the message sent to clients for err.
func ErrorMessage(err error) string {
	if errors.Is(err, ErrInvalidFolderKey) {
		return InvalidFolderKeyMessage
	}
	return err.Error()
}

// ErrToStatus maps an error returned by a handler to the HTTP status code
// that is sent to the client.
func ErrToStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidFolderKey), errors.Is(err, ErrInvalidSongId):
		return http.StatusBadRequest
	case errors.Is(err, ErrFolderUnavailable):
		return http.StatusInternalServerError
	case os.IsPermission(err), errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case os.IsNotExist(err), errors.Is(err, ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
