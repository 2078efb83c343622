package model

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidParameter = errors.New("") // Base error for invalid parameter
var ErrDocumentError = errors.New("")    // Base error for document generation
var ErrSnapshotError = errors.New("")    // Base error for saved snapshot

// Document generation errors
var ErrNoDocumentSelected = fmt.Errorf("no documents selected%w", ErrDocumentError)
var ErrUnknownDocumentType = fmt.Errorf("unknown document type%w%w", ErrDocumentError, ErrInvalidParameter)

// Snapshot errors
var ErrSnapshotNotFound = fmt.Errorf("snapshot not found%w", ErrSnapshotError)

func ErrorToHttpStatus(err error) int {
	switch {
	case errors.Is(err, ErrSnapshotNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidParameter), errors.Is(err, ErrDocumentError):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
