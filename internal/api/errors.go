package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Paintersrp/notes/internal/locale"
)

// Op names a remote note store operation.
type Op string

const (
	OpList         Op = "list"
	OpListArchived Op = "list archived"
	OpCreate       Op = "create"
	OpDelete       Op = "delete"
	OpArchive      Op = "archive"
	OpUnarchive    Op = "unarchive"
)

// Fallback returns the generic failure text for op in the given catalog.
func (op Op) Fallback(c locale.Catalog) string {
	switch op {
	case OpList, OpListArchived:
		return c.FetchFailed
	case OpCreate:
		return c.CreateFailed
	case OpDelete:
		return c.DeleteFailed
	case OpArchive:
		return c.ArchiveFailed
	case OpUnarchive:
		return c.UnarchiveFailed
	default:
		return c.FetchFailed
	}
}

// NetworkError reports a transport failure: no response was received.
type NetworkError struct {
	Op      Op
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s notes: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a response the store answered but the client could not
// accept: a non-2xx status, or a 2xx with a malformed or missing payload.
type APIError struct {
	Op         Op
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s notes: status %d: %s: %v", e.Op, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("%s notes: status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from the store.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// UserMessage returns the text to show the user for a failed operation:
// the store's message when it sent one, else the operation's fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Message
	}

	return err.Error()
}
