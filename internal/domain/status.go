package domain

import (
	"fmt"
	"strings"
)

// RequestStatus is the status of a hosting request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusAccepted  RequestStatus = "ACCEPTED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// ParseRequestStatus accepts the four known statuses, case-insensitively.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

func (s RequestStatus) String() string { return string(s) }

// IsTerminal reports whether no transition may leave s.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusCancelled
}

// IsActive reports whether a request in status s blocks a new request on the
// same hosting.
func (s RequestStatus) IsActive() bool {
	return s != StatusCancelled && s != StatusRejected
}
