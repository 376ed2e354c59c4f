// Package lifecycle holds the status transitions of a hosting request and the
// create/cancel commands applied to a snapshot.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
)

var transitions = map[domain.RequestStatus][]domain.RequestStatus{
	domain.StatusPending: {domain.StatusAccepted, domain.StatusRejected, domain.StatusCancelled},
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to domain.RequestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Create builds a new PENDING request on hostingID. The hosting must be part
// of the snapshot; eligibility is the caller's job and is not checked here.
func Create(hostings []entities.Hosting, hostingID uint, requesterID, message string, now time.Time) (*entities.HostingRequest, error) {
	for _, h := range hostings {
		if h.ID != hostingID {
			continue
		}
		return &entities.HostingRequest{
			HostingID:   h.ID,
			EventID:     h.EventID,
			HostID:      h.HostID,
			RequesterID: requesterID,
			Status:      domain.StatusPending,
			Message:     strings.TrimSpace(message),
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil
	}
	return nil, fmt.Errorf("hosting %d: %w", hostingID, domain.ErrHostingNotFound)
}

// Cancel returns a copy of request requestID. The copy is CANCELLED and
// changed is true only when the request was PENDING; any other status is left
// untouched.
func Cancel(requests []entities.HostingRequest, requestID uint, now time.Time) (req *entities.HostingRequest, changed bool, err error) {
	for _, r := range requests {
		if r.ID != requestID {
			continue
		}
		out := r
		if !CanTransition(out.Status, domain.StatusCancelled) {
			return &out, false, nil
		}
		out.Status = domain.StatusCancelled
		out.UpdatedAt = now
		return &out, true, nil
	}
	return nil, false, fmt.Errorf("request %d: %w", requestID, domain.ErrRequestNotFound)
}

// Resolve applies the host's decision (ACCEPTED or REJECTED) to a PENDING
// request, in place.
func Resolve(req *entities.HostingRequest, to domain.RequestStatus, hostMessage string, now time.Time) error {
	if to != domain.StatusAccepted && to != domain.StatusRejected {
		return fmt.Errorf("%w: %s is not a host decision", domain.ErrInvalidTransition, to)
	}
	if !CanTransition(req.Status, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, req.Status, to)
	}
	req.Status = to
	if msg := strings.TrimSpace(hostMessage); msg != "" {
		req.HostMessage = msg
	}
	req.UpdatedAt = now
	return nil
}
