package eligibility

import (
	"slices"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
)

// ActiveHostingIDs returns the hostings the user holds a PENDING or ACCEPTED
// request on, across all events.
func ActiveHostingIDs(myRequests []entities.HostingRequest) map[uint]struct{} {
	ids := make(map[uint]struct{}, len(myRequests))
	for _, r := range myRequests {
		if r.Status.IsActive() {
			ids[r.HostingID] = struct{}{}
		}
	}
	return ids
}

// HasAcceptedForEvent reports whether at least one request of the ledger is
// ACCEPTED for eventID.
func HasAcceptedForEvent(myRequests []entities.HostingRequest, eventID uint) bool {
	for _, r := range myRequests {
		if r.Status == domain.StatusAccepted && r.EventID == eventID {
			return true
		}
	}
	return false
}

// AcceptedHostingIDs derives, in ascending order, the hostings of eventID the
// user was accepted at. Callers holding the ids from another source pass those
// to Evaluate instead.
func AcceptedHostingIDs(myRequests []entities.HostingRequest, eventID uint) []uint {
	var ids []uint
	for _, r := range myRequests {
		if r.Status == domain.StatusAccepted && r.EventID == eventID && !slices.Contains(ids, r.HostingID) {
			ids = append(ids, r.HostingID)
		}
	}
	slices.Sort(ids)
	return ids
}

// ForEvent narrows the ledger to the requests on hostings of eventID.
func ForEvent(myRequests []entities.HostingRequest, eventID uint) []entities.HostingRequest {
	out := make([]entities.HostingRequest, 0, len(myRequests))
	for _, r := range myRequests {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

// Divergence lists the disagreements between caller-supplied accepted ids and
// the ACCEPTED requests of the ledger for one event.
type Divergence struct {
	// ACCEPTED in the ledger but absent from the supplied ids.
	MissingFromAccepted []uint `json:"missing_from_accepted,omitempty"`
	// Supplied but not ACCEPTED in the ledger.
	UnknownToLedger []uint `json:"unknown_to_ledger,omitempty"`
}

func (d Divergence) Empty() bool {
	return len(d.MissingFromAccepted) == 0 && len(d.UnknownToLedger) == 0
}

// Reconcile compares acceptedHostingIDs with the ledger. It never changes the
// verdicts; it only reports.
func Reconcile(eventID uint, myRequests []entities.HostingRequest, acceptedHostingIDs []uint) Divergence {
	fromLedger := AcceptedHostingIDs(myRequests, eventID)
	var d Divergence
	for _, id := range fromLedger {
		if !slices.Contains(acceptedHostingIDs, id) {
			d.MissingFromAccepted = append(d.MissingFromAccepted, id)
		}
	}
	for _, id := range acceptedHostingIDs {
		if !slices.Contains(fromLedger, id) && !slices.Contains(d.UnknownToLedger, id) {
			d.UnknownToLedger = append(d.UnknownToLedger, id)
		}
	}
	return d
}
