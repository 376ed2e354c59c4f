// Package eligibility decides, for one event, which hostings a user may still
// request given the full history of their hosting requests.
package eligibility

import (
	"io"
	"log"
	"slices"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
)

// Verdict classifies a hosting for the current user.
type Verdict int

const (
	Requestable Verdict = iota
	BlockedByOwnAcceptedElsewhere
	BlockedByActiveRequest
	AlreadyAcceptedHere
)

func (v Verdict) String() string {
	switch v {
	case Requestable:
		return "REQUESTABLE"
	case BlockedByOwnAcceptedElsewhere:
		return "BLOCKED_BY_OWN_ACCEPTED_ELSEWHERE"
	case BlockedByActiveRequest:
		return "BLOCKED_BY_ACTIVE_REQUEST"
	case AlreadyAcceptedHere:
		return "ALREADY_ACCEPTED_HERE"
	default:
		return "UNKNOWN"
	}
}

// MarshalText lets verdict maps encode with their names.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Selectable reports whether selecting the hosting opens the request form.
func (v Verdict) Selectable() bool {
	return v == Requestable || v == AlreadyAcceptedHere
}

// Evaluator computes verdicts. The zero value is usable and logs to the
// standard logger.
type Evaluator struct {
	logger *log.Logger
}

// NewEvaluator returns an Evaluator logging invariant violations to logger
// (nil discards them).
func NewEvaluator(logger *log.Logger) *Evaluator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Evaluator{logger: logger}
}

func (e *Evaluator) logf(format string, args ...any) {
	if e == nil || e.logger == nil {
		log.Printf(format, args...)
		return
	}
	e.logger.Printf(format, args...)
}

// Evaluate returns the verdict of every hosting of eventID.
//
// acceptedHostingIDs is trusted as given: it alone decides AlreadyAcceptedHere,
// while the ledger (myRequests) decides whether the user is settled for the
// event. Hostings of another event are excluded from the result.
func (e *Evaluator) Evaluate(eventID uint, hostings []entities.Hosting, myRequests []entities.HostingRequest, acceptedHostingIDs []uint) map[uint]Verdict {
	active := ActiveHostingIDs(myRequests)
	settled := HasAcceptedForEvent(myRequests, eventID)

	if d := Reconcile(eventID, myRequests, acceptedHostingIDs); !d.Empty() {
		e.logf("⚠️ eligibility: event=%d accepted ids diverge from ledger (missing=%v, unknown=%v)", eventID, d.MissingFromAccepted, d.UnknownToLedger)
	}

	verdicts := make(map[uint]Verdict, len(hostings))
	for _, h := range hostings {
		if h.EventID != eventID {
			e.logf("❌ eligibility: %v: hosting=%d event=%d (expected %d)", domain.ErrInvariantViolation, h.ID, h.EventID, eventID)
			continue
		}
		verdicts[h.ID] = classify(h.ID, settled, active, acceptedHostingIDs)
	}
	return verdicts
}

func classify(hostingID uint, settled bool, active map[uint]struct{}, acceptedHostingIDs []uint) Verdict {
	if slices.Contains(acceptedHostingIDs, hostingID) {
		return AlreadyAcceptedHere
	}
	if settled {
		return BlockedByOwnAcceptedElsewhere
	}
	if _, ok := active[hostingID]; ok {
		return BlockedByActiveRequest
	}
	return Requestable
}

// Evaluate uses a zero Evaluator.
func Evaluate(eventID uint, hostings []entities.Hosting, myRequests []entities.HostingRequest, acceptedHostingIDs []uint) map[uint]Verdict {
	var e Evaluator
	return e.Evaluate(eventID, hostings, myRequests, acceptedHostingIDs)
}
