package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"hostbot/internal/domain"
	"hostbot/internal/domain/eligibility"
	"hostbot/internal/domain/entities"
	"hostbot/internal/domain/lifecycle"
	"hostbot/internal/ports/output"
)

// Overview is one evaluation of the hostings of an event for a user.
type Overview struct {
	EventID            uint
	Hostings           []entities.Hosting
	MyRequests         []entities.HostingRequest
	AcceptedHostingIDs []uint
	Verdicts           map[uint]eligibility.Verdict
}

// Verdict returns the verdict of hostingID and whether it is part of the event.
func (o *Overview) Verdict(hostingID uint) (eligibility.Verdict, bool) {
	v, ok := o.Verdicts[hostingID]
	return v, ok
}

// Hosting looks hostingID up in the catalog snapshot.
func (o *Overview) Hosting(hostingID uint) (*entities.Hosting, bool) {
	for i := range o.Hostings {
		if o.Hostings[i].ID == hostingID {
			return &o.Hostings[i], true
		}
	}
	return nil, false
}

// AcceptedRequest returns the user's accepted request on hostingID, if any.
func (o *Overview) AcceptedRequest(hostingID uint) (*entities.HostingRequest, bool) {
	for i := range o.MyRequests {
		r := &o.MyRequests[i]
		if r.HostingID == hostingID && r.IsAccepted() {
			return r, true
		}
	}
	return nil, false
}

type HostingRequestService struct {
	catalog     output.HostingCatalog
	hostingRepo output.HostingRepository
	requestRepo output.HostingRequestRepository
	evaluator   *eligibility.Evaluator
	now         func() time.Time
}

func NewHostingRequestService(
	hostingRepo output.HostingRepository,
	requestRepo output.HostingRequestRepository,
	evaluator *eligibility.Evaluator,
) *HostingRequestService {
	if evaluator == nil {
		evaluator = eligibility.NewEvaluator(log.Default())
	}
	return &HostingRequestService{
		catalog:     hostingRepo,
		hostingRepo: hostingRepo,
		requestRepo: requestRepo,
		evaluator:   evaluator,
		now:         time.Now,
	}
}

// AcceptedHostingIDs queries the hostings of eventID the user was accepted at.
func (s *HostingRequestService) AcceptedHostingIDs(ctx context.Context, eventID uint, userID string) ([]uint, error) {
	return s.requestRepo.AcceptedHostingIDs(ctx, userID, eventID)
}

// Overview loads both snapshots and evaluates them. acceptedHostingIDs is
// passed through to the evaluator as given (nil means none).
func (s *HostingRequestService) Overview(ctx context.Context, eventID uint, userID string, acceptedHostingIDs []uint) (*Overview, error) {
	hostings, err := s.catalog.List(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list hostings: %w", err)
	}
	mine, err := s.requestRepo.ListMine(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list my requests: %w", err)
	}
	return &Overview{
		EventID:            eventID,
		Hostings:           hostings,
		MyRequests:         mine,
		AcceptedHostingIDs: acceptedHostingIDs,
		Verdicts:           s.evaluator.Evaluate(eventID, hostings, mine, acceptedHostingIDs),
	}, nil
}

// MyRequestsForEvent narrows the user's ledger to eventID.
func (s *HostingRequestService) MyRequestsForEvent(ctx context.Context, eventID uint, userID string) ([]entities.HostingRequest, error) {
	mine, err := s.requestRepo.ListMine(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list my requests: %w", err)
	}
	return eligibility.ForEvent(mine, eventID), nil
}

// Submit creates a PENDING request on hostingID once the overview reports it
// REQUESTABLE.
func (s *HostingRequestService) Submit(ctx context.Context, overview *Overview, hostingID uint, userID, username, message string) (*entities.HostingRequest, error) {
	v, ok := overview.Verdict(hostingID)
	if !ok {
		return nil, fmt.Errorf("hosting %d: %w", hostingID, domain.ErrHostingNotFound)
	}
	if v != eligibility.Requestable {
		return nil, fmt.Errorf("hosting %d is %s: %w", hostingID, v, domain.ErrNotRequestable)
	}
	req, err := lifecycle.Create(overview.Hostings, hostingID, userID, message, s.now())
	if err != nil {
		return nil, err
	}
	req.Requester = username
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

// Cancel cancels one of the user's requests. Requests that are no longer
// PENDING are returned unchanged with changed=false.
func (s *HostingRequestService) Cancel(ctx context.Context, requestID uint, userID string) (req *entities.HostingRequest, changed bool, err error) {
	mine, err := s.requestRepo.ListMine(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("list my requests: %w", err)
	}
	req, changed, err = lifecycle.Cancel(mine, requestID, s.now())
	if err != nil || !changed {
		return req, false, err
	}
	if err := s.requestRepo.UpdateStatus(ctx, req, domain.StatusPending); err != nil {
		return nil, false, fmt.Errorf("cancel request: %w", err)
	}
	return req, true, nil
}

// ReceivedRequests lists the requests made on the host's hostings.
func (s *HostingRequestService) ReceivedRequests(ctx context.Context, hostID string) ([]entities.HostingRequest, error) {
	return s.requestRepo.FindByHostID(ctx, hostID)
}

// Accept is the host's acceptance of a PENDING request; it needs a free place.
func (s *HostingRequestService) Accept(ctx context.Context, requestID uint, hostID, hostMessage string) (*entities.HostingRequest, error) {
	return s.decide(ctx, requestID, hostID, domain.StatusAccepted, hostMessage)
}

// Reject is the host's refusal of a PENDING request.
func (s *HostingRequestService) Reject(ctx context.Context, requestID uint, hostID, hostMessage string) (*entities.HostingRequest, error) {
	return s.decide(ctx, requestID, hostID, domain.StatusRejected, hostMessage)
}

func (s *HostingRequestService) decide(ctx context.Context, requestID uint, hostID string, to domain.RequestStatus, hostMessage string) (*entities.HostingRequest, error) {
	req, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.HostID != hostID {
		return nil, domain.ErrNotHost
	}
	if !lifecycle.CanTransition(req.Status, to) {
		return nil, fmt.Errorf("request %d: %w", requestID, domain.ErrInvalidTransition)
	}
	if to == domain.StatusAccepted {
		accepted, err := s.requestRepo.AcceptedHostingIDs(ctx, req.RequesterID, req.EventID)
		if err != nil {
			return nil, fmt.Errorf("list accepted hostings: %w", err)
		}
		if len(accepted) > 0 {
			return nil, domain.ErrAcceptedForEvent
		}
		hosting, err := s.hostingRepo.FindByID(ctx, req.HostingID)
		if err != nil {
			return nil, err
		}
		places, err := availablePlaces(ctx, s.requestRepo, hosting)
		if err != nil {
			return nil, err
		}
		if places.Available <= 0 {
			return nil, domain.ErrNoPlacesAvailable
		}
	}
	if err := lifecycle.Resolve(req, to, hostMessage, s.now()); err != nil {
		return nil, err
	}
	if err := s.requestRepo.UpdateStatus(ctx, req, domain.StatusPending); err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	return req, nil
}
