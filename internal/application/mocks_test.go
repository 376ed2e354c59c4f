package application

import (
	"context"
	"fmt"
	"slices"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
)

// ────────────────────────────────────────────────
// In-memory repositories for testing
// ────────────────────────────────────────────────

type mockEventRepository struct {
	events map[uint]entities.Event
}

func (m *mockEventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (m *mockEventRepository) ListUpcoming(ctx context.Context, limit int) ([]entities.Event, error) {
	out := make([]entities.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e)
	}
	return out, nil
}

type mockHostingRepository struct {
	hostings []entities.Hosting
	listErr  error
}

func (m *mockHostingRepository) List(ctx context.Context, eventID uint) ([]entities.Hosting, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []entities.Hosting
	for _, h := range m.hostings {
		if h.EventID == eventID && h.IsActive {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *mockHostingRepository) Create(ctx context.Context, hosting *entities.Hosting) error {
	hosting.ID = uint(len(m.hostings) + 1)
	m.hostings = append(m.hostings, *hosting)
	return nil
}

func (m *mockHostingRepository) FindByID(ctx context.Context, id uint) (*entities.Hosting, error) {
	for _, h := range m.hostings {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, domain.ErrHostingNotFound
}

type mockHostProfileRepository struct {
	profiles map[string]entities.HostProfile
}

func (m *mockHostProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.HostProfile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (m *mockHostProfileRepository) Upsert(ctx context.Context, profile *entities.HostProfile) error {
	if m.profiles == nil {
		m.profiles = map[string]entities.HostProfile{}
	}
	m.profiles[profile.UserID] = *profile
	return nil
}

type mockHostingRequestRepository struct {
	requests  []entities.HostingRequest
	ledgerErr error
	createErr error
	updateErr error
}

func (m *mockHostingRequestRepository) ListMine(ctx context.Context, requesterID string) ([]entities.HostingRequest, error) {
	if m.ledgerErr != nil {
		return nil, m.ledgerErr
	}
	var out []entities.HostingRequest
	for _, r := range m.requests {
		if r.RequesterID == requesterID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockHostingRequestRepository) Create(ctx context.Context, req *entities.HostingRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	req.ID = uint(len(m.requests) + 1)
	m.requests = append(m.requests, *req)
	return nil
}

func (m *mockHostingRequestRepository) FindByID(ctx context.Context, id uint) (*entities.HostingRequest, error) {
	for _, r := range m.requests {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (m *mockHostingRequestRepository) FindByHostID(ctx context.Context, hostID string) ([]entities.HostingRequest, error) {
	var out []entities.HostingRequest
	for _, r := range m.requests {
		if r.HostID == hostID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockHostingRequestRepository) AcceptedHostingIDs(ctx context.Context, requesterID string, eventID uint) ([]uint, error) {
	var out []uint
	for _, r := range m.requests {
		if r.RequesterID == requesterID && r.EventID == eventID && r.Status == domain.StatusAccepted && !slices.Contains(out, r.HostingID) {
			out = append(out, r.HostingID)
		}
	}
	return out, nil
}

func (m *mockHostingRequestRepository) UpdateStatus(ctx context.Context, req *entities.HostingRequest, from domain.RequestStatus) error {
	for i := range m.requests {
		if m.requests[i].ID != req.ID {
			continue
		}
		if m.requests[i].Status != from {
			return fmt.Errorf("request %d: %w", req.ID, domain.ErrInvalidTransition)
		}
		if m.updateErr != nil {
			return m.updateErr
		}
		if req.Status == domain.StatusAccepted {
			for _, other := range m.requests {
				if other.ID != req.ID && other.RequesterID == req.RequesterID && other.EventID == req.EventID && other.Status == domain.StatusAccepted {
					return domain.ErrAcceptedForEvent
				}
			}
		}
		m.requests[i] = *req
		return nil
	}
	return domain.ErrRequestNotFound
}

func (m *mockHostingRequestRepository) CountByHostingIDAndStatus(ctx context.Context, hostingID uint, status domain.RequestStatus) (int64, error) {
	var n int64
	for _, r := range m.requests {
		if r.HostingID == hostingID && r.Status == status {
			n++
		}
	}
	return n, nil
}
