package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
	"hostbot/internal/ports/output"
)

// ProposeHostingInput is the hosting form. Zero AvailableBeds and empty
// CustomRules are filled from the host profile.
type ProposeHostingInput struct {
	EventID         uint   `validate:"required"`
	HostID          string `validate:"required,numeric"`
	HostName        string `validate:"max=100"`
	AvailableBeds   int    `validate:"min=1,max=50"`
	CustomRules     string `validate:"max=1000"`
	AddressOverride string `validate:"max=255"`
	CityOverride    string `validate:"max=100"`
	ZipCodeOverride string `validate:"max=20"`
	CountryOverride string `validate:"max=100"`
}

// Places is the occupancy of a hosting.
type Places struct {
	TotalBeds      int   `json:"total_beds"`
	AcceptedGuests int64 `json:"accepted_guests"`
	Available      int64 `json:"available_places"`
}

type HostingService struct {
	hostingRepo output.HostingRepository
	requestRepo output.HostingRequestRepository
	profileRepo output.HostProfileRepository
	eventRepo   output.EventRepository
	validator   *proposalValidator
}

func NewHostingService(
	hostingRepo output.HostingRepository,
	requestRepo output.HostingRequestRepository,
	profileRepo output.HostProfileRepository,
	eventRepo output.EventRepository,
) *HostingService {
	return &HostingService{
		hostingRepo: hostingRepo,
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		validator:   newProposalValidator(),
	}
}

func (s *HostingService) GetEvent(ctx context.Context, eventID uint) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, eventID)
}

func (s *HostingService) ListUpcomingEvents(ctx context.Context, limit int) ([]entities.Event, error) {
	return s.eventRepo.ListUpcoming(ctx, limit)
}

// ProposeHosting creates an active hosting for an existing event.
func (s *HostingService) ProposeHosting(ctx context.Context, in ProposeHostingInput) (*entities.Hosting, error) {
	if _, err := s.eventRepo.FindByID(ctx, in.EventID); err != nil {
		return nil, err
	}
	if in.AvailableBeds == 0 || strings.TrimSpace(in.CustomRules) == "" {
		profile, err := s.profileRepo.FindByUserID(ctx, in.HostID)
		if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("find host profile: %w", err)
		}
		if profile != nil {
			if in.AvailableBeds == 0 {
				in.AvailableBeds = profile.AvailableBeds
			}
			if strings.TrimSpace(in.CustomRules) == "" {
				in.CustomRules = profile.HomeRules
			}
		}
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}
	hosting := &entities.Hosting{
		EventID:         in.EventID,
		HostID:          in.HostID,
		HostName:        strings.TrimSpace(in.HostName),
		AvailableBeds:   in.AvailableBeds,
		CustomRules:     strings.TrimSpace(in.CustomRules),
		AddressOverride: strings.TrimSpace(in.AddressOverride),
		CityOverride:    strings.TrimSpace(in.CityOverride),
		ZipCodeOverride: strings.TrimSpace(in.ZipCodeOverride),
		CountryOverride: strings.TrimSpace(in.CountryOverride),
		IsActive:        true,
	}
	if err := s.hostingRepo.Create(ctx, hosting); err != nil {
		return nil, fmt.Errorf("create hosting: %w", err)
	}
	return hosting, nil
}

// SaveHostProfile stores the defaults used by later proposals.
func (s *HostingService) SaveHostProfile(ctx context.Context, profile *entities.HostProfile) error {
	if profile.AvailableBeds < 0 {
		return ValidationErrors{{Field: "AvailableBeds", Tag: "min", Param: "0"}}
	}
	return s.profileRepo.Upsert(ctx, profile)
}

func (s *HostingService) GetHosting(ctx context.Context, hostingID uint) (*entities.Hosting, error) {
	return s.hostingRepo.FindByID(ctx, hostingID)
}

// ListForEvent is the catalog of eventID.
func (s *HostingService) ListForEvent(ctx context.Context, eventID uint) ([]entities.Hosting, error) {
	return s.hostingRepo.List(ctx, eventID)
}

// AvailablePlaces subtracts the accepted guests from the hosting's beds.
func (s *HostingService) AvailablePlaces(ctx context.Context, hostingID uint) (*Places, error) {
	hosting, err := s.hostingRepo.FindByID(ctx, hostingID)
	if err != nil {
		return nil, err
	}
	return availablePlaces(ctx, s.requestRepo, hosting)
}

func availablePlaces(ctx context.Context, requestRepo output.HostingRequestRepository, hosting *entities.Hosting) (*Places, error) {
	accepted, err := requestRepo.CountByHostingIDAndStatus(ctx, hosting.ID, domain.StatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("count accepted: %w", err)
	}
	return &Places{
		TotalBeds:      hosting.AvailableBeds,
		AcceptedGuests: accepted,
		Available:      int64(hosting.AvailableBeds) - accepted,
	}, nil
}
