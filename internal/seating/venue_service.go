package seating

import (
	"context"
	"errors"
	"strings"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/utils"
)

// CreateVenueInput carries the fields of a venue-creation request.
type CreateVenueInput struct {
	Name        string
	Address     string
	Capacity    int
	Description string
	Map         *model.VenueMap
}

// UpdateVenueInput carries a partial venue update.  Nil fields are
// left untouched; a non-nil Map replaces the stored map wholesale.
type UpdateVenueInput struct {
	Name        *string
	Address     *string
	Capacity    *int
	Description *string
	Map         *model.VenueMap
}

// CreateVenue validates and stores a new venue.  The map, when
// present, must pass structural validation.
func (s *Service) CreateVenue(ctx context.Context, in CreateVenueInput) (*model.Venue, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, Invalid(CodeValidation, "name is required")
	}
	if in.Capacity < 1 {
		return nil, Invalid(CodeValidation, "capacity must be a positive integer")
	}
	if err := ValidateVenueMap(in.Map); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	venue := model.Venue{
		ID:          utils.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		Capacity:    in.Capacity,
		Description: in.Description,
		Map:         in.Map,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, Internal(err)
	}
	return &venue, nil
}

// GetVenue returns a venue by identifier.
func (s *Service) GetVenue(ctx context.Context, id string) (*model.Venue, error) {
	if !utils.IsValidID(id) {
		return nil, Invalid(CodeInvalidIDFormat, "venue id is not a valid identifier")
	}
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, NotFound(CodeVenueNotFound, "venue not found")
		}
		return nil, Internal(err)
	}
	return venue, nil
}

// ListVenues returns every venue in insertion order.
func (s *Service) ListVenues(ctx context.Context) ([]model.Venue, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return venues, nil
}

// UpdateVenue applies a partial update.  A submitted map is validated
// and replaces the previous one entirely, never merged.
func (s *Service) UpdateVenue(ctx context.Context, id string, in UpdateVenueInput) (*model.Venue, error) {
	if !utils.IsValidID(id) {
		return nil, Invalid(CodeInvalidIDFormat, "venue id is not a valid identifier")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, Invalid(CodeValidation, "name must not be empty")
	}
	if in.Capacity != nil && *in.Capacity < 1 {
		return nil, Invalid(CodeValidation, "capacity must be a positive integer")
	}
	if err := ValidateVenueMap(in.Map); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, NotFound(CodeVenueNotFound, "venue not found")
		}
		return nil, Internal(err)
	}
	if in.Name != nil {
		venue.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		venue.Address = strings.TrimSpace(*in.Address)
	}
	if in.Capacity != nil {
		venue.Capacity = *in.Capacity
	}
	if in.Description != nil {
		venue.Description = *in.Description
	}
	if in.Map != nil {
		venue.Map = in.Map
	}
	venue.UpdatedAt = s.now().UTC()
	if err := s.venues.Update(ctx, *venue); err != nil {
		return nil, Internal(err)
	}
	return venue, nil
}

// DeleteVenue removes a venue unless an event still references it.
func (s *Service) DeleteVenue(ctx context.Context, id string) error {
	if !utils.IsValidID(id) {
		return Invalid(CodeInvalidIDFormat, "venue id is not a valid identifier")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.venues.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return NotFound(CodeVenueNotFound, "venue not found")
		}
		return Internal(err)
	}
	inUse, err := s.events.AnyForVenue(ctx, id)
	if err != nil {
		return Internal(err)
	}
	if inUse {
		return Conflict(CodeVenueInUse, "venue is referenced by an existing event")
	}
	if err := s.venues.Delete(ctx, id); err != nil {
		return Internal(err)
	}
	return nil
}
