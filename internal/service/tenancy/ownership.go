package tenancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// notFound is the single error shape for absent and foreign resources alike,
// so callers cannot probe another tenant's ids.
func notFound(rt domain.ResourceType, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", rt, id, domain.ErrNotFound)
}

// owned loads a resource, then hides it unless tenantID owns it.
func owned[T any](ctx context.Context, rt domain.ResourceType, tenantID, id uuid.UUID,
	load func(context.Context, uuid.UUID) (*T, error), owner func(*T) uuid.UUID,
) (*T, error) {
	if tenantID == uuid.Nil {
		return nil, ErrNoTenant
	}
	res, err := load(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notFound(rt, id)
		}
		return nil, fmt.Errorf("load %s: %w", rt, err)
	}
	if owner(res) != tenantID {
		return nil, notFound(rt, id)
	}
	return res, nil
}

// AssertOwnership succeeds only if the resource exists and tenantID owns it.
func (g *Guard) AssertOwnership(ctx context.Context, tenantID uuid.UUID, rt domain.ResourceType, id uuid.UUID) error {
	var err error
	switch rt {
	case domain.ResourceVenue:
		_, err = g.Venue(ctx, tenantID, id)
	case domain.ResourceSystem:
		_, err = g.System(ctx, tenantID, id)
	case domain.ResourceSong:
		_, err = g.Song(ctx, tenantID, id)
	case domain.ResourceAPIKey:
		_, err = g.APIKey(ctx, tenantID, id)
	default:
		return fmt.Errorf("assert ownership: unknown resource type %q", rt)
	}
	return err
}

// Venue returns the venue if tenantID owns it.
func (g *Guard) Venue(ctx context.Context, tenantID, venueID uuid.UUID) (*domain.Venue, error) {
	return owned(ctx, domain.ResourceVenue, tenantID, venueID, g.venues.GetByID,
		func(v *domain.Venue) uuid.UUID { return v.TenantID })
}

// System returns the system if tenantID owns it.
func (g *Guard) System(ctx context.Context, tenantID, systemID uuid.UUID) (*domain.System, error) {
	return owned(ctx, domain.ResourceSystem, tenantID, systemID, g.systems.GetByID,
		func(s *domain.System) uuid.UUID { return s.TenantID })
}

// Song returns the catalog entry if tenantID owns it.
func (g *Guard) Song(ctx context.Context, tenantID, songID uuid.UUID) (*domain.Song, error) {
	return owned(ctx, domain.ResourceSong, tenantID, songID, g.songs.GetByID,
		func(s *domain.Song) uuid.UUID { return s.TenantID })
}

// APIKey returns the key metadata if tenantID owns it.
func (g *Guard) APIKey(ctx context.Context, tenantID, keyID uuid.UUID) (*domain.APIKey, error) {
	return owned(ctx, domain.ResourceAPIKey, tenantID, keyID, g.apiKeys.GetByID,
		func(k *domain.APIKey) uuid.UUID { return k.TenantID })
}

// VenueByLegacyID looks a venue up by its per-tenant legacy id.
func (g *Guard) VenueByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.Venue, error) {
	if tenantID == uuid.Nil {
		return nil, ErrNoTenant
	}
	v, err := g.venues.GetByLegacyID(ctx, tenantID, legacyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("venue legacy id %d: %w", legacyID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("load venue by legacy id: %w", err)
	}
	return v, nil
}

// SystemByLegacyID looks a system up by its per-tenant legacy id.
func (g *Guard) SystemByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.System, error) {
	if tenantID == uuid.Nil {
		return nil, ErrNoTenant
	}
	s, err := g.systems.GetByLegacyID(ctx, tenantID, legacyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("system legacy id %d: %w", legacyID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("load system by legacy id: %w", err)
	}
	return s, nil
}

// Request checks the chain tenant -> venue -> request. A request addressed
// through the wrong venue is reported as not found.
func (g *Guard) Request(ctx context.Context, tenantID, venueID, requestID uuid.UUID) (*domain.Request, error) {
	if _, err := g.Venue(ctx, tenantID, venueID); err != nil {
		return nil, err
	}
	req, err := g.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("request %s: %w", requestID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("load request: %w", err)
	}
	if req.VenueID != venueID {
		return nil, fmt.Errorf("request %s: %w", requestID, domain.ErrNotFound)
	}
	return req, nil
}
