package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var legacySeq atomic.Int64

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		DisplayName:  "Test User " + suffix,
		PasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, display_name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedTenant creates a customer user and its tenant profile.
func SeedTenant(t *testing.T, pool *pgxpool.Pool) domain.Tenant {
	t.Helper()

	owner := SeedUser(t, pool, domain.UserRoleCustomer)
	tenant := domain.Tenant{
		ID:           uuid.New(),
		OwnerUserID:  owner.ID,
		BusinessName: "Bar " + uniqueSuffix(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO tenants (id, owner_user_id, business_name) VALUES ($1, $2, $3) RETURNING created_at`,
		tenant.ID, tenant.OwnerUserID, tenant.BusinessName,
	).Scan(&tenant.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTenant: %v", err)
	}
	return tenant
}

// SeedSinger creates a singer user and its profile.
func SeedSinger(t *testing.T, pool *pgxpool.Pool) domain.SingerProfile {
	t.Helper()

	user := SeedUser(t, pool, domain.UserRoleSinger)
	p := domain.SingerProfile{ID: uuid.New(), UserID: user.ID, DisplayName: user.DisplayName}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO singer_profiles (id, user_id, display_name) VALUES ($1, $2, $3) RETURNING created_at`,
		p.ID, p.UserID, p.DisplayName,
	).Scan(&p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSinger: %v", err)
	}
	return p
}

// SeedVenue creates an open venue for the tenant with a unique slug.
func SeedVenue(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID) domain.Venue {
	t.Helper()

	v := domain.Venue{
		ID:                uuid.New(),
		TenantID:          tenantID,
		Name:              "Venue " + uniqueSuffix(),
		URLName:           "venue-" + uniqueSuffix(),
		LegacyID:          legacySeq.Add(1),
		AcceptingRequests: true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO venues (id, tenant_id, name, url_name, openkj_venue_id, accepting_requests)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`,
		v.ID, v.TenantID, v.Name, v.URLName, v.LegacyID, v.AcceptingRequests,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedVenue: %v", err)
	}
	return v
}

// SeedSystem creates a karaoke system for the tenant.
func SeedSystem(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID) domain.System {
	t.Helper()

	s := domain.System{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "System " + uniqueSuffix(),
		LegacyID: legacySeq.Add(1),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO systems (id, tenant_id, name, openkj_system_id)
		 VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at`,
		s.ID, s.TenantID, s.Name, s.LegacyID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSystem: %v", err)
	}
	return s
}

// SeedSong adds one catalog entry to a system.
func SeedSong(t *testing.T, pool *pgxpool.Pool, sys domain.System, artist, title string) domain.Song {
	t.Helper()

	s := domain.NewSong(sys.TenantID, sys.ID, artist, title)
	err := pool.QueryRow(context.Background(),
		`INSERT INTO songs (id, tenant_id, system_id, artist, title, combined, normalized_combined)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`,
		s.ID, s.TenantID, s.SystemID, s.Artist, s.Title, s.Combined, s.NormalizedCombined,
	).Scan(&s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSong: %v", err)
	}
	return s
}
