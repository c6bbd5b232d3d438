package apikey

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// Create issues a key for the caller's tenant.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Created, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	gen, err := s.generate()
	if err != nil {
		return nil, fmt.Errorf("generate api key: %w", err)
	}

	var created *domain.APIKey
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		k, err := s.keys.Create(txCtx, &domain.APIKey{
			ID:          uuid.New(),
			TenantID:    tenantID,
			Description: strings.TrimSpace(input.Description),
			KeyHash:     gen.Hash,
			KeyPrefix:   gen.DisplayPrefix,
			Status:      domain.APIKeyStatusActive,
			ExpiresAt:   input.ExpiresAt,
		})
		if err != nil {
			return fmt.Errorf("create api key: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:    tenantID,
			ActorUserID: ctxutil.ActorFromCtx(ctx),
			EntityType:  domain.EntityTypeAPIKey,
			EntityID:    k.ID,
			Action:      domain.AuditActionCreate,
			Changes:     map[string]any{"description": k.Description, "keyPrefix": k.KeyPrefix},
		}); err != nil {
			return fmt.Errorf("audit create: %w", err)
		}

		created = k
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "api key created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("key_id", created.ID.String()),
		slog.String("prefix", created.KeyPrefix))

	return &Created{Key: created, Plaintext: gen.Plaintext}, nil
}

// List returns the caller's keys.
func (s *Service) List(ctx context.Context) ([]domain.APIKey, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	keys, err := s.keys.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	return keys, nil
}
