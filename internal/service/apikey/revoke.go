package apikey

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// Revoke permanently disables a key. Revoking an already revoked key
// succeeds without changing it.
func (s *Service) Revoke(ctx context.Context, keyID uuid.UUID) (*domain.APIKey, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	key, err := s.guard.APIKey(ctx, tenantID, keyID)
	if err != nil {
		return nil, err
	}
	if key.Status == domain.APIKeyStatusRevoked {
		return key, nil
	}

	var revoked *domain.APIKey
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		k, err := s.keys.Revoke(txCtx, keyID, s.now().UTC())
		if err != nil {
			return fmt.Errorf("revoke api key: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:    tenantID,
			ActorUserID: ctxutil.ActorFromCtx(ctx),
			EntityType:  domain.EntityTypeAPIKey,
			EntityID:    keyID,
			Action:      domain.AuditActionRevoke,
			Changes:     map[string]any{"status": map[string]any{"old": key.Status.String(), "new": k.Status.String()}},
		}); err != nil {
			return fmt.Errorf("audit revoke: %w", err)
		}

		revoked = k
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "api key revoked",
		slog.String("tenant_id", tenantID.String()),
		slog.String("key_id", keyID.String()))

	return revoked, nil
}
