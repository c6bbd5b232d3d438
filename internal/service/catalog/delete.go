package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// DeleteOne removes one of the tenant's songs.
func (s *Service) DeleteOne(ctx context.Context, songID uuid.UUID) error {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return err
	}
	if _, err := s.guard.Song(ctx, tenantID, songID); err != nil {
		return err
	}
	if err := s.songs.Delete(ctx, songID); err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	return nil
}

// DeleteAllForSystem wipes a system's catalog and returns the number of
// songs removed.
func (s *Service) DeleteAllForSystem(ctx context.Context, systemID uuid.UUID) (int64, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := s.guard.System(ctx, tenantID, systemID); err != nil {
		return 0, err
	}

	var deleted int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.songs.DeleteBySystem(txCtx, systemID)
		if err != nil {
			return fmt.Errorf("wipe catalog: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:    tenantID,
			ActorUserID: ctxutil.ActorFromCtx(ctx),
			EntityType:  domain.EntityTypeCatalog,
			EntityID:    systemID,
			Action:      domain.AuditActionDelete,
			Changes:     map[string]any{"deleted": n},
		}); err != nil {
			return fmt.Errorf("audit wipe: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "catalog wiped",
		slog.String("system_id", systemID.String()),
		slog.Int64("deleted", deleted))
	return deleted, nil
}
