package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/metrics"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
)

// BulkImport adds songs to a system on a best-effort basis. Invalid items
// count as errors, items whose normalized form was already seen in the
// payload or is already stored count as skipped, the rest are imported.
// The first casing of a duplicate wins. The import is not atomic: each chunk
// commits on its own and a failing chunk is retried item by item.
func (s *Service) BulkImport(ctx context.Context, input BulkImportInput) (*domain.ImportResult, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if len(input.Songs) == 0 {
		return nil, domain.NewValidationError("songs", "at least one song is required")
	}
	if len(input.Songs) > s.cfg.ImportMaxItems {
		return nil, domain.NewValidationError("songs", fmt.Sprintf("at most %d songs per import", s.cfg.ImportMaxItems))
	}

	sys, err := s.resolveSystem(ctx, tenantID, input.System)
	if err != nil {
		return nil, err
	}

	result := &domain.ImportResult{Submitted: len(input.Songs)}

	seen := make(map[string]struct{}, len(input.Songs))
	pending := make([]domain.Song, 0, len(input.Songs))
	for _, raw := range input.Songs {
		item, key, fe := cleanItem(raw)
		if fe != nil {
			result.Errors++
			continue
		}
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}
		pending = append(pending, domain.NewSong(tenantID, sys.ID, item.Artist, item.Title))
	}

	chunkSize := max(s.cfg.ImportChunkSize, 1)
	for start := 0; start < len(pending); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("bulk import: %w", err)
		}
		chunk := pending[start:min(start+chunkSize, len(pending))]
		s.insertChunk(ctx, tenantID, sys.ID, chunk, result)
	}

	metrics.RecordImport(result.Imported, result.Skipped, result.Errors)

	s.log.InfoContext(ctx, "catalog import finished",
		slog.String("system_id", sys.ID.String()),
		slog.Int("submitted", result.Submitted),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors))

	return result, nil
}

func (s *Service) insertChunk(ctx context.Context, tenantID, systemID uuid.UUID, chunk []domain.Song, result *domain.ImportResult) {
	inserted, err := s.songs.InsertBatch(ctx, tenantID, systemID, chunk)
	if err == nil {
		result.Imported += len(inserted)
		result.Skipped += len(chunk) - len(inserted)
		return
	}

	s.log.WarnContext(ctx, "import chunk failed, retrying per item",
		slog.String("system_id", systemID.String()),
		slog.Int("chunk_size", len(chunk)),
		slog.String("error", err.Error()))

	for i := range chunk {
		inserted, err := s.songs.InsertBatch(ctx, tenantID, systemID, chunk[i:i+1])
		switch {
		case err != nil:
			result.Errors++
		case len(inserted) == 1:
			result.Imported++
		default:
			result.Skipped++
		}
	}
}
