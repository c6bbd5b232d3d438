package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
)

// CreateSong adds a single song. A song whose normalized form already exists
// in the system is a conflict on title.
func (s *Service) CreateSong(ctx context.Context, input CreateSongInput) (*domain.Song, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	item, _, fe := cleanItem(domain.SongItem{Artist: input.Artist, Title: input.Title})
	if fe != nil {
		return nil, domain.NewValidationError(fe.Field, fe.Message)
	}

	if _, err := s.guard.System(ctx, tenantID, input.SystemID); err != nil {
		return nil, err
	}

	song := domain.NewSong(tenantID, input.SystemID, item.Artist, item.Title)
	created, err := s.songs.Create(ctx, &song)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflictError("title", "song already exists in this system")
		}
		return nil, fmt.Errorf("create song: %w", err)
	}

	s.log.InfoContext(ctx, "song added",
		slog.String("system_id", input.SystemID.String()),
		slog.String("song_id", created.ID.String()))

	return created, nil
}
