package apikey

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/auth"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/metrics"
)

// VerifyResult is the outcome of Verify. Only Valid results carry ids.
type VerifyResult struct {
	Valid    bool
	TenantID uuid.UUID
	KeyID    uuid.UUID
}

// Verify checks a presented key. It never returns an error: anything that
// is not a usable key, including a storage failure, is simply invalid.
func (s *Service) Verify(ctx context.Context, candidate string) VerifyResult {
	if !auth.WellFormedAPIKey(candidate) {
		metrics.RecordAPIKeyVerification("malformed")
		return VerifyResult{}
	}

	key, err := s.keys.GetByHash(ctx, auth.HashToken(candidate))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.RecordAPIKeyVerification("unknown")
			return VerifyResult{}
		}
		metrics.RecordAPIKeyVerification("error")
		s.log.ErrorContext(ctx, "api key lookup failed", slog.String("error", err.Error()))
		return VerifyResult{}
	}

	now := s.now()
	if !key.Usable(now) {
		metrics.RecordAPIKeyVerification("inactive")
		return VerifyResult{}
	}

	s.touchLastUsed(ctx, key.ID)
	metrics.RecordAPIKeyVerification("valid")

	return VerifyResult{Valid: true, TenantID: key.TenantID, KeyID: key.ID}
}

// touchLastUsed records usage off the request path. The update outlives the
// request but not shutdown: Wait drains it.
func (s *Service) touchLastUsed(ctx context.Context, keyID uuid.UUID) {
	s.touches.Add(1)
	go func() {
		defer s.touches.Done()

		touchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), touchTimeout)
		defer cancel()

		if err := s.keys.TouchLastUsed(touchCtx, keyID, s.now()); err != nil {
			s.log.WarnContext(touchCtx, "api key last-used update failed",
				slog.String("key_id", keyID.String()),
				slog.String("error", err.Error()))
		}
	}()
}
