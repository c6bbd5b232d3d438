package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens of the authenticated user and denylists
// the presented access token for the rest of its lifetime.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	if claims, err := s.jwt.ValidateAccessToken(accessToken); err == nil && claims.JTI != "" {
		if ttl := claims.ExpiresAt.Sub(s.now()); ttl > 0 {
			if err := s.denylist.Add(ctx, claims.JTI, ttl); err != nil {
				return fmt.Errorf("auth.Logout denylist: %w", err)
			}
		}
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken validates an access token and returns the user ID and role.
// Returns ErrUnauthorized if the token is invalid, expired or logged out.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	if claims.JTI != "" {
		revoked, err := s.denylist.Contains(ctx, claims.JTI)
		if err != nil {
			return uuid.Nil, "", fmt.Errorf("auth.ValidateToken denylist: %w", err)
		}
		if revoked {
			return uuid.Nil, "", domain.ErrUnauthorized
		}
	}

	return claims.UserID, domain.UserRole(claims.Role), nil
}

// CleanupExpiredTokens removes all expired refresh tokens from the database.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
