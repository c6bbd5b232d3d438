package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Register creates a user together with its customer tenant or singer
// profile, then signs the user in.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create user + profile in a transaction.
	// Email uniqueness is enforced by a DB constraint.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			DisplayName:  input.DisplayName,
			PasswordHash: string(hash),
			Role:         input.AccountType,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		switch input.AccountType {
		case domain.UserRoleCustomer:
			businessName := input.DisplayName
			if input.BusinessName != nil && strings.TrimSpace(*input.BusinessName) != "" {
				businessName = strings.TrimSpace(*input.BusinessName)
			}
			if _, err := s.tenants.Create(txCtx, &domain.Tenant{
				ID:           uuid.New(),
				OwnerUserID:  user.ID,
				BusinessName: businessName,
			}); err != nil {
				return fmt.Errorf("create tenant: %w", err)
			}
		case domain.UserRoleSinger:
			if _, err := s.singers.Create(txCtx, &domain.SingerProfile{
				ID:          uuid.New(),
				UserID:      user.ID,
				DisplayName: input.DisplayName,
			}); err != nil {
				return fmt.Errorf("create singer profile: %w", err)
			}
		}

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.NewConflictError("email", "already registered"))
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 4: Issue tokens
	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()),
		slog.String("role", createdUser.Role.String()))

	return result, nil
}
