package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appModels "github.com/frolicdev/frolic/internal/app/models"
	appRepos "github.com/frolicdev/frolic/internal/app/repositories"
	"github.com/frolicdev/frolic/internal/pkg/auth"
	"github.com/frolicdev/frolic/internal/pkg/logger"
)

// Default admin credentials, intended for first login only
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@frolic.app"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData creates the default admin account if no such user exists
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.ExistsByUsernameOrEmail(ctx, defaultAdminUsername, defaultAdminEmail)
	if err != nil {
		return fmt.Errorf("error checking default admin: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	admin := &appModels.User{
		Username: defaultAdminUsername,
		Email:    defaultAdminEmail,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, appRepos.ErrUserAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating default admin: %w", err)
	}

	logger.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
