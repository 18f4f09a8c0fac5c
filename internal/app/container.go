package app

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/you/credsvc/domain"
	"github.com/you/credsvc/internal/config"
	"github.com/you/credsvc/internal/infrastructure/auth"
	"github.com/you/credsvc/internal/infrastructure/database"
	"github.com/you/credsvc/internal/infrastructure/repositories"
	"github.com/you/credsvc/internal/services"
)

// Container holds all dependencies of the credential subsystem. A serving
// layer embeds it and calls the services directly.
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB *gorm.DB

	// Repositories
	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository
	TokenRepo   domain.TokenRepository

	// Services
	PasswordSvc domain.PasswordService
	Users       domain.UserService
	Sessions    domain.SessionService
	Tokens      domain.TokenService

	// RootAdminID is the id of the bootstrapped root administrator.
	RootAdminID uint
}

// NewContainer wires the subsystem and runs the root-admin bootstrap, so an
// administrative identity exists before any caller serves traffic.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	// No usable hashing algorithm is fatal at startup, not per-request.
	passwordSvc, err := auth.NewPasswordService()
	if err != nil {
		return nil, err
	}
	c.PasswordSvc = passwordSvc

	c.UserRepo = repositories.NewUserRepository(db)
	c.SessionRepo = repositories.NewSessionRepository(db)
	c.TokenRepo = repositories.NewTokenRepository(db)

	c.Users = services.NewUserService(c.UserRepo, c.PasswordSvc)
	c.Sessions = services.NewSessionService(c.SessionRepo, c.UserRepo)
	c.Tokens = services.NewTokenService(c.TokenRepo)

	boot := services.NewBootstrap(c.Users)
	id, err := boot.EnsureRootAdmin(ctx, cfg.RootAdminEmail, cfg.RootAdminPassword)
	if err != nil {
		return nil, err
	}
	c.RootAdminID = id

	return c, nil
}

// StartSweeper runs the optional session hygiene sweep until ctx is done.
// It is not required for correctness; expired sessions self-clean on read.
func (c *Container) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := c.Sessions.PurgeExpired(ctx); err != nil {
					log.Printf("session sweep: %v", err)
				}
			}
		}
	}()
}

// Close closes the database connection.
func (c *Container) Close() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
