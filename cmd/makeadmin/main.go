// Command makeadmin grants the admin or super_admin role to an
// existing account. It exists for bootstrapping: the first super admin
// cannot be created through the API because granting roles already
// requires one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	identityapp "github.com/evergreen/backend/internal/application/identity"
	"github.com/evergreen/backend/internal/domain/identity"
	"github.com/evergreen/backend/internal/infrastructure/config"
	"github.com/evergreen/backend/internal/infrastructure/logger"
	"github.com/evergreen/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		email    string
		role     string
		logLevel string
	)

	flag.StringVar(&email, "email", "", "Email of the account to promote (required)")
	flag.StringVar(&role, "role", string(identity.AdminRoleSuperAdmin), "Role to grant: admin or super_admin")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if email == "" {
		fmt.Fprintln(os.Stderr, "Usage: makeadmin -email <email> [-role admin|super_admin]")
		os.Exit(1)
	}

	adminRole := identity.AdminRole(role)
	if adminRole != identity.AdminRoleAdmin && adminRole != identity.AdminRoleSuperAdmin {
		fmt.Fprintf(os.Stderr, "Invalid role %q, must be admin or super_admin\n", role)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	userRepo := persistence.NewGormUserRepository(db.DB)
	adminUserRepo := persistence.NewGormAdminUserRepository(db.DB)
	userService := identityapp.NewUserService(userRepo, adminUserRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := userService.GrantAdminByEmail(ctx, email, adminRole)
	if err != nil {
		log.Fatal("Failed to grant admin role",
			zap.String("email", email),
			zap.String("role", string(adminRole)),
			zap.Error(err),
		)
	}

	log.Info("Admin role granted",
		zap.String("email", email),
		zap.String("role", admin.Role),
	)
}
