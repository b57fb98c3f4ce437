package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evergreen/backend/internal/domain/identity"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/auth"
	"github.com/evergreen/backend/internal/infrastructure/telemetry"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock the account after the limit
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService handles signup, login, and token lifecycle
type AuthService struct {
	userRepo        identity.UserRepository
	adminRepo       identity.AdminUserRepository
	jwtService      *auth.JWTService
	blacklist       auth.TokenBlacklist
	config          AuthServiceConfig
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	adminRepo identity.AdminUserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		config:     config,
		logger:     logger,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *AuthService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Register creates an account and signs the user in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" {
		if err := user.UpdateProfile(req.FullName, req.Phone, ""); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	if s.businessMetrics != nil {
		s.businessMetrics.RecordUserRegistration(ctx)
	}

	return s.issueTokens(user, "")
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("user_id", user.ID.String()))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later")
		}
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}

	if !user.VerifyPassword(req.Password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to record login failure", zap.Error(err))
		}
		if locked {
			s.logger.Warn("Account locked after repeated failures",
				zap.String("user_id", user.ID.String()),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	user.RecordLoginSuccess()
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to record login success", zap.Error(err))
	}

	adminRole, err := s.adminRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return s.issueTokens(user, adminRole)
}

// RefreshToken rotates the token pair using a valid refresh token.
// The admin role is reloaded so a revoked membership is dropped immediately.
func (s *AuthService) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	if blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID); err != nil {
		s.logger.Error("Blacklist lookup failed during refresh", zap.Error(err))
	} else if blacklisted {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Refresh token has been revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	adminRole, err := s.adminRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, user.Email, adminRole)
	if err != nil {
		return nil, mapTokenError(err)
	}

	return s.authResponse(user, adminRole, tokenPair), nil
}

// Logout revokes the presented tokens for their remaining lifetime
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if claims, err := s.jwtService.ValidateAccessToken(accessToken); err == nil {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
			s.logger.Error("Failed to blacklist access token", zap.Error(err))
			return err
		}
	}
	if refreshToken != "" {
		if claims, err := s.jwtService.ValidateRefreshToken(refreshToken); err == nil {
			if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
				s.logger.Error("Failed to blacklist refresh token", zap.Error(err))
				return err
			}
		}
	}
	return nil
}

// Me returns the profile of the signed-in user
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	adminRole, err := s.adminRole(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	response.AdminRole = adminRole
	return &response, nil
}

// UpdateProfile edits the signed-in user's profile
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fullName := user.FullName
	if req.FullName != nil {
		fullName = *req.FullName
	}
	phone := user.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	avatarURL := user.AvatarURL
	if req.AvatarURL != nil {
		avatarURL = *req.AvatarURL
	}
	if err := user.UpdateProfile(fullName, phone, avatarURL); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// ChangePassword verifies the old password and sets the new one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	// Sessions issued under the old password must not survive it
	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), ttl); err != nil {
		s.logger.Error("Failed to revoke sessions after password change",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *AuthService) adminRole(ctx context.Context, userID uuid.UUID) (string, error) {
	admin, err := s.adminRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(admin.Role), nil
}

func (s *AuthService) issueTokens(user *identity.User, adminRole string) (*AuthResponse, error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:    user.ID,
		Email:     user.Email,
		AdminRole: adminRole,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}
	return s.authResponse(user, adminRole, tokenPair), nil
}

func (s *AuthService) authResponse(user *identity.User, adminRole string, tokenPair *auth.TokenPair) *AuthResponse {
	userResponse := ToUserResponse(user)
	userResponse.AdminRole = adminRole
	return &AuthResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  userResponse,
	}
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
