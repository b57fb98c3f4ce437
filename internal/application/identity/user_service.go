package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/domain/identity"
	"github.com/evergreen/backend/internal/domain/shared"
	"github.com/evergreen/backend/internal/infrastructure/auth"
)

// UserService handles back-office user administration
type UserService struct {
	userRepo   identity.UserRepository
	adminRepo  identity.AdminUserRepository
	blacklist  auth.TokenBlacklist
	sessionTTL time.Duration
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, adminRepo identity.AdminUserRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

// SetTokenBlacklist enables session revocation for administrative
// actions: a deactivated account or revoked admin loses its live
// tokens immediately instead of keeping them until expiry. The TTL
// must cover the longest-lived token, the refresh expiration.
func (s *UserService) SetTokenBlacklist(blacklist auth.TokenBlacklist, sessionTTL time.Duration) {
	s.blacklist = blacklist
	s.sessionTTL = sessionTTL
}

// List returns a page of users for the admin table
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, total, nil
}

// Get returns a single user with their admin role, if any
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	if admin, err := s.adminRepo.FindByUserID(ctx, userID); err == nil {
		response.AdminRole = string(admin.Role)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	return &response, nil
}

// Deactivate disables an account
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.Deactivate(); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	return s.revokeSessions(ctx, userID)
}

// Activate re-enables an account
func (s *UserService) Activate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.Activate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// ListAdmins returns all admin memberships joined with user details
func (s *UserService) ListAdmins(ctx context.Context) ([]AdminUserResponse, error) {
	admins, err := s.adminRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]AdminUserResponse, 0, len(admins))
	for i := range admins {
		response := AdminUserResponse{
			UserID:    admins[i].UserID,
			Role:      string(admins[i].Role),
			CreatedAt: admins[i].CreatedAt,
		}
		if user, err := s.userRepo.FindByID(ctx, admins[i].UserID); err == nil {
			response.Email = user.Email
			response.FullName = user.FullName
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// GrantAdmin gives a user back-office access, or updates their role
func (s *UserService) GrantAdmin(ctx context.Context, userID uuid.UUID, role identity.AdminRole) (*AdminUserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		admin, err = identity.NewAdminUser(userID, role)
		if err != nil {
			return nil, err
		}
	} else if err := admin.ChangeRole(role); err != nil {
		return nil, err
	}

	if err := s.adminRepo.Save(ctx, admin); err != nil {
		return nil, err
	}
	return &AdminUserResponse{
		UserID:    admin.UserID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(admin.Role),
		CreatedAt: admin.CreatedAt,
	}, nil
}

// GrantAdminByEmail gives back-office access looked up by email
func (s *UserService) GrantAdminByEmail(ctx context.Context, email string, role identity.AdminRole) (*AdminUserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.GrantAdmin(ctx, user.ID, role)
}

// RevokeAdmin removes a user's back-office access. Live tokens still
// carry the admin role in their claims, so they are revoked too.
func (s *UserService) RevokeAdmin(ctx context.Context, userID uuid.UUID) error {
	if err := s.adminRepo.Delete(ctx, userID); err != nil {
		return err
	}
	return s.revokeSessions(ctx, userID)
}

func (s *UserService) revokeSessions(ctx context.Context, userID uuid.UUID) error {
	if s.blacklist == nil {
		return nil
	}
	return s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.sessionTTL)
}
