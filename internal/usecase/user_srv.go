package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/internal/data/repository"
	"github.com/WakoSS-nsk/api-yamdb/internal/dto/request"
	"github.com/WakoSS-nsk/api-yamdb/internal/dto/response"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

type UserService interface {
	GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetUserByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateUserByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUserByUsername(ctx context.Context, username string) error
	GetMe(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateMe(ctx context.Context, actor Actor, req *request.UpdateUserRequest) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

// CreateUser is the admin path: the role may be set explicitly here.
// Users created this way are not pending verification, so no
// confirmation code is issued for them.
func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("validation failed: username already registered")
	}

	byEmail, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if byEmail != nil {
		return nil, fmt.Errorf("validation failed: email already registered")
	}

	role := entity.RoleUser
	if req.Role != "" {
		if !entity.ValidRole(req.Role) {
			return nil, fmt.Errorf("validation failed: unknown role %s", req.Role)
		}
		role = entity.UserRole(req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
		IsActive:  true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", username)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateUserByUsername is the admin path: role changes apply as
// submitted.
func (s *userService) UpdateUserByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", username)
	}

	if err := s.applyUserUpdate(ctx, user, req, true); err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUserByUsername(ctx context.Context, username string) error {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s not found", username)
	}

	// Deleting a user drops their reviews and comments with them.
	if err := s.repo.User.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateMe is the self-service path. A role submitted by a non-admin
// is silently ignored: the request still succeeds and the response
// carries the unchanged role.
func (s *userService) UpdateMe(ctx context.Context, actor Actor, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if err := s.applyUserUpdate(ctx, user, req, actor.Role == entity.RoleAdmin); err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *userService) applyUserUpdate(ctx context.Context, user *entity.User, req *request.UpdateUserRequest, allowRoleChange bool) error {
	if req.Email != nil && *req.Email != user.Email {
		byEmail, err := s.repo.User.FindByEmail(ctx, *req.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if byEmail != nil {
			return fmt.Errorf("validation failed: email already registered")
		}
		user.Email = *req.Email
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Role != nil && allowRoleChange {
		if !entity.ValidRole(*req.Role) {
			return fmt.Errorf("validation failed: unknown role %s", *req.Role)
		}
		user.Role = entity.UserRole(*req.Role)
	}

	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return nil
}
