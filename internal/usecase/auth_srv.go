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
	"github.com/WakoSS-nsk/api-yamdb/pkg/mailer"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Signup registers a username/email pair, or re-sends a fresh
// confirmation code when the user already exists but is still
// unverified. Both branches answer with the submitted payload.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Existing user: idempotent re-send for the pending state
	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username")
	}
	if existing != nil {
		if existing.EmailVerified {
			return nil, fmt.Errorf("validation failed: username already registered")
		}

		if err := s.issueConfirmationCode(ctx, existing); err != nil {
			return nil, err
		}

		s.log.Info("Confirmation code re-sent",
			zap.String("user_id", existing.ID.String()),
			zap.String("username", existing.Username))

		return &response.SignupResponse{Username: req.Username, Email: req.Email}, nil
	}

	// 3. Email must be free too
	byEmail, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if byEmail != nil {
		return nil, fmt.Errorf("validation failed: email already registered")
	}

	// 4. Create user with the default role
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:      req.Username,
		Email:         req.Email,
		Role:          entity.RoleUser,
		EmailVerified: false,
		IsActive:      true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to create account")
	}

	// 5. Store the code hash and mail the code
	if err := s.issueConfirmationCode(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.SignupResponse{Username: req.Username, Email: req.Email}, nil
}

// IssueToken turns a correct (username, confirmation code) pair into a
// signed bearer token carrying the user's role. Verification is
// idempotent: a correct code keeps working for later token requests.
func (s *authService) IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Token request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Unknown username answers not-found, so clients can branch on it
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.Username)
	}

	// 3. Compare the submitted code against the stored hash
	if user.ConfirmationCode == nil || !utils.CheckCodeHash(req.ConfirmationCode, *user.ConfirmationCode) {
		s.log.Warn("Confirmation code mismatch", zap.String("username", req.Username))
		return nil, fmt.Errorf("validation failed: invalid confirmation code")
	}

	// 4. Mark the email verified
	if !user.EmailVerified {
		user.EmailVerified = true
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to mark email verified",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("failed to verify email")
		}
	}

	// 5. Mint the bearer token with the role claim
	token, err := utils.GenerateToken(
		user.ID.String(),
		user.Username,
		string(user.Role),
		user.IsSuperuser,
		user.IsActive,
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
	)
	if err != nil {
		s.log.Error("Failed to generate token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to generate token")
	}

	s.log.Info("Token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return &response.TokenResponse{Token: token}, nil
}

// ==================== HELPER METHODS ====================

// issueConfirmationCode stores a fresh code hash on the user and
// dispatches the plain code by mail. Delivery is fire-and-forget: a
// failed send never rolls back the stored hash.
func (s *authService) issueConfirmationCode(ctx context.Context, user *entity.User) error {
	code, err := utils.GenerateConfirmationCode(s.config.ConfirmationCode.Length)
	if err != nil {
		s.log.Error("Failed to generate confirmation code", zap.Error(err))
		return fmt.Errorf("failed to generate confirmation code")
	}

	hash, err := utils.HashCode(code)
	if err != nil {
		s.log.Error("Failed to hash confirmation code", zap.Error(err))
		return fmt.Errorf("failed to process confirmation code")
	}

	user.ConfirmationCode = &hash
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to store confirmation code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to store confirmation code")
	}

	go s.sendConfirmationCode(user.Username, user.Email, code)

	return nil
}

func (s *authService) sendConfirmationCode(username, email, code string) {
	subject := "Activate your account"
	body := fmt.Sprintf(
		"Hi, %s. Send your username and this confirmation_code to /api/v1/auth/token/:\n%s",
		username, code,
	)

	if err := s.mail.Send(email, subject, body); err != nil {
		s.log.Error("Failed to send confirmation code",
			zap.Error(err), zap.String("email", email))
	}
}
