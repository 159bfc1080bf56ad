package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/cache"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/repositories"
	"github.com/sbilibin2017/gw-image-vault/internal/validation"
)

// ErrConcurrentModification is returned when a record changed between read and write.
var ErrConcurrentModification = apperrors.Business(
	"CONCURRENT_MODIFICATION",
	"The record was modified by another request, please retry",
).WithStatus(http.StatusConflict)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// UserService manages accounts.
type UserService struct {
	reader    UserReader
	writer    UserWriter
	cache     *cache.Cache
	validator *validation.Validator
	events    EventPublisher
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter, c *cache.Cache, v *validation.Validator, events EventPublisher) *UserService {
	return &UserService{
		reader:    reader,
		writer:    writer,
		cache:     c,
		validator: v,
		events:    events,
	}
}

func usernameTaken(username string) *apperrors.Error {
	return apperrors.Business("USER_ALREADY_EXISTS", "Username already exists: "+username)
}

func emailTaken(email string) *apperrors.Error {
	return apperrors.Business("EMAIL_ALREADY_EXISTS", "Email already exists: "+email)
}

// Register creates an active account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.reader.ExistsByUsername(ctx, req.Username)
	if err != nil {
		log.Errorw("failed to check username", "username", req.Username, "err", err)
		return nil, err
	}
	if exists {
		log.Warnw("username already exists", "username", req.Username)
		return nil, usernameTaken(req.Username)
	}

	exists, err = s.reader.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Errorw("failed to check email", "email", req.Email, "err", err)
		return nil, err
	}
	if exists {
		log.Warnw("email already exists", "email", req.Email)
		return nil, emailTaken(req.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		IsActive:     true,
	}
	if err := s.writer.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUsernameTaken):
			return nil, usernameTaken(req.Username)
		case errors.Is(err, repositories.ErrEmailTaken):
			return nil, emailTaken(req.Email)
		}
		log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	repositories.AfterCommit(ctx, func() {
		s.cache.Invalidate(cache.UserNamespaces...)
		s.events.PublishUserEvent(user.Username, models.EventUserRegistered)
	})

	log.Infow("user registered", "user_id", user.ID, "username", user.Username)
	resp := user.ToResponse()
	return &resp, nil
}

// GetUserEntityByID returns a copy of the cached user record.
func (s *UserService) GetUserEntityByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := cache.GetOrLoad(ctx, s.cache, cache.UserByID, strconv.FormatInt(id, 10), func(ctx context.Context) (*models.User, error) {
		user, err := s.reader.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperrors.NotFound("User", id)
		}
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	cp := *user
	return &cp, nil
}

// GetUserEntityByUsername returns a copy of the cached user record.
func (s *UserService) GetUserEntityByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := cache.GetOrLoad(ctx, s.cache, cache.UserByUsername, username, func(ctx context.Context) (*models.User, error) {
		user, err := s.reader.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperrors.NotFoundBy("User", "username", username)
		}
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	cp := *user
	return &cp, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.GetUserEntityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.UserResponse, error) {
	user, err := s.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

// ExistsByUsername reports whether username is taken. Store errors read as false.
func (s *UserService) ExistsByUsername(ctx context.Context, username string) bool {
	exists, err := cache.GetOrLoad(ctx, s.cache, cache.UserExistsByUsername, username, func(ctx context.Context) (bool, error) {
		return s.reader.ExistsByUsername(ctx, username)
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check username", "username", username, "err", err)
		return false
	}
	return exists
}

// ExistsByEmail reports whether email is taken. Store errors read as false.
func (s *UserService) ExistsByEmail(ctx context.Context, email string) bool {
	exists, err := cache.GetOrLoad(ctx, s.cache, cache.UserExistsByEmail, email, func(ctx context.Context) (bool, error) {
		return s.reader.ExistsByEmail(ctx, email)
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check email", "email", email, "err", err)
		return false
	}
	return exists
}

// UpdateUser replaces the non-empty profile fields of req.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.loadForWrite(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := s.save(ctx, user, models.EventUserUpdated); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// DeactivateUser soft-deletes the account.
func (s *UserService) DeactivateUser(ctx context.Context, id int64) error {
	user, err := s.loadForWrite(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = false

	if err := s.save(ctx, user, models.EventUserDeactivated); err != nil {
		return err
	}
	return nil
}

// loadForWrite reads the stored row so the version check compares against current state.
func (s *UserService) loadForWrite(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User", id)
	}
	return user, nil
}

// save writes user and, once the write is committed, evicts the user
// namespaces and publishes eventType.
func (s *UserService) save(ctx context.Context, user *models.User, eventType string) error {
	err := s.writer.Update(ctx, user)
	if errors.Is(err, repositories.ErrVersionConflict) {
		logger.FromContext(ctx).Warnw("concurrent user update", "user_id", user.ID)
		return ErrConcurrentModification.Wrap(err)
	}
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	username := user.Username
	repositories.AfterCommit(ctx, func() {
		s.cache.Invalidate(cache.UserNamespaces...)
		s.events.PublishUserEvent(username, eventType)
	})
	return nil
}
