package user

import (
	"context"
	"errors"
	"strings"

	appErrors "github.com/yuvarajsadam/ExpenseTracker/internal/errors"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Repository.GetByEmail(ctx, email); err == nil {
		return nil, appErrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.NewDatabaseError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	now := pkg.SetTimestamps()
	entity := &User{
		Id:        pkg.GenerateULID(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		if isUniqueConstraintError(err) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	entity, err := s.Repository.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.Password), []byte(password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	return entity, nil
}

func (s *Service) GetByID(ctx context.Context, userID ulid.ULID) (*User, error) {
	entity, err := s.Repository.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "23505") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "idx_users_email")
}
