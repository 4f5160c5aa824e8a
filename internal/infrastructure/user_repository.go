package infrastructure

import (
	"context"
	"time"

	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/user"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

var _ user.Repository = (*UserRepository)(nil)

type userDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey;column:id"`
	Name      string    `gorm:"size:100;not null;column:name"`
	Email     string    `gorm:"size:255;not null;column:email"`
	Password  string    `gorm:"size:100;not null;column:password"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
}

func toDomainUser(udb *userDB) (*user.User, error) {
	id, err := pkg.ParseULID(udb.Id)
	if err != nil {
		return nil, err
	}

	return &user.User{
		Id:        id,
		Name:      udb.Name,
		Email:     udb.Email,
		Password:  udb.Password,
		CreatedAt: udb.CreatedAt,
		UpdatedAt: udb.UpdatedAt,
	}, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	udb := &userDB{
		Id:        u.Id.String(),
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	return r.DB.WithContext(ctx).Table("users").Create(udb).Error
}

func (r *UserRepository) GetByID(ctx context.Context, userID ulid.ULID) (*user.User, error) {
	udb, err := query.New[userDB](r.DB, "users").
		Context(ctx).
		Where("id = ?", userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainUser(udb)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	udb, err := query.New[userDB](r.DB, "users").
		Context(ctx).
		Where("email = ?", email).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainUser(udb)
}
