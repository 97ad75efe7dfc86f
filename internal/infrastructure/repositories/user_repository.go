package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255"`
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"column:password"`
	Role         string `gorm:"index;size:64"`
	Photo        string
	DeviceID     string `gorm:"size:128"`
	PushToken    string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(userToDB(user)).Error
}

// ListByRole implements domain.UserRepository
func (r *UserRepositoryImpl) ListByRole(ctx context.Context, role string) ([]*domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Where("role = ?", role).Order("name asc").Find(&dbUsers).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, len(dbUsers))
	for i := range dbUsers {
		users[i] = userToDomain(&dbUsers[i])
	}
	return users, nil
}

func userToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Photo:        user.Photo,
		DeviceID:     user.DeviceID,
		PushToken:    user.PushToken,
		CreatedAt:    user.CreatedAt,
	}
}

func userToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         dbUser.Role,
		Photo:        dbUser.Photo,
		DeviceID:     dbUser.DeviceID,
		PushToken:    dbUser.PushToken,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
