package identity

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/models"
)

// GormStore persists user accounts with gorm. It relies on the connection
// being opened with TranslateError so unique-index violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore constructs a GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return s.taken(ctx, "username = ?", username)
}

func (s *GormStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	return s.taken(ctx, "email = ?", email)
}

func (s *GormStore) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	return s.taken(ctx, "phone = ?", phone)
}

func (s *GormStore) taken(ctx context.Context, query string, value string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where(query, value).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAccount
		}
		return err
	}
	return nil
}

func (s *GormStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
