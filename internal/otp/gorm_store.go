package otp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/models"
)

// GormStore persists OTP rows with gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore constructs a GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) DeleteByPhone(ctx context.Context, phone string) error {
	return s.db.WithContext(ctx).Where("phone = ?", phone).Delete(&models.OTP{}).Error
}

func (s *GormStore) Create(ctx context.Context, record *models.OTP) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *GormStore) FindPending(ctx context.Context, phone, code string) (*models.OTP, error) {
	var record models.OTP
	err := s.db.WithContext(ctx).
		Where("phone = ? AND code = ? AND verified = ?", phone, code, false).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoMatch
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormStore) MarkVerified(ctx context.Context, record *models.OTP) error {
	return s.db.WithContext(ctx).Model(record).Update("verified", true).Error
}

// GormUserSource checks phone ownership against the users table.
type GormUserSource struct {
	db *gorm.DB
}

// NewGormUserSource constructs a GormUserSource.
func NewGormUserSource(db *gorm.DB) *GormUserSource {
	return &GormUserSource{db: db}
}

func (s *GormUserSource) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}
