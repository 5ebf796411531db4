// Package otp implements the phone one-time-passcode login gate. At most one
// active code is valid per phone: requesting a new code invalidates all prior
// codes for that phone, and a verified code can never be reused.
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/example/fashionstore/internal/models"
)

// TTL is how long a code stays valid after issuance.
const TTL = 10 * time.Minute

// ErrUnknownPhone rejects code requests for phones no account owns.
var ErrUnknownPhone = errors.New("otp: no account for phone")

// ErrNoMatch signals that no pending code matches a phone+code pair.
var ErrNoMatch = errors.New("otp: no matching code")

// Store persists OTP rows.
type Store interface {
	DeleteByPhone(ctx context.Context, phone string) error
	Create(ctx context.Context, record *models.OTP) error
	// FindPending returns the unverified code matching phone+code exactly,
	// or ErrNoMatch. Verified codes are invisible to the lookup.
	FindPending(ctx context.Context, phone, code string) (*models.OTP, error)
	MarkVerified(ctx context.Context, record *models.OTP) error
}

// UserSource answers whether a phone belongs to a registered account.
type UserSource interface {
	PhoneExists(ctx context.Context, phone string) (bool, error)
}

// Service drives the per-phone OTP state machine.
type Service struct {
	store Store
	users UserSource
	now   func() time.Time
}

// NewService constructs a Service.
func NewService(store Store, users UserSource) *Service {
	return &Service{store: store, users: users, now: time.Now}
}

// Request invalidates any outstanding codes for the phone and issues a fresh
// 6-digit code with a 10-minute expiry. The code is returned for delivery by
// the caller's SMS channel.
func (s *Service) Request(ctx context.Context, phone string) (string, error) {
	exists, err := s.users.PhoneExists(ctx, phone)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrUnknownPhone
	}

	if err := s.store.DeleteByPhone(ctx, phone); err != nil {
		return "", err
	}

	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	record := &models.OTP{
		Phone:     phone,
		Code:      code,
		ExpiresAt: s.now().Add(TTL),
	}
	if err := s.store.Create(ctx, record); err != nil {
		return "", err
	}

	return code, nil
}

// Verify consumes a pending code. A missing, already-verified, or expired
// code yields false, not an error; only storage failures surface as errors.
func (s *Service) Verify(ctx context.Context, phone, code string) (bool, error) {
	record, err := s.store.FindPending(ctx, phone, code)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return false, nil
		}
		return false, err
	}

	if record.ExpiresAt.Before(s.now()) {
		return false, nil
	}

	record.Verified = true
	if err := s.store.MarkVerified(ctx, record); err != nil {
		return false, err
	}
	return true, nil
}

// GenerateCode returns a random 6-digit numeric code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
