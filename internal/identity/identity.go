// Package identity implements account registration and password login over
// a user store.
package identity

import (
	"context"
	"errors"

	"github.com/example/fashionstore/internal/models"
	"github.com/example/fashionstore/internal/utils"
)

var (
	// ErrPasswordMismatch rejects registrations whose password and
	// confirmation differ.
	ErrPasswordMismatch = errors.New("identity: passwords do not match")
	// ErrDuplicateUsername, ErrDuplicateEmail and ErrDuplicatePhone reject
	// registrations violating a unique account field.
	ErrDuplicateUsername = errors.New("identity: username already exists")
	ErrDuplicateEmail    = errors.New("identity: email already exists")
	ErrDuplicatePhone    = errors.New("identity: phone already exists")
	// ErrDuplicateAccount is returned when the insert itself hits a unique
	// index: a concurrent registration won the race after the lookups passed.
	ErrDuplicateAccount = errors.New("identity: account already exists")
	// ErrInvalidCredentials rejects logins with an unknown username or a
	// wrong password, indistinguishably.
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	// ErrUserNotFound is the store-level miss for lookups.
	ErrUserNotFound = errors.New("identity: user not found")
)

// Store persists user accounts.
type Store interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	PhoneTaken(ctx context.Context, phone string) (bool, error)
	// Create inserts the user, returning ErrDuplicateAccount when a unique
	// index rejects the row.
	Create(ctx context.Context, user *models.User) error
	ByUsername(ctx context.Context, username string) (*models.User, error)
}

// Registration carries the signup form fields.
type Registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Phone           string
}

// Service drives account creation and credential checks.
type Service struct {
	store Store
}

// NewService constructs a Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates a new account. Uniqueness failures leave the store
// untouched; only the password hash is ever persisted.
func (s *Service) Register(ctx context.Context, reg Registration) (*models.User, error) {
	if reg.Password != reg.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if taken, err := s.store.UsernameTaken(ctx, reg.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateUsername
	}

	if taken, err := s.store.EmailTaken(ctx, reg.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateEmail
	}

	if reg.Phone != "" {
		if taken, err := s.store.PhoneTaken(ctx, reg.Phone); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrDuplicatePhone
		}
	}

	passwordHash, err := utils.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: passwordHash,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
	}
	if reg.Phone != "" {
		phone := reg.Phone
		user.Phone = &phone
	}

	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateByPassword checks a username/password pair. Unknown usernames
// and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) AuthenticateByPassword(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
