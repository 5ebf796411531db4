package otp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/fashionstore/internal/models"
)

type fakeStore struct {
	records []*models.OTP
}

func (f *fakeStore) DeleteByPhone(ctx context.Context, phone string) error {
	kept := f.records[:0]
	for _, r := range f.records {
		if r.Phone != phone {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func (f *fakeStore) Create(ctx context.Context, record *models.OTP) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeStore) FindPending(ctx context.Context, phone, code string) (*models.OTP, error) {
	for _, r := range f.records {
		if r.Phone == phone && r.Code == code && !r.Verified {
			return r, nil
		}
	}
	return nil, ErrNoMatch
}

func (f *fakeStore) MarkVerified(ctx context.Context, record *models.OTP) error {
	record.Verified = true
	return nil
}

type fakeUsers struct {
	phones map[string]bool
}

func (f *fakeUsers) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return f.phones[phone], nil
}

func newTestService(phones ...string) (*Service, *fakeStore) {
	users := &fakeUsers{phones: make(map[string]bool)}
	for _, p := range phones {
		users.phones[p] = true
	}
	store := &fakeStore{}
	return NewService(store, users), store
}

func TestRequestUnknownPhone(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Request(context.Background(), "+911234567890")
	assert.ErrorIs(t, err, ErrUnknownPhone)
}

func TestRequestIssuesSixDigitCode(t *testing.T) {
	svc, store := newTestService("+911234567890")

	code, err := svc.Request(context.Background(), "+911234567890")
	require.NoError(t, err)

	assert.Len(t, code, 6)
	require.Len(t, store.records, 1)
	assert.Equal(t, code, store.records[0].Code)
	assert.False(t, store.records[0].Verified)
}

func TestRequestInvalidatesPriorCodes(t *testing.T) {
	svc, store := newTestService("+911234567890")
	ctx := context.Background()

	first, err := svc.Request(ctx, "+911234567890")
	require.NoError(t, err)
	second, err := svc.Request(ctx, "+911234567890")
	require.NoError(t, err)

	require.Len(t, store.records, 1)

	ok, err := svc.Verify(ctx, "+911234567890", first)
	require.NoError(t, err)
	if first != second {
		assert.False(t, ok, "stale code must not verify")
	}

	ok, err = svc.Verify(ctx, "+911234567890", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyWrongCode(t *testing.T) {
	svc, _ := newTestService("+911234567890")
	ctx := context.Background()

	code, err := svc.Request(ctx, "+911234567890")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	ok, err := svc.Verify(ctx, "+911234567890", wrong)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifySucceedsExactlyOnce(t *testing.T) {
	svc, _ := newTestService("+911234567890")
	ctx := context.Background()

	code, err := svc.Request(ctx, "+911234567890")
	require.NoError(t, err)

	ok, err := svc.Verify(ctx, "+911234567890", code)
	require.NoError(t, err)
	assert.True(t, ok)

	// A verified code is invisible to the pending lookup.
	ok, err = svc.Verify(ctx, "+911234567890", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyExpiredCode(t *testing.T) {
	svc, _ := newTestService("+911234567890")
	ctx := context.Background()

	code, err := svc.Request(ctx, "+911234567890")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(TTL + time.Minute) }

	ok, err := svc.Verify(ctx, "+911234567890", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenerateCodeFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
