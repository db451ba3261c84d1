package share

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wickedfiles/wickedfiles/internal/models"
)

func mustHash(t *testing.T, pw string) *string {
	t.Helper()
	h, err := HashPassword(pw)
	require.NoError(t, err)
	return &h
}

func TestResolveStates(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		rec      *models.SharedFile
		password string
		want     State
	}{
		{
			name: "missing record",
			rec:  nil,
			want: StateNotFound,
		},
		{
			name: "live without protections",
			rec:  &models.SharedFile{},
			want: StateLive,
		},
		{
			name: "revoked beats future expiry",
			rec:  &models.SharedFile{IsExpired: true, ExpiresAt: &future},
			want: StateRevoked,
		},
		{
			name:     "revoked beats correct password",
			rec:      &models.SharedFile{IsExpired: true, PasswordHash: mustHash(t, "abc")},
			password: "abc",
			want:     StateRevoked,
		},
		{
			name:     "expired beats correct password",
			rec:      &models.SharedFile{ExpiresAt: &past, PasswordHash: mustHash(t, "abc")},
			password: "abc",
			want:     StateExpired,
		},
		{
			name: "expiry boundary is exclusive",
			rec:  &models.SharedFile{ExpiresAt: &now},
			want: StateExpired,
		},
		{
			name: "password missing",
			rec:  &models.SharedFile{PasswordHash: mustHash(t, "abc")},
			want: StatePasswordRequired,
		},
		{
			name:     "password wrong",
			rec:      &models.SharedFile{PasswordHash: mustHash(t, "abc")},
			password: "nope",
			want:     StatePasswordRequired,
		},
		{
			name:     "password correct",
			rec:      &models.SharedFile{PasswordHash: mustHash(t, "abc")},
			password: "abc",
			want:     StateLive,
		},
		{
			name:     "future expiry with correct password",
			rec:      &models.SharedFile{ExpiresAt: &future, PasswordHash: mustHash(t, "abc")},
			password: "abc",
			want:     StateLive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.rec, tt.password, now))
		})
	}
}

func TestResolveIsSideEffectFree(t *testing.T) {
	now := time.Now()
	rec := &models.SharedFile{PasswordHash: mustHash(t, "abc"), AccessCount: 7}

	// Probing with wrong or missing passwords must not touch the record.
	Resolve(rec, "", now)
	Resolve(rec, "wrong", now)

	assert.Equal(t, int64(7), rec.AccessCount)
}

func TestNewToken(t *testing.T) {
	a := NewToken()
	b := NewToken()

	assert.Len(t, a, 32)
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}

func TestDeliveryExpiry(t *testing.T) {
	now := time.Now()

	noDeadline := &models.SharedFile{}
	assert.Equal(t, DefaultDeliveryExpiry, DeliveryExpiry(noDeadline, now))

	farDeadline := now.Add(48 * time.Hour)
	assert.Equal(t, DefaultDeliveryExpiry,
		DeliveryExpiry(&models.SharedFile{ExpiresAt: &farDeadline}, now))

	soonDeadline := now.Add(10 * time.Minute)
	assert.Equal(t, 10*time.Minute,
		DeliveryExpiry(&models.SharedFile{ExpiresAt: &soonDeadline}, now))
}

func TestSharedFileLive(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	assert.True(t, (&models.SharedFile{}).Live(now))
	assert.True(t, (&models.SharedFile{ExpiresAt: &future}).Live(now))
	assert.False(t, (&models.SharedFile{ExpiresAt: &past}).Live(now))
	assert.False(t, (&models.SharedFile{IsExpired: true}).Live(now))
	assert.False(t, (&models.SharedFile{IsExpired: true, ExpiresAt: &future}).Live(now))
}
