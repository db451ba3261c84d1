// Package share decides whether a share token grants access. The
// decision is pure: side effects (counter, audit row, event) belong to
// the caller and are only legal on the Live outcome.
package share

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type State int

const (
	StateNotFound State = iota
	StateRevoked
	StateExpired
	StatePasswordRequired
	StateLive
)

func (s State) String() string {
	switch s {
	case StateNotFound:
		return "not_found"
	case StateRevoked:
		return "revoked"
	case StateExpired:
		return "expired"
	case StatePasswordRequired:
		return "password_required"
	case StateLive:
		return "live"
	}
	return "unknown"
}

// Resolve evaluates the access checks in precedence order: missing
// record, manual revocation, time expiry, password gate, live. The order
// matters — a revoked link must never report password_required, and a
// correct password must never resurrect an expired link.
func Resolve(rec *models.SharedFile, suppliedPassword string, now time.Time) State {
	if rec == nil {
		return StateNotFound
	}
	if rec.IsExpired {
		return StateRevoked
	}
	if rec.TimeExpired(now) {
		return StateExpired
	}
	if rec.HasPassword() {
		if suppliedPassword == "" {
			return StatePasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(*rec.PasswordHash), []byte(suppliedPassword)) != nil {
			return StatePasswordRequired
		}
	}
	return StateLive
}

// HashPassword hashes a share password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NewToken mints the public identifier embedded in share URLs.
func NewToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// DefaultDeliveryExpiry caps how long a minted delivery URL stays valid.
const DefaultDeliveryExpiry = time.Hour

// DeliveryExpiry returns how long the presigned URL may live: the
// default, shortened to the share's remaining lifetime when that is
// sooner. Callers only invoke this on live records, so the remaining
// lifetime is positive.
func DeliveryExpiry(rec *models.SharedFile, now time.Time) time.Duration {
	if rec.ExpiresAt == nil {
		return DefaultDeliveryExpiry
	}
	remaining := rec.ExpiresAt.Sub(now)
	if remaining < DefaultDeliveryExpiry {
		return remaining
	}
	return DefaultDeliveryExpiry
}
