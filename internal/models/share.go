package models

import (
	"time"
)

// SharedFile is a token-addressed pointer at an (account, bucket, path)
// triple. The token is immutable once issued; access_count only grows.
type SharedFile struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	AccountID     string     `json:"account_id"`
	Bucket        string     `json:"bucket"`
	Path          string     `json:"path"`
	Filename      string     `json:"filename"`
	Filesize      int64      `json:"filesize"`
	ContentType   string     `json:"content_type"`
	ShareToken    string     `json:"share_token"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	AllowDownload bool       `json:"allow_download"`
	IsExpired     bool       `json:"is_expired"`
	IsPublic      bool       `json:"is_public"`
	PasswordHash  *string    `json:"-"`
	AccessCount   int64      `json:"access_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HasPassword reports whether the share is password protected.
func (s *SharedFile) HasPassword() bool {
	return s.PasswordHash != nil && *s.PasswordHash != ""
}

// TimeExpired reports whether the share's deadline has passed. A nil
// deadline never expires.
func (s *SharedFile) TimeExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return !s.ExpiresAt.After(now)
}

// Live reports whether the link grants access: not revoked and not past
// its deadline.
func (s *SharedFile) Live(now time.Time) bool {
	return !s.IsExpired && !s.TimeExpired(now)
}

// FileAccessLog is one append-only audit row per successful fetch of a
// live share.
type FileAccessLog struct {
	ID         string    `json:"id"`
	FileID     string    `json:"file_id"`
	AccessedAt time.Time `json:"accessed_at"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	Referrer   string    `json:"referrer"`
	IsDownload bool      `json:"is_download"`
}
