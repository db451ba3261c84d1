package models

import "time"

type UserSettings struct {
	UserID               string    `json:"user_id"`
	Theme                string    `json:"theme"`
	DefaultExpiryHours   int       `json:"default_expiry_hours"`
	DefaultAllowDownload bool      `json:"default_allow_download"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultSettings is what a user sees before ever saving anything.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:               userID,
		Theme:                "system",
		DefaultExpiryHours:   0, // 0 = links never expire by default
		DefaultAllowDownload: true,
	}
}
