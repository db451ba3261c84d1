package models

import (
	"time"
)

// S3Account holds one user's S3 credentials. The secret never leaves the
// server: it is omitted from every JSON response.
type S3Account struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	AccessKeyID     string    `json:"access_key_id"`
	SecretAccessKey string    `json:"-"`
	Region          string    `json:"region"`
	Endpoint        string    `json:"endpoint,omitempty"`
	DefaultBucket   string    `json:"default_bucket,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
