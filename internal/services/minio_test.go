package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wickedfiles/wickedfiles/internal/models"
)

func TestEndpointFor(t *testing.T) {
	tests := []struct {
		name       string
		account    models.S3Account
		wantHost   string
		wantSecure bool
	}{
		{
			name:       "aws from region",
			account:    models.S3Account{Region: "eu-west-1"},
			wantHost:   "s3.eu-west-1.amazonaws.com",
			wantSecure: true,
		},
		{
			name:       "custom https endpoint",
			account:    models.S3Account{Endpoint: "https://minio.example.com/"},
			wantHost:   "minio.example.com",
			wantSecure: true,
		},
		{
			name:       "custom http endpoint",
			account:    models.S3Account{Endpoint: "http://localhost:9000"},
			wantHost:   "localhost:9000",
			wantSecure: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure := endpointFor(tt.account)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}

func TestDirectURL(t *testing.T) {
	aws := models.S3Account{Region: "us-east-1"}
	assert.Equal(t,
		"https://mybucket.s3.us-east-1.amazonaws.com/docs/report.pdf",
		DirectURL(aws, "mybucket", "docs/report.pdf"))

	custom := models.S3Account{Endpoint: "http://localhost:9000"}
	assert.Equal(t,
		"http://localhost:9000/mybucket/a%20b.txt",
		DirectURL(custom, "mybucket", "a b.txt"))
}

func TestGetContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", GetContentType(".jpg"))
	assert.Equal(t, "application/pdf", GetContentType(".pdf"))
	assert.Equal(t, "application/octet-stream", GetContentType(".xyz"))
}
