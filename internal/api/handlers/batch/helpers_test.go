package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestKey(t *testing.T) {
	tests := []struct {
		name       string
		destPrefix string
		srcKey     string
		want       string
	}{
		{"no prefix", "", "docs/report.pdf", "report.pdf"},
		{"with prefix", "archive", "docs/report.pdf", "archive/report.pdf"},
		{"trailing slash prefix", "archive/", "report.pdf", "archive/report.pdf"},
		{"nested prefix", "a/b", "c/d/e.txt", "a/b/e.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, destKey(tt.destPrefix, tt.srcKey))
		})
	}
}
