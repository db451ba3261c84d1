package command

import (
	"time"

	"github.com/google/uuid"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/infrastructure"
)

func SaveShare(s models.SharedFile) error {
	return infrastructure.Get().SaveShare(s)
}

func RevokeShare(shareID, userID string) bool {
	return infrastructure.Get().RevokeShare(shareID, userID)
}

func DeleteShare(shareID, userID string) bool {
	return infrastructure.Get().DeleteShare(shareID, userID)
}

func DeleteAllSharesForUser(userID string) int {
	return infrastructure.Get().DeleteAllSharesForUser(userID)
}

func IncrementAccessCount(shareID string) error {
	return infrastructure.Get().IncrementAccessCount(shareID)
}

// RecordAccess writes the audit row for one successful fetch.
func RecordAccess(fileID, ip, userAgent, referrer string, isDownload bool) error {
	return infrastructure.Get().InsertAccessLog(models.FileAccessLog{
		ID:         uuid.New().String(),
		FileID:     fileID,
		AccessedAt: time.Now(),
		IPAddress:  ip,
		UserAgent:  userAgent,
		Referrer:   referrer,
		IsDownload: isDownload,
	})
}
