package query

import (
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/infrastructure"
)

func GetShareForUser(shareID, userID string) (models.SharedFile, bool) {
	return infrastructure.Get().GetShareForUser(shareID, userID)
}

func GetShareByToken(token string) (models.SharedFile, bool) {
	return infrastructure.Get().GetShareByToken(token)
}

func GetUserShares(userID string) ([]models.SharedFile, error) {
	return infrastructure.Get().GetUserShares(userID)
}

func GetAccessLogs(fileID string) ([]models.FileAccessLog, error) {
	return infrastructure.Get().GetAccessLogs(fileID)
}
