package query

import (
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/infrastructure"
)

// GetAccount looks up an account without an ownership check. Internal
// consumers only (event handlers); HTTP handlers go through
// GetAccountForUser.
func GetAccount(accountID string) (models.S3Account, bool) {
	return infrastructure.Get().GetAccount(accountID)
}

func GetAccountForUser(accountID, userID string) (models.S3Account, bool) {
	return infrastructure.Get().GetAccountForUser(accountID, userID)
}

func GetUserAccounts(userID string) ([]models.S3Account, error) {
	return infrastructure.Get().GetUserAccounts(userID)
}
