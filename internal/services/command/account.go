package command

import (
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/infrastructure"
)

func EnsureUser(userID string) error {
	return infrastructure.Get().EnsureUser(userID)
}

func SaveAccount(a models.S3Account) error {
	return infrastructure.Get().SaveAccount(a)
}

func DeleteAccount(accountID, userID string) bool {
	return infrastructure.Get().DeleteAccount(accountID, userID)
}

func DeleteAllAccountsForUser(userID string) int {
	return infrastructure.Get().DeleteAllAccountsForUser(userID)
}
