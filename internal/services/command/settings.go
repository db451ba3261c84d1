package command

import (
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/infrastructure"
)

func UpsertSettings(s models.UserSettings) error {
	return infrastructure.Get().UpsertSettings(s)
}

func DeleteSettingsForUser(userID string) {
	infrastructure.Get().DeleteSettingsForUser(userID)
}
