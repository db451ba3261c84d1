package query

import (
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/infrastructure"
)

func GetSettings(userID string) (models.UserSettings, bool) {
	return infrastructure.Get().GetSettings(userID)
}
