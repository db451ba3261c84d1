package infrastructure

import (
	"database/sql"
	"errors"
	"log"

	"github.com/wickedfiles/wickedfiles/internal/models"
)

func (p *PostgresStorage) UpsertSettings(s models.UserSettings) error {
	query := `
	INSERT INTO user_settings (user_id, theme, default_expiry_hours, default_allow_download, updated_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (user_id) DO UPDATE SET
		theme = EXCLUDED.theme,
		default_expiry_hours = EXCLUDED.default_expiry_hours,
		default_allow_download = EXCLUDED.default_allow_download,
		updated_at = NOW()
	`
	_, err := p.Db.Exec(query,
		s.UserID,
		s.Theme,
		s.DefaultExpiryHours,
		s.DefaultAllowDownload,
	)
	return err
}

func (p *PostgresStorage) GetSettings(userID string) (models.UserSettings, bool) {
	var s models.UserSettings
	err := p.Db.QueryRow(`
	SELECT user_id, theme, default_expiry_hours, default_allow_download, updated_at
	FROM user_settings WHERE user_id = $1`, userID).Scan(
		&s.UserID,
		&s.Theme,
		&s.DefaultExpiryHours,
		&s.DefaultAllowDownload,
		&s.UpdatedAt,
	)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[DB] Error getting settings: %v", err)
		}
		return models.UserSettings{}, false
	}
	return s, true
}

func (p *PostgresStorage) DeleteSettingsForUser(userID string) {
	if _, err := p.Db.Exec(`DELETE FROM user_settings WHERE user_id = $1`, userID); err != nil {
		log.Printf("[DB] Failed to delete settings for user %s: %v", userID, err)
	}
}
