package infrastructure

import (
	"database/sql"
	"errors"
	"log"

	"github.com/wickedfiles/wickedfiles/internal/models"
)

const shareColumns = `id, user_id, account_id, bucket, path, filename, filesize, content_type,
	share_token, expires_at, allow_download, is_expired, is_public, password_hash, access_count, created_at`

func (p *PostgresStorage) SaveShare(s models.SharedFile) error {
	query := `
	INSERT INTO shared_files (id, user_id, account_id, bucket, path, filename, filesize, content_type,
		share_token, expires_at, allow_download, is_expired, is_public, password_hash, access_count, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := p.Db.Exec(query,
		s.ID,
		s.UserID,
		s.AccountID,
		s.Bucket,
		s.Path,
		s.Filename,
		s.Filesize,
		s.ContentType,
		s.ShareToken,
		s.ExpiresAt,
		s.AllowDownload,
		s.IsExpired,
		s.IsPublic,
		s.PasswordHash,
		s.AccessCount,
		s.CreatedAt,
	)
	return err
}

func scanShare(row *sql.Row) (models.SharedFile, bool) {
	var s models.SharedFile
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.AccountID,
		&s.Bucket,
		&s.Path,
		&s.Filename,
		&s.Filesize,
		&s.ContentType,
		&s.ShareToken,
		&s.ExpiresAt,
		&s.AllowDownload,
		&s.IsExpired,
		&s.IsPublic,
		&s.PasswordHash,
		&s.AccessCount,
		&s.CreatedAt,
	)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[DB] Error getting share: %v", err)
		}
		return models.SharedFile{}, false
	}
	return s, true
}

func (p *PostgresStorage) GetShare(shareID string) (models.SharedFile, bool) {
	row := p.Db.QueryRow(
		`SELECT `+shareColumns+` FROM shared_files WHERE id = $1`, shareID)
	return scanShare(row)
}

func (p *PostgresStorage) GetShareForUser(shareID, userID string) (models.SharedFile, bool) {
	row := p.Db.QueryRow(
		`SELECT `+shareColumns+` FROM shared_files WHERE id = $1 AND user_id = $2`,
		shareID, userID)
	return scanShare(row)
}

func (p *PostgresStorage) GetShareByToken(token string) (models.SharedFile, bool) {
	row := p.Db.QueryRow(
		`SELECT `+shareColumns+` FROM shared_files WHERE share_token = $1`, token)
	return scanShare(row)
}

func (p *PostgresStorage) GetUserShares(userID string) ([]models.SharedFile, error) {
	rows, err := p.Db.Query(
		`SELECT `+shareColumns+` FROM shared_files WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if cerr := rows.Close(); cerr != nil {
			log.Printf("[DB] Error closing rows: %v", cerr)
		}
	}(rows)

	var shares []models.SharedFile
	for rows.Next() {
		var s models.SharedFile
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.AccountID,
			&s.Bucket,
			&s.Path,
			&s.Filename,
			&s.Filesize,
			&s.ContentType,
			&s.ShareToken,
			&s.ExpiresAt,
			&s.AllowDownload,
			&s.IsExpired,
			&s.IsPublic,
			&s.PasswordHash,
			&s.AccessCount,
			&s.CreatedAt,
		); err != nil {
			log.Printf("[DB] Error scanning share row: %v", err)
			continue
		}
		shares = append(shares, s)
	}
	return shares, rows.Err()
}

// RevokeShare flips the manual-expiry flag. The row survives so the owner
// still sees the link and its audit trail.
func (p *PostgresStorage) RevokeShare(shareID, userID string) bool {
	result, err := p.Db.Exec(
		`UPDATE shared_files SET is_expired = true WHERE id = $1 AND user_id = $2`,
		shareID, userID)
	if err != nil {
		log.Printf("[DB] Error revoking share: %v", err)
		return false
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0
}

// DeleteShare removes the share row; access-log rows cascade with it.
func (p *PostgresStorage) DeleteShare(shareID, userID string) bool {
	result, err := p.Db.Exec(
		`DELETE FROM shared_files WHERE id = $1 AND user_id = $2`, shareID, userID)
	if err != nil {
		log.Printf("[DB] Error deleting share: %v", err)
		return false
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0
}

func (p *PostgresStorage) DeleteAllSharesForUser(userID string) int {
	res, err := p.Db.Exec(`DELETE FROM shared_files WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("[DB] Failed to delete shares for user %s: %v", userID, err)
		return 0
	}
	count, _ := res.RowsAffected()
	return int(count)
}

// IncrementAccessCount bumps the counter in place so concurrent fetches
// never lose an increment.
func (p *PostgresStorage) IncrementAccessCount(shareID string) error {
	_, err := p.Db.Exec(
		`UPDATE shared_files SET access_count = access_count + 1 WHERE id = $1`, shareID)
	return err
}

func (p *PostgresStorage) InsertAccessLog(l models.FileAccessLog) error {
	query := `
	INSERT INTO file_access_logs (id, file_id, accessed_at, ip_address, user_agent, referrer, is_download)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := p.Db.Exec(query,
		l.ID,
		l.FileID,
		l.AccessedAt,
		l.IPAddress,
		l.UserAgent,
		l.Referrer,
		l.IsDownload,
	)
	return err
}

func (p *PostgresStorage) GetAccessLogs(fileID string) ([]models.FileAccessLog, error) {
	rows, err := p.Db.Query(`
	SELECT id, file_id, accessed_at, ip_address, user_agent, referrer, is_download
	FROM file_access_logs WHERE file_id = $1 ORDER BY accessed_at DESC`, fileID)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if cerr := rows.Close(); cerr != nil {
			log.Printf("[DB] Error closing rows: %v", cerr)
		}
	}(rows)

	var logs []models.FileAccessLog
	for rows.Next() {
		var l models.FileAccessLog
		if err := rows.Scan(
			&l.ID,
			&l.FileID,
			&l.AccessedAt,
			&l.IPAddress,
			&l.UserAgent,
			&l.Referrer,
			&l.IsDownload,
		); err != nil {
			log.Printf("[DB] Error scanning access log row: %v", err)
			continue
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
