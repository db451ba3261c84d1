package infrastructure

import (
	"database/sql"
	"errors"
	"log"

	"github.com/wickedfiles/wickedfiles/internal/models"
)

// EnsureUser creates the user row on first contact. OIDC is the source of
// truth for identity, so the row is just an anchor for foreign keys.
func (p *PostgresStorage) EnsureUser(userID string) error {
	_, err := p.Db.Exec(
		`INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`,
		userID,
	)
	return err
}

func (p *PostgresStorage) SaveAccount(a models.S3Account) error {
	query := `
	INSERT INTO s3_accounts (id, user_id, name, access_key_id, secret_access_key, region, endpoint, default_bucket, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		access_key_id = EXCLUDED.access_key_id,
		secret_access_key = EXCLUDED.secret_access_key,
		region = EXCLUDED.region,
		endpoint = EXCLUDED.endpoint,
		default_bucket = EXCLUDED.default_bucket
	`

	_, err := p.Db.Exec(query,
		a.ID,
		a.UserID,
		a.Name,
		a.AccessKeyID,
		a.SecretAccessKey,
		a.Region,
		a.Endpoint,
		a.DefaultBucket,
		a.CreatedAt,
	)
	return err
}

const accountColumns = `id, user_id, name, access_key_id, secret_access_key, region, endpoint, default_bucket, created_at`

func scanAccount(row *sql.Row) (models.S3Account, bool) {
	var a models.S3Account
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.AccessKeyID,
		&a.SecretAccessKey,
		&a.Region,
		&a.Endpoint,
		&a.DefaultBucket,
		&a.CreatedAt,
	)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("[DB] Error getting account: %v", err)
		}
		return models.S3Account{}, false
	}
	return a, true
}

func (p *PostgresStorage) GetAccount(accountID string) (models.S3Account, bool) {
	row := p.Db.QueryRow(
		`SELECT `+accountColumns+` FROM s3_accounts WHERE id = $1`, accountID)
	return scanAccount(row)
}

func (p *PostgresStorage) GetAccountForUser(accountID, userID string) (models.S3Account, bool) {
	row := p.Db.QueryRow(
		`SELECT `+accountColumns+` FROM s3_accounts WHERE id = $1 AND user_id = $2`,
		accountID, userID)
	return scanAccount(row)
}

func (p *PostgresStorage) GetUserAccounts(userID string) ([]models.S3Account, error) {
	rows, err := p.Db.Query(
		`SELECT `+accountColumns+` FROM s3_accounts WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if cerr := rows.Close(); cerr != nil {
			log.Printf("[DB] Error closing rows: %v", cerr)
		}
	}(rows)

	var accounts []models.S3Account
	for rows.Next() {
		var a models.S3Account
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Name,
			&a.AccessKeyID,
			&a.SecretAccessKey,
			&a.Region,
			&a.Endpoint,
			&a.DefaultBucket,
			&a.CreatedAt,
		); err != nil {
			log.Printf("[DB] Error scanning account row: %v", err)
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (p *PostgresStorage) DeleteAccount(accountID, userID string) bool {
	result, err := p.Db.Exec(
		`DELETE FROM s3_accounts WHERE id = $1 AND user_id = $2`, accountID, userID)
	if err != nil {
		log.Printf("[DB] Error deleting account: %v", err)
		return false
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0
}

func (p *PostgresStorage) DeleteAllAccountsForUser(userID string) int {
	res, err := p.Db.Exec(`DELETE FROM s3_accounts WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("[DB] Failed to delete accounts for user %s: %v", userID, err)
		return 0
	}
	count, _ := res.RowsAffected()
	return int(count)
}
