package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

type PostgresStorage struct {
	Db *sql.DB
}

var postgresInstance *PostgresStorage

// InitializePostgres connects the single storage instance used by the
// command/query layers.
func InitializePostgres(connectionString string) error {
	pg := &PostgresStorage{}
	if err := pg.Connect(connectionString); err != nil {
		return err
	}
	postgresInstance = pg
	return nil
}

func Get() *PostgresStorage {
	return postgresInstance
}

// Connect establishes connection to PostgreSQL
func (p *PostgresStorage) Connect(connectionString string) error {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %v", err)
	}

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %v", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	p.Db = db

	if err := p.createTables(); err != nil {
		return fmt.Errorf("failed to create tables: %v", err)
	}

	log.Println("Connected to PostgreSQL successfully")
	return nil
}

func (p *PostgresStorage) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(255) PRIMARY KEY,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS s3_accounts (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			access_key_id VARCHAR(255) NOT NULL,
			secret_access_key VARCHAR(255) NOT NULL,
			region VARCHAR(50) NOT NULL,
			endpoint VARCHAR(500) DEFAULT '',
			default_bucket VARCHAR(255) DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS shared_files (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			account_id UUID NOT NULL REFERENCES s3_accounts(id) ON DELETE CASCADE,
			bucket VARCHAR(255) NOT NULL,
			path VARCHAR(1024) NOT NULL,
			filename VARCHAR(255) NOT NULL,
			filesize BIGINT NOT NULL DEFAULT 0,
			content_type VARCHAR(255) NOT NULL DEFAULT 'application/octet-stream',
			share_token VARCHAR(64) NOT NULL UNIQUE,
			expires_at TIMESTAMPTZ,
			allow_download BOOLEAN NOT NULL DEFAULT true,
			is_expired BOOLEAN NOT NULL DEFAULT false,
			is_public BOOLEAN NOT NULL DEFAULT false,
			password_hash VARCHAR(255),
			access_count BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS file_access_logs (
			id UUID PRIMARY KEY,
			file_id UUID NOT NULL REFERENCES shared_files(id) ON DELETE CASCADE,
			accessed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			ip_address VARCHAR(64) DEFAULT '',
			user_agent VARCHAR(500) DEFAULT '',
			referrer VARCHAR(500) DEFAULT '',
			is_download BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS user_settings (
			user_id VARCHAR(255) PRIMARY KEY,
			theme VARCHAR(50) NOT NULL DEFAULT 'system',
			default_expiry_hours INT NOT NULL DEFAULT 0,
			default_allow_download BOOLEAN NOT NULL DEFAULT true,
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
	}

	for _, query := range queries {
		if _, err := p.Db.Exec(query); err != nil {
			return err
		}
	}

	// Indexes
	indexQuery := `
	CREATE INDEX IF NOT EXISTS idx_s3_accounts_user_id ON s3_accounts(user_id);
	CREATE INDEX IF NOT EXISTS idx_shared_files_user_id ON shared_files(user_id);
	CREATE INDEX IF NOT EXISTS idx_shared_files_token ON shared_files(share_token);
	CREATE INDEX IF NOT EXISTS idx_access_logs_file_id ON file_access_logs(file_id);
	CREATE INDEX IF NOT EXISTS idx_access_logs_accessed_at ON file_access_logs(accessed_at DESC);
	`

	_, err := p.Db.Exec(indexQuery)
	return err
}
