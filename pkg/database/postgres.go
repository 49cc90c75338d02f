package database

import (
	"context"
	"database/sql"
	"fmt"

	"practice-service/config"

	_ "github.com/lib/pq"
)

// Client wraps the history database. Both drivers share the schema and the
// $N placeholder syntax.
type Client struct {
	db     *sql.DB
	driver string
}

func NewPostgresClient(cfg *config.DBConfig) (*Client, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{
		db:     db,
		driver: "postgres",
	}, nil
}

// Open connects using the configured history driver.
func Open(cfg *config.HistoryConfig) (*Client, error) {
	switch cfg.Driver {
	case "postgres":
		return NewPostgresClient(&cfg.DB)
	case "sqlite":
		return NewSQLiteClient(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported history driver %q", cfg.Driver)
	}
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *Client) GetDB() *sql.DB {
	return c.db
}

func (c *Client) Driver() string {
	return c.driver
}

func (c *Client) InitSchema(ctx context.Context) error {
	createQuizAttemptsTable := `
		CREATE TABLE IF NOT EXISTS quiz_attempts (
			id VARCHAR(255) PRIMARY KEY,
			session_id VARCHAR(255) NOT NULL,
			subject VARCHAR(50) NOT NULL,
			year VARCHAR(10) NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
			completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_quiz_attempts_session_id ON quiz_attempts(session_id);
		CREATE INDEX IF NOT EXISTS idx_quiz_attempts_completed_at ON quiz_attempts(completed_at);
	`

	if _, err := c.db.ExecContext(ctx, createQuizAttemptsTable); err != nil {
		return fmt.Errorf("failed to create quiz_attempts table: %w", err)
	}

	return nil
}
