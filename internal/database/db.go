package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/kidfest/event-booking/internal/utils"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// InitSchema creates the application tables when they do not exist.
// addon_ids/masterclass_ids on bookings are JSON text columns: the id
// lists are only ever read back whole, never queried by membership, so
// a join table buys nothing at this scale.
func InitSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS programs (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS addons (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS masterclasses (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price_per_child BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			date VARCHAR(32) NOT NULL,
			event_type VARCHAR(255) NOT NULL,
			guest_count INT NOT NULL,
			phone VARCHAR(64) NOT NULL,
			child_name VARCHAR(255) NOT NULL,
			program_id BIGINT UNSIGNED NOT NULL,
			addon_ids TEXT NOT NULL,
			masterclass_ids TEXT NOT NULL,
			total_price BIGINT NOT NULL,
			completed TINYINT(1) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(190) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role ENUM('admin','user') NOT NULL DEFAULT 'user',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT UNSIGNED NOT NULL,
			token_hash CHAR(64) NOT NULL UNIQUE,
			expires_at DATETIME NOT NULL,
			revoked_at DATETIME NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_refresh_user (user_id)
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Default admin credentials seeded on an empty users table. Meant to
// be rotated immediately after first deploy.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Seed populates an empty database with the starter fixtures: one
// admin account when no admin exists, and the default catalog when
// the catalog tables are empty. Existing data is never touched, so
// calling Seed on every startup is safe.
func Seed(ctx context.Context, db *sql.DB, bcryptCost int) error {
	var admins int
	if err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE role='admin'").Scan(&admins); err != nil {
		return err
	}
	if admins == 0 {
		hash, err := utils.HashPassword(DefaultAdminPassword, bcryptCost)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx,
			"INSERT INTO users (username, password_hash, role) VALUES (?,?,?)",
			DefaultAdminUsername, hash, "admin"); err != nil {
			return err
		}
		log.Printf("seeded default admin user %q", DefaultAdminUsername)
	}

	if err := seedPriced(ctx, db, "programs", "price", [][2]any{
		{"Transformers", 8000},
		{"Lady Bug", 8000},
		{"Disney", 8000},
		{"Super Heroes", 8000},
	}); err != nil {
		return err
	}
	if err := seedPriced(ctx, db, "addons", "price", [][2]any{
		{"Soap Show", 2000},
		{"Magic Disco", 2000},
		{"Magician", 3000},
	}); err != nil {
		return err
	}
	return seedPriced(ctx, db, "masterclasses", "price_per_child", [][2]any{
		{"Young Confectioner", 350},
		{"Young Artist", 250},
		{"Slime Lab", 300},
	})
}

func seedPriced(ctx context.Context, db *sql.DB, table, priceCol string, rows [][2]any) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	q := fmt.Sprintf("INSERT INTO %s (name, %s) VALUES (?,?)", table, priceCol)
	for _, r := range rows {
		if _, err := db.ExecContext(ctx, q, r[0], r[1]); err != nil {
			return err
		}
	}
	log.Printf("seeded %d default rows into %s", len(rows), table)
	return nil
}
