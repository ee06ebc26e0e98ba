package models

import "time"

// User mirrors the users table.
type User struct {
	UserID       string    `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// LoginHistoryEntry mirrors the login_history table.
type LoginHistoryEntry struct {
	EntryID   string    `db:"entry_id"`
	Username  string    `db:"username"`
	LoginTime time.Time `db:"login_time"`
	IP        string    `db:"ip"`
	UserAgent string    `db:"user_agent"`
}
