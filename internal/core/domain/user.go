package domain

import "time"

// User is an account holder. Passwords are stored only as bcrypt hashes.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
}

// LoginHistoryEntry is an append-only record of a successful login.
// The history is visible to every authenticated user, not just the owner.
type LoginHistoryEntry struct {
	EntryID   string    `json:"entryID"`
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
}
