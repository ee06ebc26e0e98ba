package dto

import (
	"time"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// LoginHistoryEntryResponse is one login record on the wire.
type LoginHistoryEntryResponse struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"loginTime"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
}

// ToLoginHistoryResponse converts domain entries to their wire form.
func ToLoginHistoryResponse(entries []domain.LoginHistoryEntry) []LoginHistoryEntryResponse {
	out := make([]LoginHistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LoginHistoryEntryResponse{
			Username:  e.Username,
			LoginTime: e.LoginTime,
			IP:        e.IP,
			UserAgent: e.UserAgent,
		}
	}
	return out
}
