package mapping

import (
	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:        d.UserID,
		Username:      d.Username,
		PasswordHash:  d.PasswordHash,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainLoginHistoryEntry converts a model LoginHistoryEntry to its domain form
func ToDomainLoginHistoryEntry(m models.LoginHistoryEntry) domain.LoginHistoryEntry {
	return domain.LoginHistoryEntry{
		EntryID:   m.EntryID,
		Username:  m.Username,
		LoginTime: m.LoginTime,
		IP:        m.IP,
		UserAgent: m.UserAgent,
	}
}

// ToDomainLoginHistorySlice converts a slice of model entries to domain entries
func ToDomainLoginHistorySlice(ms []models.LoginHistoryEntry) []domain.LoginHistoryEntry {
	ds := make([]domain.LoginHistoryEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoginHistoryEntry(m)
	}
	return ds
}
