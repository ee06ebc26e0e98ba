package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/stocklane/inventory_backend/internal/core/ports/repositories"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/middleware"
)

// sequenceService mints zero-padded document numbers from persisted counters.
type sequenceService struct {
	sequenceRepo portsrepo.SequenceRepository
}

// NewSequenceService creates a new SequenceService.
func NewSequenceService(sequenceRepo portsrepo.SequenceRepository) portssvc.SequenceSvcFacade {
	return &sequenceService{sequenceRepo: sequenceRepo}
}

var _ portssvc.SequenceSvcFacade = (*sequenceService)(nil)

// NextDocumentNumber returns the next 13-digit value for the category. When
// the counter store is unreachable it falls back to a wall-clock-derived
// value; numbering stays usable but loses the no-reuse guarantee, so the
// fallback is logged loudly.
func (s *sequenceService) NextDocumentNumber(ctx context.Context, category string) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	value, err := s.sequenceRepo.NextValue(ctx, category)
	if err != nil {
		logger.Error("sequence counter unavailable, falling back to wall-clock numbering",
			slog.String("category", category),
			slog.String("error", err.Error()))
		millis := fmt.Sprintf("%d", time.Now().UnixMilli())
		if len(millis) > domain.SequenceWidth {
			millis = millis[len(millis)-domain.SequenceWidth:]
		}
		return fmt.Sprintf("%0*s", domain.SequenceWidth, millis)
	}

	return fmt.Sprintf("%0*d", domain.SequenceWidth, value)
}
