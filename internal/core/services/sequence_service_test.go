package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/stocklane/inventory_backend/internal/core/domain"
	"github.com/stocklane/inventory_backend/internal/core/services"
)

func TestNextDocumentNumber_PadsToThirteenDigits(t *testing.T) {
	mockRepo := new(MockSequenceRepository)
	svc := services.NewSequenceService(mockRepo)

	mockRepo.On("NextValue", mock.Anything, domain.SeqPurchases).Return(int64(1), nil).Once()
	assert.Equal(t, "0000000000001", svc.NextDocumentNumber(context.Background(), domain.SeqPurchases))

	mockRepo.On("NextValue", mock.Anything, domain.SeqPurchases).Return(int64(42), nil).Once()
	assert.Equal(t, "0000000000042", svc.NextDocumentNumber(context.Background(), domain.SeqPurchases))

	mockRepo.AssertExpectations(t)
}

func TestNextDocumentNumber_StrictlyIncreasing(t *testing.T) {
	mockRepo := new(MockSequenceRepository)
	svc := services.NewSequenceService(mockRepo)

	for i := int64(1); i <= 3; i++ {
		mockRepo.On("NextValue", mock.Anything, domain.SeqSales).Return(i, nil).Once()
	}

	prev := ""
	for i := 0; i < 3; i++ {
		num := svc.NextDocumentNumber(context.Background(), domain.SeqSales)
		assert.Len(t, num, domain.SequenceWidth)
		assert.Greater(t, num, prev)
		prev = num
	}
}

func TestNextDocumentNumber_FallsBackOnCounterFailure(t *testing.T) {
	mockRepo := new(MockSequenceRepository)
	svc := services.NewSequenceService(mockRepo)

	mockRepo.On("NextValue", mock.Anything, domain.SeqPurchases).Return(int64(0), errors.New("connection refused"))

	num := svc.NextDocumentNumber(context.Background(), domain.SeqPurchases)
	assert.Len(t, num, domain.SequenceWidth)
	assert.Equal(t, "", strings.Trim(num, "0123456789"), "fallback number must be all digits")
}
