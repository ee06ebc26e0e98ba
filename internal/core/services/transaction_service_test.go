package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/core/services"
	"github.com/stocklane/inventory_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	mockSeqRepo *MockSequenceRepository
	cache       *fakeSearchCache
	service     portssvc.TransactionSvcFacade
	userID      string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockSeqRepo = new(MockSequenceRepository)
	suite.cache = newFakeSearchCache()
	sequenceSvc := services.NewSequenceService(suite.mockSeqRepo)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, sequenceSvc, suite.cache)
	suite.userID = "user-1"
}

func (suite *TransactionServiceTestSuite) TestRecordPurchase_MintsPrefixedNumberAndSnapshotsLines() {
	suite.mockSeqRepo.On("NextValue", mock.Anything, domain.SeqPurchases).Return(int64(7), nil).Once()

	var recorded domain.StockTransaction
	suite.mockTxnRepo.On("RecordTransaction", mock.Anything, mock.MatchedBy(func(txn domain.StockTransaction) bool {
		recorded = txn
		return txn.Kind == domain.Purchase
	})).Return(&domain.RecordResult{DocNumber: "PUR-0000000000007"}, nil).Once()

	data := dto.PurchaseData{
		Supplier: "Acme Supplies",
		Date:     "2025-03-01",
		Items: []dto.LineItem{
			{ItemID: "item-1", Name: "Widget", Quantity: 3, BuyPrice: decimal.NewFromInt(10)},
			{ItemID: "item-2", Name: "Gadget", Quantity: 2, BuyPrice: decimal.NewFromInt(5)},
		},
	}

	txn, result, err := suite.service.RecordPurchase(context.Background(), data, suite.userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Require().NotNil(result)

	suite.Equal("PUR-0000000000007", txn.DocNumber)
	suite.Equal("Acme Supplies", recorded.Counterparty)
	suite.Require().Len(recorded.Lines, 2)
	suite.Equal("Widget", recorded.Lines[0].Name)
	suite.True(recorded.Lines[0].UnitPrice.Equal(decimal.NewFromInt(10)))
	suite.Equal(int64(3), recorded.Lines[0].Quantity)
	// Total is computed from the lines when the client omits it.
	suite.True(recorded.Total.Equal(decimal.NewFromInt(40)))
	suite.Equal(1, suite.cache.invalidated, "recording must invalidate the search cache")
}

func (suite *TransactionServiceTestSuite) TestRecordSale_UsesSellPriceAndSalPrefix() {
	suite.mockSeqRepo.On("NextValue", mock.Anything, domain.SeqSales).Return(int64(15), nil).Once()

	var recorded domain.StockTransaction
	suite.mockTxnRepo.On("RecordTransaction", mock.Anything, mock.MatchedBy(func(txn domain.StockTransaction) bool {
		recorded = txn
		return txn.Kind == domain.Sale
	})).Return(&domain.RecordResult{DocNumber: "SAL-0000000000015"}, nil).Once()

	data := dto.SalesData{
		Customer: "Jane",
		Items: []dto.LineItem{
			{ItemID: "item-1", Name: "Widget", Quantity: 2, SellPrice: decimal.NewFromInt(25)},
		},
	}

	txn, _, err := suite.service.RecordSale(context.Background(), data, suite.userID)
	suite.Require().NoError(err)

	suite.Equal("SAL-0000000000015", txn.DocNumber)
	suite.True(recorded.Lines[0].UnitPrice.Equal(decimal.NewFromInt(25)))
	suite.True(recorded.Total.Equal(decimal.NewFromInt(50)))
}

func (suite *TransactionServiceTestSuite) TestRecordSale_PropagatesInsufficientStock() {
	suite.mockSeqRepo.On("NextValue", mock.Anything, domain.SeqSales).Return(int64(16), nil).Once()
	suite.mockTxnRepo.On("RecordTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(400, "Insufficient stock for Widget", apperrors.ErrInsufficientStock)).Once()

	data := dto.SalesData{
		Customer: "Jane",
		Items: []dto.LineItem{
			{ItemID: "item-1", Name: "Widget", Quantity: 10, SellPrice: decimal.NewFromInt(25)},
		},
	}

	txn, result, err := suite.service.RecordSale(context.Background(), data, suite.userID)
	suite.Require().Error(err)
	suite.Nil(txn)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.ErrorContains(err, "Insufficient stock for Widget")
	suite.Equal(0, suite.cache.invalidated, "a rejected sale must not touch the cache")
}

func (suite *TransactionServiceTestSuite) TestRecordPurchase_RejectsEmptyAndNonPositiveLines() {
	_, _, err := suite.service.RecordPurchase(context.Background(), dto.PurchaseData{Supplier: "Acme"}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	data := dto.PurchaseData{
		Supplier: "Acme",
		Items:    []dto.LineItem{{ItemID: "item-1", Name: "Widget", Quantity: 0}},
	}
	_, _, err = suite.service.RecordPurchase(context.Background(), data, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "RecordTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordPurchase_ReportsSkippedItems() {
	suite.mockSeqRepo.On("NextValue", mock.Anything, domain.SeqPurchases).Return(int64(8), nil).Once()
	suite.mockTxnRepo.On("RecordTransaction", mock.Anything, mock.Anything).
		Return(&domain.RecordResult{DocNumber: "PUR-0000000000008", SkippedItemIDs: []string{"ghost-item"}}, nil).Once()

	data := dto.PurchaseData{
		Supplier: "Acme",
		Items:    []dto.LineItem{{ItemID: "ghost-item", Name: "Phantom", Quantity: 1, BuyPrice: decimal.NewFromInt(1)}},
	}

	_, result, err := suite.service.RecordPurchase(context.Background(), data, suite.userID)
	suite.Require().NoError(err)
	suite.Equal([]string{"ghost-item"}, result.SkippedItemIDs)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NeverReturnsNil() {
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, domain.Purchase).Return([]domain.StockTransaction(nil), nil).Once()

	txns, err := suite.service.ListTransactions(context.Background(), domain.Purchase)
	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
