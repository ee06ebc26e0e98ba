package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/core/services"
	"github.com/stocklane/inventory_backend/internal/dto"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockItemRepo *MockItemRepository
	cache        *fakeSearchCache
	service      portssvc.InventorySvcFacade
	userID       string
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.cache = newFakeSearchCache()
	suite.service = services.NewInventoryService(suite.mockItemRepo, suite.cache)
	suite.userID = "user-1"
}

func (suite *InventoryServiceTestSuite) TestAddItem_SetsIdentityAndAudit() {
	var saved domain.StockItem
	suite.mockItemRepo.On("SaveItem", mock.Anything, mock.MatchedBy(func(item domain.StockItem) bool {
		saved = item
		return item.ItemID != ""
	})).Return(nil).Once()

	req := dto.StockItemPayload{
		RefCode:   "WID-001",
		Name:      "Widget",
		Category:  "Hardware",
		QtyOnHand: 5,
		BuyPrice:  decimal.NewFromInt(10),
		SellPrice: decimal.NewFromInt(15),
	}

	item, err := suite.service.AddItem(context.Background(), req, suite.userID)
	suite.Require().NoError(err)

	suite.NotEmpty(item.ItemID)
	suite.Equal("WID-001", saved.RefCode)
	suite.Equal(suite.userID, saved.CreatedBy)
	suite.False(saved.CreatedAt.IsZero())
	suite.Equal(1, suite.cache.invalidated)
}

func (suite *InventoryServiceTestSuite) TestAddItem_RejectsNegativePrices() {
	req := dto.StockItemPayload{
		RefCode:   "WID-001",
		Name:      "Widget",
		QtyOnHand: 5,
		BuyPrice:  decimal.RequireFromString("-2.5"),
		SellPrice: decimal.RequireFromString("-5"),
	}

	item, err := suite.service.AddItem(context.Background(), req, suite.userID)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem")
	suite.Equal(0, suite.cache.invalidated)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_RejectsNegativePrices() {
	req := dto.StockItemPayload{
		RefCode:   "WID-001",
		Name:      "Widget",
		SellPrice: decimal.RequireFromString("-0.01"),
	}

	item, err := suite.service.UpdateItem(context.Background(), "item-1", req, suite.userID)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "FindItemByID")
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem")
}

func (suite *InventoryServiceTestSuite) TestSearchItems_ExtendsDateToToEndOfDay() {
	var gotFilter domain.ItemSearchFilter
	suite.mockItemRepo.On("SearchItems", mock.Anything, mock.MatchedBy(func(f domain.ItemSearchFilter) bool {
		gotFilter = f
		return true
	})).Return([]domain.StockItem{}, nil).Once()

	params := dto.SearchItemsParams{Search: "widget", DateFrom: "2025-03-01", DateTo: "2025-03-31"}
	_, err := suite.service.SearchItems(context.Background(), params)
	suite.Require().NoError(err)

	suite.Require().NotNil(gotFilter.CreatedFrom)
	suite.Require().NotNil(gotFilter.CreatedTo)
	suite.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *gotFilter.CreatedFrom)
	// Inclusive upper bound: the whole last day is in range.
	suite.Equal(31, gotFilter.CreatedTo.Day())
	suite.Equal(23, gotFilter.CreatedTo.Hour())
}

func (suite *InventoryServiceTestSuite) TestSearchItems_RejectsMalformedDates() {
	_, err := suite.service.SearchItems(context.Background(), dto.SearchItemsParams{DateFrom: "03/01/2025"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SearchItems", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestSearchItems_ServesRepeatedSearchFromCache() {
	items := []domain.StockItem{{ItemID: "item-1", RefCode: "WID-001", Name: "Widget"}}
	suite.mockItemRepo.On("SearchItems", mock.Anything, mock.Anything).Return(items, nil).Once()

	params := dto.SearchItemsParams{Search: "widget"}

	first, err := suite.service.SearchItems(context.Background(), params)
	suite.Require().NoError(err)
	second, err := suite.service.SearchItems(context.Background(), params)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockItemRepo.AssertNumberOfCalls(suite.T(), "SearchItems", 1)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_PreservesCreationAudit() {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	existing := &domain.StockItem{
		ItemID:  "item-1",
		RefCode: "WID-001",
		Name:    "Widget",
		AuditFields: domain.AuditFields{
			CreatedAt: created,
			CreatedBy: "user-0",
		},
	}
	suite.mockItemRepo.On("FindItemByID", mock.Anything, "item-1").Return(existing, nil).Once()

	var updated domain.StockItem
	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(item domain.StockItem) bool {
		updated = item
		return true
	})).Return(nil).Once()

	req := dto.StockItemPayload{RefCode: "WID-002", Name: "Widget v2", QtyOnHand: 9}
	_, err := suite.service.UpdateItem(context.Background(), "item-1", req, suite.userID)
	suite.Require().NoError(err)

	suite.Equal("WID-002", updated.RefCode)
	suite.Equal(int64(9), updated.QtyOnHand)
	suite.Equal(created, updated.CreatedAt)
	suite.Equal("user-0", updated.CreatedBy)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_NotFound() {
	suite.mockItemRepo.On("FindItemByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateItem(context.Background(), "missing", dto.StockItemPayload{RefCode: "X", Name: "X"}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestDeleteItem_InvalidatesCache() {
	suite.mockItemRepo.On("DeleteItem", mock.Anything, "item-1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteItem(context.Background(), "item-1"))
	suite.Equal(1, suite.cache.invalidated)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
