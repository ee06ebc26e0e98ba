package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/handlers"
	"github.com/stocklane/inventory_backend/internal/middleware"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) RecordPurchase(ctx context.Context, data dto.PurchaseData, userID string) (*domain.StockTransaction, *domain.RecordResult, error) {
	args := m.Called(ctx, data, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.StockTransaction), args.Get(1).(*domain.RecordResult), args.Error(2)
}
func (m *MockTransactionService) RecordSale(ctx context.Context, data dto.SalesData, userID string) (*domain.StockTransaction, *domain.RecordResult, error) {
	args := m.Called(ctx, data, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.StockTransaction), args.Get(1).(*domain.RecordResult), args.Error(2)
}
func (m *MockTransactionService) GetTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) (*domain.StockTransaction, error) {
	args := m.Called(ctx, kind, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockTransaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, kind domain.TransactionKind) ([]domain.StockTransaction, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockTransaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string) error {
	args := m.Called(ctx, kind, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type SalesHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	jwtSecret              string
}

func (suite *SalesHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "inventory-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SalesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockTransactionService = new(MockTransactionService)

	api := suite.router.Group("/api", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterSalesRoutes(api, suite.mockTransactionService)
}

func (suite *SalesHandlerTestSuite) postSale(body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *SalesHandlerTestSuite) TestRecordSale_Success() {
	txn := &domain.StockTransaction{
		TransactionID: uuid.NewString(),
		DocNumber:     "SAL-0000000000007",
		Kind:          domain.Sale,
		Counterparty:  "Acme Retail",
		Date:          "3/1/2026",
		Total:         decimal.NewFromInt(24),
		Lines: []domain.TransactionLine{
			{ItemID: uuid.NewString(), Name: "Widget", UnitPrice: decimal.NewFromInt(8), Quantity: 3},
		},
	}

	suite.mockTransactionService.On("RecordSale",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(d dto.SalesData) bool {
			return d.Customer == "Acme Retail" && len(d.Items) == 1
		}),
		mock.AnythingOfType("string"),
	).Return(txn, &domain.RecordResult{}, nil).Once()

	body := []byte(`{"salesData":{"customer":"Acme Retail","items":[{"itemId":"i-1","quantity":3,"sell_price":8}]}}`)
	w := suite.postSale(body)

	suite.Equal(http.StatusOK, w.Code)

	var got dto.SalesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("Sale recorded successfully", got.Message)
	suite.Equal("SAL-0000000000007", got.SalesNumber)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

// The 400 body for a rejected sale must name the item and nothing else; the
// wrapped sentinel stays server-side.
func (suite *SalesHandlerTestSuite) TestRecordSale_InsufficientStock_ExactBody() {
	suite.mockTransactionService.On("RecordSale",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("dto.SalesData"),
		mock.AnythingOfType("string"),
	).Return(nil, nil, apperrors.NewAppError(400, "Insufficient stock for Widget", apperrors.ErrInsufficientStock)).Once()

	body := []byte(`{"salesData":{"customer":"Acme Retail","items":[{"itemId":"i-1","quantity":10,"sell_price":8}]}}`)
	w := suite.postSale(body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Insufficient stock for Widget"}`, w.Body.String())
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *SalesHandlerTestSuite) TestRecordSale_ValidationMessageOnly() {
	suite.mockTransactionService.On("RecordSale",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("dto.SalesData"),
		mock.AnythingOfType("string"),
	).Return(nil, nil, apperrors.NewAppError(400, "line item quantity must be positive", apperrors.ErrValidation)).Once()

	body := []byte(`{"salesData":{"customer":"Acme Retail","items":[{"itemId":"i-1","quantity":2,"sell_price":8}]}}`)
	w := suite.postSale(body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"line item quantity must be positive"}`, w.Body.String())
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func TestSalesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SalesHandlerTestSuite))
}
