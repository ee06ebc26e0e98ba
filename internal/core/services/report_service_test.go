package services_test

import (
	"context"
	"encoding/json"
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

type ReportServiceTestSuite struct {
	suite.Suite
	mockReferenceRepo *MockReferenceReportRepository
	mockStatementRepo *MockStatementRepository
	mockSeqRepo       *MockSequenceRepository
	service           portssvc.ReportSvcFacade
	userID            string
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockReferenceRepo = new(MockReferenceReportRepository)
	suite.mockStatementRepo = new(MockStatementRepository)
	suite.mockSeqRepo = new(MockSequenceRepository)
	sequenceSvc := services.NewSequenceService(suite.mockSeqRepo)
	suite.service = services.NewReportService(suite.mockReferenceRepo, suite.mockStatementRepo, sequenceSvc)
	suite.userID = "user-1"
}

func (suite *ReportServiceTestSuite) TestCreateReferenceReport_MintsRefNumber() {
	suite.mockSeqRepo.On("NextValue", mock.Anything, domain.SeqReferenceReports).Return(int64(3), nil).Once()

	var saved domain.ReferenceReport
	suite.mockReferenceRepo.On("SaveReport", mock.Anything, mock.MatchedBy(func(r domain.ReferenceReport) bool {
		saved = r
		return true
	})).Return(nil).Once()

	data := dto.ReferenceData{
		Date: "2025-04-10",
		Items: []dto.ReferenceLine{
			{RefCode: "WID-001", Name: "Widget", InvoiceQty: 2, SellPrice: decimal.NewFromInt(15)},
		},
	}

	report, err := suite.service.CreateReferenceReport(context.Background(), data, suite.userID)
	suite.Require().NoError(err)

	suite.Equal("REF-0000000000003", report.ReportNumber)
	suite.Require().Len(saved.Lines, 1)
	suite.Equal(int64(2), saved.Lines[0].Quantity)
	suite.True(saved.Total.Equal(decimal.NewFromInt(30)))
}

func (suite *ReportServiceTestSuite) TestCreateReferenceReport_QuantityFallbacks() {
	suite.mockSeqRepo.On("NextValue", mock.Anything, domain.SeqReferenceReports).Return(int64(4), nil).Once()

	var saved domain.ReferenceReport
	suite.mockReferenceRepo.On("SaveReport", mock.Anything, mock.MatchedBy(func(r domain.ReferenceReport) bool {
		saved = r
		return true
	})).Return(nil).Once()

	data := dto.ReferenceData{
		Items: []dto.ReferenceLine{
			{Name: "A", InvoiceQty: 3, Quantity: 9, SellPrice: decimal.NewFromInt(1)},
			{Name: "B", Quantity: 5, SellPrice: decimal.NewFromInt(1)},
			{Name: "C", SellPrice: decimal.NewFromInt(1)},
		},
	}

	_, err := suite.service.CreateReferenceReport(context.Background(), data, suite.userID)
	suite.Require().NoError(err)

	// invoiceQty wins over quantity; absent both defaults to 1.
	suite.Equal(int64(3), saved.Lines[0].Quantity)
	suite.Equal(int64(5), saved.Lines[1].Quantity)
	suite.Equal(int64(1), saved.Lines[2].Quantity)
}

func (suite *ReportServiceTestSuite) TestSaveStatement_LiftsHeaderFields() {
	var saved domain.Statement
	suite.mockStatementRepo.On("SaveStatement", mock.Anything, mock.MatchedBy(func(s domain.Statement) bool {
		saved = s
		return true
	})).Return(nil).Once()

	payload := json.RawMessage(`{"title":"March Summary","periodFrom":"2025-03-01","periodTo":"2025-03-31","rows":[{"x":1}]}`)
	statement, err := suite.service.SaveStatement(context.Background(), dto.AddStatementRequest{ReportData: payload}, suite.userID)
	suite.Require().NoError(err)

	suite.Equal("March Summary", saved.Title)
	suite.Equal("2025-03-01", saved.PeriodFrom)
	suite.Equal("2025-03-31", saved.PeriodTo)
	suite.JSONEq(string(payload), string(statement.Payload))
}

func (suite *ReportServiceTestSuite) TestSaveStatement_PayloadWithoutKnownKeysIsLegal() {
	suite.mockStatementRepo.On("SaveStatement", mock.Anything, mock.Anything).Return(nil).Once()

	statement, err := suite.service.SaveStatement(context.Background(), dto.AddStatementRequest{ReportData: json.RawMessage(`{"rows":[]}`)}, suite.userID)
	suite.Require().NoError(err)
	suite.Empty(statement.Title)
}

func (suite *ReportServiceTestSuite) TestSaveStatement_RejectsInvalidJSON() {
	_, err := suite.service.SaveStatement(context.Background(), dto.AddStatementRequest{ReportData: json.RawMessage(`{not json`)}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "SaveStatement", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestListStatements_NeverReturnsNil() {
	suite.mockStatementRepo.On("ListStatements", mock.Anything).Return([]domain.Statement(nil), nil).Once()

	statements, err := suite.service.ListStatements(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(statements)
	suite.Empty(statements)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
