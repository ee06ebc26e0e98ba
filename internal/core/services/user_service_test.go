package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stocklane/inventory_backend/internal/apperrors"
	"github.com/stocklane/inventory_backend/internal/core/domain"
	portssvc "github.com/stocklane/inventory_backend/internal/core/ports/services"
	"github.com/stocklane/inventory_backend/internal/core/services"
	"github.com/stocklane/inventory_backend/internal/dto"
	"github.com/stocklane/inventory_backend/internal/utils"
)

const testSecurityCode = "LET-ME-IN"

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo      *MockUserRepository
	mockHistoryRepo   *MockLoginHistoryRepository
	mockTxnRepo       *MockTransactionRepository
	mockReferenceRepo *MockReferenceReportRepository
	mockStatementRepo *MockStatementRepository
	service           portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockHistoryRepo = new(MockLoginHistoryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockReferenceRepo = new(MockReferenceReportRepository)
	suite.mockStatementRepo = new(MockStatementRepository)
	suite.service = services.NewUserService(
		suite.mockUserRepo,
		suite.mockHistoryRepo,
		suite.mockTxnRepo,
		suite.mockReferenceRepo,
		suite.mockStatementRepo,
		testSecurityCode,
	)
}

func (suite *UserServiceTestSuite) TestRegister_HashesPasswordWithBcrypt() {
	var saved domain.User
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		saved = u
		return u.Username == "alice"
	})).Return(nil).Once()

	req := dto.RegisterRequest{Username: "alice", Password: "hunter2", SecurityCode: testSecurityCode}
	user, err := suite.service.Register(context.Background(), req)
	suite.Require().NoError(err)

	suite.NotEmpty(user.UserID)
	suite.NotEqual("hunter2", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("hunter2", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestRegister_RejectsBadSecurityCode() {
	req := dto.RegisterRequest{Username: "alice", Password: "hunter2", SecurityCode: "WRONG"}
	_, err := suite.service.Register(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_PropagatesDuplicateUsername() {
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	req := dto.RegisterRequest{Username: "alice", Password: "hunter2", SecurityCode: testSecurityCode}
	_, err := suite.service.Register(context.Background(), req)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) storedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{UserID: "user-1", Username: "alice", PasswordHash: hash}
}

func (suite *UserServiceTestSuite) TestAuthenticate_AppendsLoginHistory() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(suite.storedUser("hunter2"), nil).Once()

	var entry domain.LoginHistoryEntry
	suite.mockHistoryRepo.On("AppendEntry", mock.Anything, mock.MatchedBy(func(e domain.LoginHistoryEntry) bool {
		entry = e
		return e.Username == "alice"
	})).Return(nil).Once()

	user, err := suite.service.Authenticate(context.Background(), "alice", "hunter2", "10.0.0.1", "curl/8.0")
	suite.Require().NoError(err)

	suite.Equal("alice", user.Username)
	suite.Equal("10.0.0.1", entry.IP)
	suite.Equal("curl/8.0", entry.UserAgent)
	suite.False(entry.LoginTime.IsZero())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(suite.storedUser("hunter2"), nil).Once()

	_, err := suite.service.Authenticate(context.Background(), "alice", "wrong", "10.0.0.1", "curl/8.0")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockHistoryRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserLooksLikeWrongPassword() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(context.Background(), "ghost", "whatever", "10.0.0.1", "curl/8.0")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.ErrorContains(err, "Invalid credentials")
}

func (suite *UserServiceTestSuite) TestChangePassword_VerifiesCurrentPassword() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(suite.storedUser("hunter2"), nil).Twice()

	err := suite.service.ChangePassword(context.Background(), dto.ChangePasswordRequest{
		Username:        "alice",
		CurrentPassword: "wrong",
		NewPassword:     "new-secret",
	})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.mockUserRepo.On("UpdatePasswordHash", mock.Anything, "alice", mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-secret", hash)
	})).Return(nil).Once()

	err = suite.service.ChangePassword(context.Background(), dto.ChangePasswordRequest{
		Username:        "alice",
		CurrentPassword: "hunter2",
		NewPassword:     "new-secret",
	})
	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteAccount_RemovesPersonalRecordsOnly() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(suite.storedUser("hunter2"), nil).Once()
	suite.mockHistoryRepo.On("DeleteByUsername", mock.Anything, "alice").Return(nil).Once()
	suite.mockTxnRepo.On("DeleteAllTransactions", mock.Anything).Return(nil).Once()
	suite.mockReferenceRepo.On("DeleteAllReports", mock.Anything).Return(nil).Once()
	suite.mockStatementRepo.On("DeleteAllStatements", mock.Anything).Return(nil).Once()
	suite.mockUserRepo.On("DeleteUser", mock.Anything, "alice").Return(nil).Once()

	err := suite.service.DeleteAccount(context.Background(), dto.DeleteAccountRequest{
		Username:     "alice",
		SecurityCode: testSecurityCode,
	})
	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockHistoryRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteAccount_BadSecurityCode() {
	err := suite.service.DeleteAccount(context.Background(), dto.DeleteAccountRequest{
		Username:     "alice",
		SecurityCode: "WRONG",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestListLoginHistory_NeverReturnsNil() {
	suite.mockHistoryRepo.On("ListRecent", mock.Anything, mock.Anything).Return([]domain.LoginHistoryEntry(nil), nil).Once()

	entries, err := suite.service.ListLoginHistory(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
