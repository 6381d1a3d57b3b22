package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
	"github.com/lifetrackhq/lifetrack_backend/internal/handlers"
	"github.com/lifetrackhq/lifetrack_backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) CreateGoal(ctx context.Context, ownerID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) ListGoals(ctx context.Context, ownerID string) ([]domain.Goal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, ownerID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, ownerID string, goalID string) error {
	args := m.Called(ctx, ownerID, goalID)
	return args.Error(0)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Test Suite ---
type GoalHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockGoalService *MockGoalService
	jwtSecret       string
}

func (suite *GoalHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "lifetrack-test",
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

func (suite *GoalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockGoalService = new(MockGoalService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterGoalRoutes(v1, suite.mockGoalService)
}

func (suite *GoalHandlerTestSuite) authedRequest(method, url, body, userID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *GoalHandlerTestSuite) TestCreateGoal_Success() {
	userID := uuid.NewString()
	created := &domain.Goal{
		GoalID:        uuid.NewString(),
		OwnerID:       userID,
		Title:         "Emergency fund",
		Type:          domain.GoalSaving,
		TargetAmount:  decimal.NewFromInt(5000),
		CurrentAmount: decimal.Zero,
		Period:        domain.PeriodMonthly,
		Status:        domain.StatusSafe,
	}

	suite.mockGoalService.On("CreateGoal",
		mock.Anything,
		userID,
		mock.MatchedBy(func(req dto.CreateGoalRequest) bool {
			return req.Title == "Emergency fund" && req.Type == domain.GoalSaving
		}),
	).Return(created, nil).Once()

	body := `{"title":"Emergency fund","type":"SAVING","targetAmount":"5000","period":"MONTHLY"}`
	w := suite.authedRequest(http.MethodPost, "/api/v1/goals", body, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.GoalResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.GoalID, resp.GoalID)
	suite.Equal(domain.StatusSafe, resp.Status)
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestCreateGoal_NonPositiveTargetRejectedByBinding() {
	userID := uuid.NewString()

	body := `{"title":"Bad goal","type":"SAVING","targetAmount":"0","period":"MONTHLY"}`
	w := suite.authedRequest(http.MethodPost, "/api/v1/goals", body, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGoalService.AssertNotCalled(suite.T(), "CreateGoal")
}

func (suite *GoalHandlerTestSuite) TestListGoals_Success() {
	userID := uuid.NewString()
	goals := []domain.Goal{
		{GoalID: uuid.NewString(), OwnerID: userID, Title: "Trip", Type: domain.GoalSaving, Status: domain.StatusWarning},
		{GoalID: uuid.NewString(), OwnerID: userID, Title: "Eating out", Type: domain.GoalSpendingLimit, Status: domain.StatusSafe},
	}
	suite.mockGoalService.On("ListGoals", mock.Anything, userID).Return(goals, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/goals", "", userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.GoalResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(goals[0].GoalID, resp[0].GoalID)
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestUpdateGoal_NotFoundMapsTo404() {
	userID := uuid.NewString()
	goalID := uuid.NewString()
	suite.mockGoalService.On("UpdateGoal", mock.Anything, userID, mock.MatchedBy(func(req dto.UpdateGoalRequest) bool {
		return req.ID == goalID
	})).Return(nil, apperrors.ErrNotFound).Once()

	body := fmt.Sprintf(`{"id":%q,"title":"New title"}`, goalID)
	w := suite.authedRequest(http.MethodPut, "/api/v1/goals", body, userID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestDeleteGoal_Success() {
	userID := uuid.NewString()
	goalID := uuid.NewString()
	suite.mockGoalService.On("DeleteGoal", mock.Anything, userID, goalID).Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/goals?id="+goalID, "", userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]bool
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp["success"])
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestDeleteGoal_MissingIDIsBadRequest() {
	userID := uuid.NewString()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/goals", "", userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGoalService.AssertNotCalled(suite.T(), "DeleteGoal")
}

func (suite *GoalHandlerTestSuite) TestMissingTokenIsUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/goals", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockGoalService.AssertNotCalled(suite.T(), "ListGoals")
}

// --- Run Test Suite ---
func TestGoalHandler(t *testing.T) {
	suite.Run(t, new(GoalHandlerTestSuite))
}
