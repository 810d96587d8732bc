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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/dto"
	"github.com/hospitaldms/duty_scheduler/internal/handlers"
	"github.com/hospitaldms/duty_scheduler/internal/middleware"
	"github.com/hospitaldms/duty_scheduler/internal/platform/config"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, login, password string) (*domain.Session, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuthService *MockAuthService
	jwtSecret       string
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAuthService = new(MockAuthService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "hds-test",
	}
	container := &portssvc.ServiceContainer{
		Auth:     suite.mockAuthService,
		Employee: new(MockEmployeeService),
		Schedule: new(MockScheduleService),
		Report:   new(MockReportService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *AuthHandlerTestSuite) postLogin(body dto.LoginRequest) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_AdminSuccess() {
	session := &domain.Session{Role: domain.RoleAdmin}
	suite.mockAuthService.On("Authenticate", mock.Anything, "admin", "admin").Return(session, nil).Once()

	w := suite.postLogin(dto.LoginRequest{Login: "admin", Password: "admin"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.RoleAdmin, resp.Role)
	suite.NotEmpty(resp.Token)

	// The token must carry the role claim under the configured secret.
	token, err := jwt.ParseWithClaims(resp.Token, &middleware.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.jwtSecret), nil
	})
	suite.Require().NoError(err)
	claims, ok := token.Claims.(*middleware.SessionClaims)
	suite.Require().True(ok)
	suite.Equal(string(domain.RoleAdmin), claims.Role)
	suite.Equal("hds-test", claims.Issuer)
}

func (suite *AuthHandlerTestSuite) TestLogin_EmployeeSuccess() {
	session := &domain.Session{Role: domain.RoleEmployee, EmployeeID: 42}
	suite.mockAuthService.On("Authenticate", mock.Anything, "Anna Petrova", "Cardiology").Return(session, nil).Once()

	w := suite.postLogin(dto.LoginRequest{Login: "Anna Petrova", Password: "Cardiology"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.RoleEmployee, resp.Role)
	suite.Equal(int64(42), resp.EmployeeID)
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	suite.mockAuthService.On("Authenticate", mock.Anything, "Anna Petrova", "Therapy").Return(nil, apperrors.ErrWrongPassword).Once()

	w := suite.postLogin(dto.LoginRequest{Login: "Anna Petrova", Password: "Therapy"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmployee() {
	suite.mockAuthService.On("Authenticate", mock.Anything, "Nobody", "x").Return(nil, apperrors.ErrEmployeeNotFound).Once()

	w := suite.postLogin(dto.LoginRequest{Login: "Nobody", Password: "x"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.postLogin(dto.LoginRequest{Login: "admin"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Authenticate")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
