//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/api"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	usecasemock "storefront-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
	userID   uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleClient)
		c.Next()
	}

	auth := s.router.Group("/auth")
	auth.POST("/register", s.handler.Register)
	auth.POST("/login", s.handler.Login)
	auth.GET("/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func registerRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: "jordan",
		Email:    "jordan@example.com",
		Password: "s3cret-pass",
		Role:     "client",
	}
}

func (s *AuthHandlerTestSuite) userRM() *readmodel.UserRM {
	return &readmodel.UserRM{
		ID:       s.userID,
		Username: "jordan",
		Email:    "jordan@example.com",
		Role:     "client",
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	s.Run("success: returns 201 Created", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(s.userRM(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerRequestDTO(), "")

		var body readmodel.UserRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("jordan", body.Username)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: username (required)", mutate: testutil.Field("username", nil)},
			{name: "username too short", mutate: testutil.Field("username", "a")},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "password too short", mutate: testutil.Field("password", "short")},
			{name: "unknown role", mutate: testutil.Field("role", "admin")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), registerRequestDTO(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrDuplicateEmail)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := reqdto.LoginRequest{Email: "jordan@example.com", Password: "s3cret-pass"}

	s.Run("success: returns a token and the user", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "jordan@example.com", "s3cret-pass").
			Return(&usecase.LoginResult{Token: "signed.jwt.token", User: s.userRM()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("signed.jwt.token", body.AccessToken)
		s.Equal("jordan", body.User.Username)
	})

	s.Run("error: 401 on invalid credentials", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "jordan@example.com", "s3cret-pass").
			Return(nil, usecase.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on missing password", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated user", func() {
		s.mockAuth.EXPECT().Me(gomock.Any(), s.userID).Return(s.userRM(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body readmodel.UserRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID, body.ID)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 when the account no longer exists", func() {
		s.mockAuth.EXPECT().Me(gomock.Any(), s.userID).Return(nil, usecase.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
