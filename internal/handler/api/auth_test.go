//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"wishkeeper/internal/handler/api"
	"wishkeeper/internal/pkg/config"
	"wishkeeper/internal/pkg/cookie"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase/commands"
	"wishkeeper/tests/common/builder"
	testhttp "wishkeeper/tests/common/httptest"
	commandsmock "wishkeeper/tests/mock/commands"
	queriesmock "wishkeeper/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authCmd     *commandsmock.MockAuthCommands
	userQueries *queriesmock.MockUserQueries
	router      *gin.Engine
	userID      uuid.UUID
}

func (s *AuthHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.authCmd = commandsmock.NewMockAuthCommands(s.ctrl)
	s.userQueries = queriesmock.NewMockUserQueries(s.ctrl)
	s.userID = uuid.New()

	h := api.NewAuthHandler(s.authCmd, s.userQueries, config.JWTConfig{
		Secret:   "test-secret",
		Duration: time.Hour,
	})
	s.router = gin.New()
	s.router.POST("/auth/register", h.Register)
	s.router.POST("/auth/login", h.Login)
	s.router.POST("/auth/logout", h.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}, h.Me)
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestRegister_Success() {
	newID := uuid.New()
	body := map[string]string{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": "password123",
	}

	s.authCmd.EXPECT().Register(gomock.Any(), commands.RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "password123",
	}).Return(newID, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body, "")

	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	s.Equal(newID, resp.ID)
}

func (s *AuthHandlerSuite) TestRegister_EmailTaken() {
	body := map[string]string{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": "password123",
	}

	s.authCmd.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, commands.ErrEmailTaken)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email already registered")
}

func (s *AuthHandlerSuite) TestRegister_MalformedBody() {
	body := map[string]string{"email": "not-an-email"}

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
}

func (s *AuthHandlerSuite) TestLogin_SetsTokenCookie() {
	view := builder.NewUserBuilder().BuildReadModel()
	body := map[string]string{
		"email":    view.Email,
		"password": "password123",
	}

	s.authCmd.EXPECT().Login(gomock.Any(), view.Email, "password123").
		Return(&commands.LoginOutput{Token: "signed.jwt.token", User: view}, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("signed.jwt.token", resp.Token)
	s.Equal(view.Email, resp.User.Email)

	c := testhttp.ExtractCookie(w, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Equal("signed.jwt.token", c.Value)
	s.True(c.HttpOnly)
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	body := map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	}

	s.authCmd.EXPECT().Login(gomock.Any(), "alice@example.com", "wrong").
		Return(nil, commands.ErrInvalidCredentials)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
}

func (s *AuthHandlerSuite) TestLogout_ClearsCookie() {
	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, w.Code)

	c := testhttp.ExtractCookie(w, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *AuthHandlerSuite) TestMe_Success() {
	view := builder.NewUserBuilder().BuildReadModel()
	view.ID = s.userID

	s.userQueries.EXPECT().GetByID(gomock.Any(), s.userID).Return(view, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

	var resp struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(s.userID, resp.ID)
	s.Equal(view.Email, resp.Email)
}

func (s *AuthHandlerSuite) TestMe_NotFound() {
	s.userQueries.EXPECT().GetByID(gomock.Any(), s.userID).
		Return(nil, errs.ErrNotFound)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}
