package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/authflow/internal/auth"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/validation"
)

type handlersTestSuite struct {
	suite.Suite
	app         *echo.Echo
	authHandler *AuthHTTPHandler
}

func (s *handlersTestSuite) SetupSuite() {
	authenticator, err := auth.NewStubAuthenticator(0)
	s.Require().NoError(err, "failed to build stub authenticator")

	s.app = echo.New()
	s.app.Validator = validation.Echo(validation.MustRules())
	s.authHandler = NewAuthHTTPHandler(authenticator)
}

func (s *handlersTestSuite) TestLogin() {
	t := s.T()
	require := s.Require()

	t.Log("login with wrong payload")
	{
		c, _ := s.echoPostContext("/api/auth/login", `{"email":"user@exam`)
		err := s.authHandler.Login(c)
		require.Error(err, "wrong payload has been provided but no error raised")
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
	}

	t.Log("login with invalid data sent in payload")
	{
		c, _ := s.echoPostContext("/api/auth/login", `{"email":"user.example.com","password":""}`)
		err := s.authHandler.Login(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(apperrors.ValidationErrors{}, err, "error must be validation errors")
	}

	t.Log("login with wrong credentials")
	{
		payload := fmt.Sprintf(`{"email":%q,"password":"Password@124"}`, auth.StubEmail)
		c, _ := s.echoPostContext("/api/auth/login", payload)
		err := s.authHandler.Login(c)
		require.Error(err, "wrong credentials must be rejected")
		require.IsType(&apperrors.AuthenticationError{}, err, "error must be authentication error")
	}

	t.Log("successful login")
	{
		payload := fmt.Sprintf(`{"email":%q,"password":%q}`, auth.StubEmail, auth.StubPassword)
		c, rec := s.echoPostContext("/api/auth/login", payload)
		err := s.authHandler.Login(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

		var msg message
		require.NoError(json.NewDecoder(rec.Body).Decode(&msg))
		require.Equal(auth.MsgLoginSuccessful, msg.Message)
	}
}

func (s *handlersTestSuite) TestSignup() {
	t := s.T()
	require := s.Require()

	t.Log("signup with mismatching confirmation")
	{
		c, _ := s.echoPostContext("/api/auth/signup", `{"email":"a@b.com","password":"Abcdef1!","confirmPassword":"mismatch"}`)
		err := s.authHandler.Signup(c)
		require.Error(err)

		ve, ok := err.(apperrors.ValidationErrors)
		require.True(ok, "error must be validation errors")
		require.Equal("Passwords must match", ve.First(validation.FieldConfirmPassword))
	}

	t.Log("successful signup")
	{
		c, rec := s.echoPostContext("/api/auth/signup", `{"email":"a@b.com","password":"Abcdef1!","confirmPassword":"Abcdef1!"}`)
		err := s.authHandler.Signup(c)
		require.NoError(err)
		require.Equal(http.StatusOK, rec.Code)
		require.JSONEq(`{"message":"Welcome, a@b.com!"}`, rec.Body.String())
	}
}

func (s *handlersTestSuite) echoPostContext(target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
