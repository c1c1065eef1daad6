package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/authflow/internal/auth"
	"github.com/umalmyha/authflow/internal/model"
)

type message struct {
	Message string `json:"message"`
}

// AuthHTTPHandler is http handler for auth endpoint
type AuthHTTPHandler struct {
	authenticator auth.Authenticator
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authenticator auth.Authenticator) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		authenticator: authenticator,
	}
}

// Login verifies credentials
// @Summary     Login user
// @Description Verifies provided credentials against stub credential pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login body     model.Credentials true "User credentials"
// @Success     200   {object} message
// @Failure     400   {object} errors.ValidationErrors
// @Failure     401   {object} message
// @Failure     500   {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var creds model.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&creds); err != nil {
		return err
	}

	res, err := h.authenticator.Authenticate(c.Request().Context(), creds)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &message{Message: res.Message})
}

// Signup acknowledges new account, nothing is persisted
// @Summary     Signup new account
// @Description Validates sign up data, account is not created
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       signup body     model.SignUpCredentials true "New user data"
// @Success     200    {object} message
// @Failure     400    {object} errors.ValidationErrors
// @Router      /api/auth/signup [post]
func (h *AuthHTTPHandler) Signup(c echo.Context) error {
	var su model.SignUpCredentials
	if err := c.Bind(&su); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&su); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &message{Message: fmt.Sprintf("Welcome, %s!", su.Email)})
}
