package infra

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/auth"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/handlers"
	"github.com/umalmyha/authflow/internal/middleware"
	"github.com/umalmyha/authflow/internal/validation"
)

func Router(authenticator auth.Authenticator, rules *validation.Rules) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.Echo(rules)
	e.HTTPErrorHandler = httpErrorHandler(e)

	e.Use(middleware.RequestLogger())

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(authenticator)

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/signup", authHandler.Signup)

	return e
}

func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve apperrors.ValidationErrors
		if errors.As(err, &ve) {
			logrus.Debugf("request payload is invalid - %v", err)
			if err := c.JSON(http.StatusBadRequest, ve); err != nil {
				logrus.Errorf("failed to send validation errors - %v", err)
			}
			return
		}

		var authErr *apperrors.AuthenticationError
		if errors.As(err, &authErr) {
			logrus.Debugf("credentials rejected - %v", err)
			if err := c.JSON(http.StatusUnauthorized, authErr); err != nil {
				logrus.Errorf("failed to send authentication error - %v", err)
			}
			return
		}

		logrus.Error(err.Error())
		e.DefaultHTTPErrorHandler(err, c)
	}
}
