package validation

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/umalmyha/authflow/internal/errors"
)

// EchoValidator plugs Rules into echo request binding
type EchoValidator struct {
	rules *Rules
}

func Echo(rules *Rules) *EchoValidator {
	return &EchoValidator{rules: rules}
}

func (v *EchoValidator) Validate(i any) error {
	err := v.rules.Struct(i)
	if err == nil {
		return nil
	}

	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
