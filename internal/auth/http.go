package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/model"
)

const loginPath = "/api/auth/login"

type message struct {
	Message string `json:"message"`
}

// HTTPAuthenticator authenticates against remote stub served by `authflow serve`
type HTTPAuthenticator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAuthenticator(baseURL string, client *http.Client) *HTTPAuthenticator {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPAuthenticator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (a *HTTPAuthenticator) Authenticate(ctx context.Context, c model.Credentials) (model.AuthResult, error) {
	body, err := json.Marshal(&c)
	if err != nil {
		return model.AuthResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to build login request - %w", err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRequestID, uuid.NewString())

	res, err := a.client.Do(req)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("login request failed - %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		var m message
		if err := json.NewDecoder(res.Body).Decode(&m); err != nil {
			return model.AuthResult{}, fmt.Errorf("failed to decode login response - %w", err)
		}
		return model.AuthSuccess(m.Message), nil
	case http.StatusUnauthorized:
		var m message
		if err := json.NewDecoder(res.Body).Decode(&m); err != nil || m.Message == "" {
			m.Message = MsgInvalidCredentials
		}
		return model.AuthFailure(m.Message), apperrors.NewAuthenticationError(m.Message)
	default:
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return model.AuthResult{}, fmt.Errorf("unexpected login response status %d - %s", res.StatusCode, strings.TrimSpace(string(raw)))
	}
}
