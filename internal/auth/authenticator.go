// Package auth contains authenticators the login flow depends on.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// Credential pair accepted by the stub
const (
	StubEmail    = "user@example.com"
	StubPassword = "Password@123"
)

// DefaultStubDelay imitates network round trip
const DefaultStubDelay = 2 * time.Second

const (
	MsgLoginSuccessful    = "Login successful!"
	MsgInvalidCredentials = "Invalid email or password"
)

// Authenticator verifies credentials. Failed verification is reported as
// *errors.AuthenticationError together with failure result
type Authenticator interface {
	Authenticate(context.Context, model.Credentials) (model.AuthResult, error)
}

// StubAuthenticator accepts single hardcoded credential pair after artificial delay
type StubAuthenticator struct {
	email        string
	passwordHash []byte
	delay        time.Duration
}

// NewStubAuthenticator builds stub, password is kept only as bcrypt hash
func NewStubAuthenticator(delay time.Duration) (*StubAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(StubPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash stub password - %w", err)
	}

	return &StubAuthenticator{
		email:        StubEmail,
		passwordHash: hash,
		delay:        delay,
	}, nil
}

func (a *StubAuthenticator) Authenticate(ctx context.Context, c model.Credentials) (model.AuthResult, error) {
	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return model.AuthResult{}, ctx.Err()
	case <-timer.C:
	}

	if c.Email != a.email {
		return a.reject(c.Email)
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(c.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return model.AuthResult{}, fmt.Errorf("failed to verify password - %w", err)
		}
		return a.reject(c.Email)
	}

	logrus.WithField("email", c.Email).Debug("stub accepted credentials")
	return model.AuthSuccess(MsgLoginSuccessful), nil
}

func (a *StubAuthenticator) reject(email string) (model.AuthResult, error) {
	logrus.WithField("email", email).Debug("stub rejected credentials")
	return model.AuthFailure(MsgInvalidCredentials), apperrors.NewAuthenticationError(MsgInvalidCredentials)
}
