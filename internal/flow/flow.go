// Package flow holds login and sign up orchestration independent of any UI.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/social"
)

// Destination is navigation target, no parameters travel with it
type Destination string

const (
	Login  Destination = "Login"
	SignUp Destination = "SignUp"
	Home   Destination = "Home"
)

// Navigator hands control over to another screen
type Navigator interface {
	Navigate(Destination)
}

// Presenter surfaces dismissible acknowledgment to user
type Presenter interface {
	Alert(title, message string)
}

// State of submission
type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// Alert titles
const (
	TitleSuccess        = "Success"
	TitleError          = "Error"
	TitleForgotPassword = "Forgot Password"
	TitleAccountCreated = "Account Created"
)

var ErrSubmissionInFlight = errors.New("submission is already in flight")

// ErrUnknownProvider is returned when social provider is not registered for flow
var ErrUnknownProvider = errors.New("unknown social provider")

type socialAck func(provider string) (title, message string)

func loginAck(provider string) (string, string) {
	return fmt.Sprintf("%s Login", provider), fmt.Sprintf("Welcome, logged in with %s!", provider)
}

func signUpAck(provider string) (string, string) {
	return fmt.Sprintf("%s Sign Up", provider), fmt.Sprintf("Account created with %s!", provider)
}

func providerNames(providers []social.Provider) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	return names
}

// socialSignIn starts provider handshake and acknowledges success only while ctx is alive.
// Other response types are ignored
func socialSignIn(ctx context.Context, providers []social.Provider, name string, presenter Presenter, ack socialAck) (*social.Pending, error) {
	var provider social.Provider
	for _, p := range providers {
		if p.Name() == name {
			provider = p
			break
		}
	}

	if provider == nil {
		return nil, fmt.Errorf("%w %s", ErrUnknownProvider, name)
	}

	pending, err := provider.BeginAuthorization(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin %s authorization - %w", name, err)
	}

	pending.OnResult(func(res social.Response) {
		log := logrus.WithFields(logrus.Fields{"provider": res.Provider, "type": res.Type})
		if res.Type != social.ResponseSuccess {
			if res.Err != nil {
				log.Warnf("social sign in failed - %v", res.Err)
			}
			return
		}

		if ctx.Err() != nil {
			log.Debug("social sign in completed after screen was closed")
			return
		}

		title, message := ack(res.Provider)
		presenter.Alert(title, message)
	})

	return pending, nil
}
