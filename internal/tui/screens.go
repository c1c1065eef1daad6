package tui

import (
	"fmt"

	"github.com/umalmyha/authflow/internal/auth"
	"github.com/umalmyha/authflow/internal/flow"
	"github.com/umalmyha/authflow/internal/notification"
	"github.com/umalmyha/authflow/internal/service"
	"github.com/umalmyha/authflow/internal/social"
	"github.com/umalmyha/authflow/internal/validation"
)

// Dependencies shared by all screens of application
type Dependencies struct {
	Rules         *validation.Rules
	Authenticator auth.Authenticator
	PrefSvc       service.PreferenceService
	Notifier      notification.Notifier
	Providers     []social.Provider
}

// Screens builds every screen with its own flow, so state never leaks between instances
func Screens(deps Dependencies, bridge *Bridge) ScreenFactory {
	notifier := notification.Multi(bridge, deps.Notifier)

	return func(to flow.Destination) (Screen, error) {
		switch to {
		case flow.Login:
			loginFlow := flow.NewLoginFlow(deps.Rules, deps.Authenticator, deps.PrefSvc, notifier, bridge, bridge, deps.Providers...)
			return NewLoginScreen(loginFlow, deps.Rules), nil
		case flow.SignUp:
			signUpFlow := flow.NewSignUpFlow(deps.Rules, bridge, bridge, deps.Providers...)
			return NewSignUpScreen(signUpFlow, deps.Rules), nil
		case flow.Home:
			return NewHomeScreen(bridge), nil
		default:
			return nil, fmt.Errorf("unknown destination %s", to)
		}
	}
}
