package flow

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/model"
	"github.com/umalmyha/authflow/internal/social"
	"github.com/umalmyha/authflow/internal/validation"
)

// SignUpFlow acknowledges valid sign up and returns user to Login, no account is created
type SignUpFlow struct {
	rules     *validation.Rules
	navigator Navigator
	presenter Presenter
	providers []social.Provider
}

func NewSignUpFlow(rules *validation.Rules, navigator Navigator, presenter Presenter, providers ...social.Provider) *SignUpFlow {
	return &SignUpFlow{
		rules:     rules,
		navigator: navigator,
		presenter: presenter,
		providers: providers,
	}
}

func (f *SignUpFlow) Submit(ctx context.Context, creds model.SignUpCredentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := f.rules.SignUp(creds); err != nil {
		logrus.WithField("email", creds.Email).Debugf("sign up validation failed - %v", err)
		return err
	}

	logrus.WithField("email", creds.Email).Debug("sign up accepted")
	f.presenter.Alert(TitleAccountCreated, fmt.Sprintf("Welcome, %s!", creds.Email))
	f.navigator.Navigate(Login)
	return nil
}

func (f *SignUpFlow) SocialSignIn(ctx context.Context, provider string) (*social.Pending, error) {
	return socialSignIn(ctx, f.providers, provider, f.presenter, signUpAck)
}

func (f *SignUpFlow) Providers() []string {
	return providerNames(f.providers)
}

func (f *SignUpFlow) GoToLogin() {
	f.navigator.Navigate(Login)
}
