package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/auth"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/model"
	"github.com/umalmyha/authflow/internal/notification"
	"github.com/umalmyha/authflow/internal/service"
	"github.com/umalmyha/authflow/internal/social"
	"github.com/umalmyha/authflow/internal/validation"
)

var forgotPasswordNotification = notification.Notification{
	Title: "Password Reset",
	Body:  "A reset link has been sent to your email.",
}

const (
	msgForgotPassword = "Check your email or SMS for reset instructions."
	msgStoreFailed    = "Failed to save your preferences, please try again"
)

// LoginFlow is submit-and-respond cycle of Login screen
type LoginFlow struct {
	rules         *validation.Rules
	authenticator auth.Authenticator
	prefSvc       service.PreferenceService
	notifier      notification.Notifier
	navigator     Navigator
	presenter     Presenter
	providers     []social.Provider

	mu       sync.Mutex
	state    State
	reserved bool
}

func NewLoginFlow(
	rules *validation.Rules,
	authenticator auth.Authenticator,
	prefSvc service.PreferenceService,
	notifier notification.Notifier,
	navigator Navigator,
	presenter Presenter,
	providers ...social.Provider,
) *LoginFlow {
	return &LoginFlow{
		rules:         rules,
		authenticator: authenticator,
		prefSvc:       prefSvc,
		notifier:      notifier,
		navigator:     navigator,
		presenter:     presenter,
		providers:     providers,
		state:         Idle,
	}
}

// Mount reads remembered preference once per screen instance
func (f *LoginFlow) Mount(ctx context.Context) (model.Preference, error) {
	p, err := f.prefSvc.Load(ctx)
	if err != nil {
		return model.Preference{}, fmt.Errorf("failed to load preference - %w", err)
	}
	return p, nil
}

func (f *LoginFlow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates credentials, authenticates them and on success persists remember-me choice,
// acknowledges and navigates Home. ctx is lifetime of the screen, once it is done
// no store write, alert or navigation happens
func (f *LoginFlow) Submit(ctx context.Context, creds model.Credentials, rememberMe bool) (model.AuthResult, error) {
	if !f.begin() {
		return model.AuthResult{}, ErrSubmissionInFlight
	}
	defer f.end()

	attempt := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{"attempt": attempt, "email": creds.Email})

	if err := f.rules.Login(creds); err != nil {
		log.Debugf("login validation failed - %v", err)
		return model.AuthResult{}, err
	}

	f.setState(Submitting)
	log.Debug("login submitting")

	res, err := f.authenticator.Authenticate(ctx, creds)
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Debug("login screen closed while authenticating")
		return model.AuthResult{}, ctxErr
	}

	if err != nil {
		var authErr *apperrors.AuthenticationError
		if errors.As(err, &authErr) {
			log.Debug("login rejected")
			f.presenter.Alert(TitleError, authErr.Error())
			return res, err
		}

		log.Warnf("login failed - %v", err)
		f.presenter.Alert(TitleError, err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to authenticate - %w", err)
	}

	if err := f.persist(ctx, creds.Email, rememberMe); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.AuthResult{}, ctxErr
		}

		log.Warnf("failed to persist preference - %v", err)
		f.presenter.Alert(TitleError, msgStoreFailed)
		return model.AuthResult{}, err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.AuthResult{}, ctxErr
	}

	log.WithField("rememberMe", rememberMe).Debug("login succeeded")
	f.presenter.Alert(TitleSuccess, res.Message)
	f.navigator.Navigate(Home)
	return res, nil
}

// ForgotPassword schedules best-effort notification and acknowledges request
func (f *LoginFlow) ForgotPassword(ctx context.Context) {
	if err := f.notifier.Schedule(ctx, forgotPasswordNotification); err != nil {
		logrus.Warnf("failed to schedule password reset notification - %v", err)
	}
	f.presenter.Alert(TitleForgotPassword, msgForgotPassword)
}

func (f *LoginFlow) SocialSignIn(ctx context.Context, provider string) (*social.Pending, error) {
	return socialSignIn(ctx, f.providers, provider, f.presenter, loginAck)
}

func (f *LoginFlow) Providers() []string {
	return providerNames(f.providers)
}

func (f *LoginFlow) GoToSignUp() {
	f.navigator.Navigate(SignUp)
}

func (f *LoginFlow) persist(ctx context.Context, email string, rememberMe bool) error {
	if rememberMe {
		if err := f.prefSvc.Remember(ctx, email); err != nil {
			return fmt.Errorf("failed to remember %s - %w", email, err)
		}
		return nil
	}

	if err := f.prefSvc.Forget(ctx); err != nil {
		return fmt.Errorf("failed to forget preference - %w", err)
	}
	return nil
}

// begin reserves flow for single submission, validation included
func (f *LoginFlow) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Submitting || f.reserved {
		return false
	}
	f.reserved = true
	return true
}

func (f *LoginFlow) end() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reserved = false
	f.state = Idle
}

func (f *LoginFlow) setState(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}
