package flow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/authflow/internal/auth"
	authMocks "github.com/umalmyha/authflow/internal/auth/mocks"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/flow"
	flowMocks "github.com/umalmyha/authflow/internal/flow/mocks"
	"github.com/umalmyha/authflow/internal/model"
	"github.com/umalmyha/authflow/internal/notification"
	notificationMocks "github.com/umalmyha/authflow/internal/notification/mocks"
	svcMocks "github.com/umalmyha/authflow/internal/service/mocks"
	"github.com/umalmyha/authflow/internal/social"
	"github.com/umalmyha/authflow/internal/validation"
)

var validCreds = model.Credentials{Email: auth.StubEmail, Password: auth.StubPassword}

type loginFlowTestSuite struct {
	suite.Suite
	loginFlow     *flow.LoginFlow
	authMock      *authMocks.Authenticator
	prefSvcMock   *svcMocks.PreferenceService
	notifierMock  *notificationMocks.Notifier
	navigatorMock *flowMocks.Navigator
	presenterMock *flowMocks.Presenter
	authorizer    *social.SimulatedAuthorizer
	calls         []string
}

func (s *loginFlowTestSuite) SetupTest() {
	t := s.T()
	s.authMock = authMocks.NewAuthenticator(t)
	s.prefSvcMock = svcMocks.NewPreferenceService(t)
	s.notifierMock = notificationMocks.NewNotifier(t)
	s.navigatorMock = flowMocks.NewNavigator(t)
	s.presenterMock = flowMocks.NewPresenter(t)
	s.authorizer = &social.SimulatedAuthorizer{Outcome: social.ResponseSuccess}
	s.calls = nil

	s.loginFlow = flow.NewLoginFlow(
		validation.MustRules(),
		s.authMock,
		s.prefSvcMock,
		s.notifierMock,
		s.navigatorMock,
		s.presenterMock,
		social.NewGoogle("google-client", s.authorizer),
		social.NewFacebook("fb-app", s.authorizer),
	)
}

func (s *loginFlowTestSuite) record(name string) func(mock.Arguments) {
	return func(mock.Arguments) {
		s.calls = append(s.calls, name)
	}
}

func (s *loginFlowTestSuite) TestSubmitRememberMe() {
	s.authMock.On("Authenticate", mock.Anything, validCreds).
		Return(model.AuthSuccess(auth.MsgLoginSuccessful), nil).Run(s.record("authenticate")).Once()
	s.prefSvcMock.On("Remember", mock.Anything, validCreds.Email).Return(nil).Run(s.record("remember")).Once()
	s.presenterMock.On("Alert", flow.TitleSuccess, auth.MsgLoginSuccessful).Run(s.record("alert")).Once()
	s.navigatorMock.On("Navigate", flow.Home).Run(s.record("navigate")).Once()

	s.T().Log("successful login with remember-me stores email before acknowledgment and navigation")
	{
		res, err := s.loginFlow.Submit(context.Background(), validCreds, true)
		s.Require().NoError(err)
		s.Assert().True(res.Success)
		s.Assert().Equal([]string{"authenticate", "remember", "alert", "navigate"}, s.calls)
		s.Assert().Equal(flow.Idle, s.loginFlow.State())
	}
}

func (s *loginFlowTestSuite) TestSubmitWithoutRememberMe() {
	s.authMock.On("Authenticate", mock.Anything, validCreds).Return(model.AuthSuccess(auth.MsgLoginSuccessful), nil).Once()
	s.prefSvcMock.On("Forget", mock.Anything).Return(nil).Run(s.record("forget")).Once()
	s.presenterMock.On("Alert", flow.TitleSuccess, auth.MsgLoginSuccessful).Run(s.record("alert")).Once()
	s.navigatorMock.On("Navigate", flow.Home).Run(s.record("navigate")).Once()

	s.T().Log("successful login without remember-me clears stored preference")
	{
		_, err := s.loginFlow.Submit(context.Background(), validCreds, false)
		s.Require().NoError(err)
		s.Assert().Equal([]string{"forget", "alert", "navigate"}, s.calls)
		s.prefSvcMock.AssertNotCalled(s.T(), "Remember", mock.Anything, mock.Anything)
	}
}

func (s *loginFlowTestSuite) TestSubmitRejected() {
	creds := model.Credentials{Email: "other@example.com", Password: auth.StubPassword}
	s.authMock.On("Authenticate", mock.Anything, creds).
		Return(model.AuthFailure(auth.MsgInvalidCredentials), apperrors.NewAuthenticationError(auth.MsgInvalidCredentials)).Once()
	s.presenterMock.On("Alert", flow.TitleError, auth.MsgInvalidCredentials).Once()

	s.T().Log("rejected login alerts error and leaves store untouched")
	{
		res, err := s.loginFlow.Submit(context.Background(), creds, true)
		var authErr *apperrors.AuthenticationError
		s.Require().ErrorAs(err, &authErr)
		s.Assert().False(res.Success)
		s.prefSvcMock.AssertNotCalled(s.T(), "Remember", mock.Anything, mock.Anything)
		s.prefSvcMock.AssertNotCalled(s.T(), "Forget", mock.Anything)
		s.navigatorMock.AssertNotCalled(s.T(), "Navigate", mock.Anything)
		s.Assert().Equal(flow.Idle, s.loginFlow.State())
	}
}

func (s *loginFlowTestSuite) TestSubmitInvalid() {
	s.T().Log("invalid credentials never reach authenticator")
	{
		_, err := s.loginFlow.Submit(context.Background(), model.Credentials{Email: "nope", Password: "short"}, false)

		var ve apperrors.ValidationErrors
		s.Require().ErrorAs(err, &ve)
		s.Assert().Equal("Please enter a valid email", ve.First(validation.FieldEmail))
		s.Assert().Equal("At least 8 characters", ve.First(validation.FieldPassword))
		s.authMock.AssertNotCalled(s.T(), "Authenticate", mock.Anything, mock.Anything)
		s.Assert().Equal(flow.Idle, s.loginFlow.State())
	}
}

func (s *loginFlowTestSuite) TestSubmitInFlight() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.authMock.On("Authenticate", mock.Anything, validCreds).
		Return(model.AuthSuccess(auth.MsgLoginSuccessful), nil).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).Once()
	s.prefSvcMock.On("Forget", mock.Anything).Return(nil).Once()
	s.presenterMock.On("Alert", flow.TitleSuccess, auth.MsgLoginSuccessful).Once()
	s.navigatorMock.On("Navigate", flow.Home).Once()

	done := make(chan error, 1)
	go func() {
		_, err := s.loginFlow.Submit(context.Background(), validCreds, false)
		done <- err
	}()
	<-started

	s.T().Log("second submit while first is pending is a no-op")
	{
		s.Assert().Equal(flow.Submitting, s.loginFlow.State())

		_, err := s.loginFlow.Submit(context.Background(), validCreds, false)
		s.Assert().ErrorIs(err, flow.ErrSubmissionInFlight)
	}

	close(release)
	s.Require().NoError(<-done)
	s.Assert().Equal(flow.Idle, s.loginFlow.State())
}

func (s *loginFlowTestSuite) TestSubmitScreenClosed() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.authMock.On("Authenticate", mock.Anything, validCreds).
		Return(model.AuthSuccess(auth.MsgLoginSuccessful), nil).
		Run(func(mock.Arguments) { cancel() }).Once()

	s.T().Log("screen closed while authenticating produces no store write, alert or navigation")
	{
		_, err := s.loginFlow.Submit(ctx, validCreds, true)
		s.Assert().ErrorIs(err, context.Canceled)
		s.prefSvcMock.AssertNotCalled(s.T(), "Remember", mock.Anything, mock.Anything)
		s.presenterMock.AssertNotCalled(s.T(), "Alert", mock.Anything, mock.Anything)
		s.navigatorMock.AssertNotCalled(s.T(), "Navigate", mock.Anything)
	}
}

func (s *loginFlowTestSuite) TestSubmitStoreFailure() {
	s.authMock.On("Authenticate", mock.Anything, validCreds).Return(model.AuthSuccess(auth.MsgLoginSuccessful), nil).Once()
	s.prefSvcMock.On("Remember", mock.Anything, validCreds.Email).Return(errors.New("disk is full")).Once()
	s.presenterMock.On("Alert", flow.TitleError, mock.AnythingOfType("string")).Once()

	s.T().Log("failed store write is reported instead of success")
	{
		_, err := s.loginFlow.Submit(context.Background(), validCreds, true)
		s.Assert().Error(err)
		s.presenterMock.AssertNotCalled(s.T(), "Alert", flow.TitleSuccess, mock.Anything)
		s.navigatorMock.AssertNotCalled(s.T(), "Navigate", mock.Anything)
	}
}

func (s *loginFlowTestSuite) TestMount() {
	stored := *model.RememberedPreference(model.DefaultProfile, "user@example.com")
	s.prefSvcMock.On("Load", mock.Anything).Return(stored, nil).Once()

	p, err := s.loginFlow.Mount(context.Background())
	s.Require().NoError(err)
	s.Assert().True(p.RememberMe)
	s.Assert().Equal("user@example.com", p.Email)
}

func (s *loginFlowTestSuite) TestForgotPassword() {
	s.notifierMock.On("Schedule", mock.Anything, notification.Notification{
		Title: "Password Reset",
		Body:  "A reset link has been sent to your email.",
	}).Return(errors.New("notifications are disabled")).Run(s.record("schedule")).Once()
	s.presenterMock.On("Alert", flow.TitleForgotPassword, "Check your email or SMS for reset instructions.").Run(s.record("alert")).Once()

	s.T().Log("notification failure is not surfaced")
	{
		s.loginFlow.ForgotPassword(context.Background())
		s.Assert().Equal([]string{"schedule", "alert"}, s.calls)
	}
}

func (s *loginFlowTestSuite) TestSocialSignIn() {
	s.presenterMock.On("Alert", "Google Login", "Welcome, logged in with Google!").Once()

	s.Assert().Equal([]string{social.Google, social.Facebook}, s.loginFlow.Providers())

	pending, err := s.loginFlow.SocialSignIn(context.Background(), social.Google)
	s.Require().NoError(err)

	res, err := pending.Wait(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal(social.ResponseSuccess, res.Type)
	s.navigatorMock.AssertNotCalled(s.T(), "Navigate", mock.Anything)
}

func (s *loginFlowTestSuite) TestSocialSignInCanceled() {
	s.authorizer.Outcome = social.ResponseCancel

	pending, err := s.loginFlow.SocialSignIn(context.Background(), social.Facebook)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = pending.Wait(ctx)
	s.Require().NoError(err)
	s.presenterMock.AssertNotCalled(s.T(), "Alert", mock.Anything, mock.Anything)
}

func (s *loginFlowTestSuite) TestSocialSignInUnknownProvider() {
	_, err := s.loginFlow.SocialSignIn(context.Background(), "Twitter")
	s.Assert().ErrorIs(err, flow.ErrUnknownProvider)
}

func (s *loginFlowTestSuite) TestGoToSignUp() {
	s.navigatorMock.On("Navigate", flow.SignUp).Once()
	s.loginFlow.GoToSignUp()
}

func TestLoginFlow(t *testing.T) {
	suite.Run(t, new(loginFlowTestSuite))
}
