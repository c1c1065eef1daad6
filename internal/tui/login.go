package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/flow"
	"github.com/umalmyha/authflow/internal/form"
	"github.com/umalmyha/authflow/internal/model"
	"github.com/umalmyha/authflow/internal/validation"
)

const (
	itemRemember = "remember"
	itemSubmit   = "submit"
	itemForgot   = "forgot"
	itemSignUp   = "signup"
	itemLogin    = "login"
)

type preferenceLoadedMsg struct {
	pref model.Preference
	err  error
}

type loginDoneMsg struct {
	err error
}

// LoginScreen renders login form on top of LoginFlow
type LoginScreen struct {
	ctx    context.Context
	cancel context.CancelFunc

	loginFlow  *flow.LoginFlow
	form       *form.State
	inputs     map[string]*InputField
	socials    map[string]*SocialButton
	focus      *focusRing
	spinner    spinner.Model
	rememberMe bool
	submitting bool
}

func NewLoginScreen(loginFlow *flow.LoginFlow, rules *validation.Rules) *LoginScreen {
	ctx, cancel := context.WithCancel(context.Background())

	inputs := map[string]*InputField{
		validation.FieldEmail:    NewInputField("Email", "user@example.com", false),
		validation.FieldPassword: NewInputField("Password", "password", true),
	}

	items := []string{validation.FieldEmail, validation.FieldPassword, itemRemember, itemSubmit, itemForgot, itemSignUp}
	socials := make(map[string]*SocialButton)
	for _, p := range loginFlow.Providers() {
		socials[p] = NewSocialButton(p)
		items = append(items, p)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = FocusedStyle

	return &LoginScreen{
		ctx:       ctx,
		cancel:    cancel,
		loginFlow: loginFlow,
		form:      form.New(rules.Field, validation.FieldEmail, validation.FieldPassword),
		inputs:    inputs,
		socials:   socials,
		focus:     newFocusRing(inputs, items...),
		spinner:   s,
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	ctx := s.ctx
	return tea.Batch(s.focus.init(), func() tea.Msg {
		pref, err := s.loginFlow.Mount(ctx)
		return preferenceLoadedMsg{pref: pref, err: err}
	})
}

func (s *LoginScreen) Unmount() {
	s.cancel()
}

func (s *LoginScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case preferenceLoadedMsg:
		s.applyPreference(msg)
		return s, nil

	case loginDoneMsg:
		s.submitting = false
		var ve apperrors.ValidationErrors
		if errors.As(msg.err, &ve) {
			s.form.ApplyErrors(ve)
			s.syncErrors()
		}
		return s, nil

	case socialDoneMsg:
		for _, b := range s.socials {
			if b.Done(msg) {
				break
			}
		}
		return s, nil

	case spinner.TickMsg:
		if !s.submitting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if in := s.focus.input(); in != nil {
		return s, in.Update(msg)
	}
	return s, nil
}

func (s *LoginScreen) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Welcome back"))
	b.WriteString("\n")

	for _, name := range []string{validation.FieldEmail, validation.FieldPassword} {
		b.WriteString(s.inputs[name].View())
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderRemember())
	b.WriteString("\n\n")

	if s.submitting {
		b.WriteString(DisabledButtonStyle.Render(s.spinner.View() + " Signing in..."))
	} else {
		b.WriteString(renderButton("Log In", s.focus.current() == itemSubmit))
	}
	b.WriteString("  ")
	b.WriteString(renderLink("Forgot password?", s.focus.current() == itemForgot))
	b.WriteString("\n\n")

	for _, p := range s.loginFlow.Providers() {
		b.WriteString(s.socials[p].View(s.focus.current() == p))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderLink("Don't have an account? Sign up", s.focus.current() == itemSignUp))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("tab/shift+tab move • enter select • space toggle • ctrl+c quit"))
	return b.String()
}

// RememberMe reports state of remember-me switch
func (s *LoginScreen) RememberMe() bool {
	return s.rememberMe
}

func (s *LoginScreen) Submitting() bool {
	return s.submitting
}

func (s *LoginScreen) Input(name string) *InputField {
	return s.inputs[name]
}

func (s *LoginScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, nextKey):
		return s.moveFocus(1)
	case key.Matches(msg, prevKey):
		return s.moveFocus(-1)
	case key.Matches(msg, toggleKey) && s.focus.current() == itemRemember:
		s.rememberMe = !s.rememberMe
		return nil
	case key.Matches(msg, pressKey):
		return s.press()
	}

	in := s.focus.input()
	if in == nil {
		return nil
	}

	cmd := in.Update(msg)
	s.form.Change(s.focus.current(), in.Value())
	s.syncErrors()
	return cmd
}

func (s *LoginScreen) press() tea.Cmd {
	switch item := s.focus.current(); item {
	case validation.FieldEmail, validation.FieldPassword, itemSubmit:
		return s.submit()
	case itemRemember:
		s.rememberMe = !s.rememberMe
		return nil
	case itemForgot:
		ctx := s.ctx
		return func() tea.Msg {
			s.loginFlow.ForgotPassword(ctx)
			return nil
		}
	case itemSignUp:
		s.loginFlow.GoToSignUp()
		return nil
	default:
		if b, ok := s.socials[item]; ok {
			return b.Press(s.ctx, s.loginFlow.SocialSignIn)
		}
		return nil
	}
}

func (s *LoginScreen) submit() tea.Cmd {
	if s.submitting {
		return nil
	}

	for name, in := range s.inputs {
		s.form.Change(name, in.Value())
	}
	valid := s.form.Submit()
	s.syncErrors()
	if !valid {
		return nil
	}

	s.submitting = true
	ctx := s.ctx
	creds := model.Credentials{
		Email:    s.form.Value(validation.FieldEmail),
		Password: s.form.Value(validation.FieldPassword),
	}
	rememberMe := s.rememberMe

	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		_, err := s.loginFlow.Submit(ctx, creds, rememberMe)
		return loginDoneMsg{err: err}
	})
}

func (s *LoginScreen) moveFocus(delta int) tea.Cmd {
	left, cmd := s.focus.move(delta)
	if left != "" {
		s.form.Blur(left)
		s.syncErrors()
	}
	return cmd
}

func (s *LoginScreen) applyPreference(msg preferenceLoadedMsg) {
	if msg.err != nil {
		logrus.Warnf("failed to load remembered preference - %v", msg.err)
		return
	}

	s.rememberMe = msg.pref.RememberMe
	email := s.inputs[validation.FieldEmail]
	if msg.pref.RememberMe && msg.pref.Email != "" && email.Value() == "" {
		email.SetValue(msg.pref.Email)
		s.form.Change(validation.FieldEmail, msg.pref.Email)
	}
}

func (s *LoginScreen) syncErrors() {
	for name, in := range s.inputs {
		in.SetError(s.form.Error(name))
	}
}

func (s *LoginScreen) renderRemember() string {
	box := "[ ]"
	if s.rememberMe {
		box = "[x]"
	}

	label := box + " Remember me"
	if s.focus.current() == itemRemember {
		return FocusedStyle.Render(label)
	}
	return BlurredStyle.Render(label)
}

func renderButton(label string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

func renderLink(label string, focused bool) string {
	if focused {
		return FocusedStyle.Underline(true).Render(label)
	}
	return BlurredStyle.Render(label)
}
