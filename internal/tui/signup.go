package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	apperrors "github.com/umalmyha/authflow/internal/errors"
	"github.com/umalmyha/authflow/internal/flow"
	"github.com/umalmyha/authflow/internal/form"
	"github.com/umalmyha/authflow/internal/model"
	"github.com/umalmyha/authflow/internal/validation"
)

var signUpFields = []string{validation.FieldEmail, validation.FieldPassword, validation.FieldConfirmPassword}

type signUpDoneMsg struct {
	err error
}

// SignUpScreen renders sign up form on top of SignUpFlow
type SignUpScreen struct {
	ctx    context.Context
	cancel context.CancelFunc

	signUpFlow *flow.SignUpFlow
	form       *form.State
	inputs     map[string]*InputField
	socials    map[string]*SocialButton
	focus      *focusRing
	submitting bool
}

func NewSignUpScreen(signUpFlow *flow.SignUpFlow, rules *validation.Rules) *SignUpScreen {
	ctx, cancel := context.WithCancel(context.Background())

	inputs := map[string]*InputField{
		validation.FieldEmail:           NewInputField("Email", "you@example.com", false),
		validation.FieldPassword:        NewInputField("Password", "password", true),
		validation.FieldConfirmPassword: NewInputField("Confirm Password", "repeat password", true),
	}

	items := append([]string{}, signUpFields...)
	items = append(items, itemSubmit, itemLogin)

	socials := make(map[string]*SocialButton)
	for _, p := range signUpFlow.Providers() {
		socials[p] = NewSocialButton(p)
		items = append(items, p)
	}

	return &SignUpScreen{
		ctx:        ctx,
		cancel:     cancel,
		signUpFlow: signUpFlow,
		form:       form.New(rules.Field, signUpFields...),
		inputs:     inputs,
		socials:    socials,
		focus:      newFocusRing(inputs, items...),
	}
}

func (s *SignUpScreen) Init() tea.Cmd {
	return s.focus.init()
}

func (s *SignUpScreen) Unmount() {
	s.cancel()
}

func (s *SignUpScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signUpDoneMsg:
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

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if in := s.focus.input(); in != nil {
		return s, in.Update(msg)
	}
	return s, nil
}

func (s *SignUpScreen) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Create account"))
	b.WriteString("\n")

	for _, name := range signUpFields {
		b.WriteString(s.inputs[name].View())
		b.WriteString("\n\n")
	}

	if s.submitting {
		b.WriteString(DisabledButtonStyle.Render("Signing up..."))
	} else {
		b.WriteString(renderButton("Sign Up", s.focus.current() == itemSubmit))
	}
	b.WriteString("\n\n")

	for _, p := range s.signUpFlow.Providers() {
		b.WriteString(s.socials[p].View(s.focus.current() == p))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderLink("Already have an account? Log in", s.focus.current() == itemLogin))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("tab/shift+tab move • enter select • ctrl+c quit"))
	return b.String()
}

func (s *SignUpScreen) Input(name string) *InputField {
	return s.inputs[name]
}

func (s *SignUpScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, nextKey):
		return s.moveFocus(1)
	case key.Matches(msg, prevKey):
		return s.moveFocus(-1)
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

func (s *SignUpScreen) press() tea.Cmd {
	switch item := s.focus.current(); item {
	case validation.FieldEmail, validation.FieldPassword, validation.FieldConfirmPassword, itemSubmit:
		return s.submit()
	case itemLogin:
		s.signUpFlow.GoToLogin()
		return nil
	default:
		if b, ok := s.socials[item]; ok {
			return b.Press(s.ctx, s.signUpFlow.SocialSignIn)
		}
		return nil
	}
}

func (s *SignUpScreen) submit() tea.Cmd {
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
	creds := model.SignUpCredentials{
		Email:           s.form.Value(validation.FieldEmail),
		Password:        s.form.Value(validation.FieldPassword),
		ConfirmPassword: s.form.Value(validation.FieldConfirmPassword),
	}

	return func() tea.Msg {
		return signUpDoneMsg{err: s.signUpFlow.Submit(ctx, creds)}
	}
}

func (s *SignUpScreen) moveFocus(delta int) tea.Cmd {
	left, cmd := s.focus.move(delta)
	if left != "" {
		s.form.Blur(left)
		s.syncErrors()
	}
	return cmd
}

func (s *SignUpScreen) syncErrors() {
	for name, in := range s.inputs {
		in.SetError(s.form.Error(name))
	}
}
