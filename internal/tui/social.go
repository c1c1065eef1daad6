package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/social"
)

type socialSignIn func(context.Context, string) (*social.Pending, error)

type socialDoneMsg struct {
	button *SocialButton
	err    error
}

// SocialButton triggers provider handshake, acknowledgment is raised by flow
type SocialButton struct {
	provider string
	pending  bool
}

func NewSocialButton(provider string) *SocialButton {
	return &SocialButton{provider: provider}
}

func (b *SocialButton) Provider() string {
	return b.provider
}

// Press starts authorization unless one is already pending for this button
func (b *SocialButton) Press(ctx context.Context, signIn socialSignIn) tea.Cmd {
	if b.pending {
		return nil
	}
	b.pending = true

	return func() tea.Msg {
		pending, err := signIn(ctx, b.provider)
		if err != nil {
			return socialDoneMsg{button: b, err: err}
		}

		_, err = pending.Wait(ctx)
		return socialDoneMsg{button: b, err: err}
	}
}

// Done releases button once its authorization completed
func (b *SocialButton) Done(msg socialDoneMsg) bool {
	if msg.button != b || !b.pending {
		return false
	}
	b.pending = false

	if msg.err != nil {
		logrus.WithField("provider", b.provider).Warnf("social sign in was not completed - %v", msg.err)
	}
	return true
}

func (b *SocialButton) View(focused bool) string {
	label := "Continue with " + b.provider
	if b.pending {
		label = "Waiting for " + b.provider + "..."
		return DisabledButtonStyle.Render(label)
	}
	if focused {
		return FocusedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}
