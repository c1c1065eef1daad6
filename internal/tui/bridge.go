package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/umalmyha/authflow/internal/flow"
	"github.com/umalmyha/authflow/internal/notification"
)

const bridgeBuffer = 64

type navigateMsg struct {
	to flow.Destination
}

type alertMsg struct {
	title   string
	message string
}

type notificationMsg notification.Notification

// Bridge delivers navigation, alerts and notifications raised by flows into the event loop.
// It is safe to call from command goroutines as well as from Update
type Bridge struct {
	msgs chan tea.Msg
}

func NewBridge() *Bridge {
	return &Bridge{msgs: make(chan tea.Msg, bridgeBuffer)}
}

func (b *Bridge) Navigate(to flow.Destination) {
	b.msgs <- navigateMsg{to: to}
}

func (b *Bridge) Alert(title, message string) {
	b.msgs <- alertMsg{title: title, message: message}
}

func (b *Bridge) Schedule(ctx context.Context, n notification.Notification) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.msgs <- notificationMsg(n):
		return nil
	}
}

// Listen waits for next message, it must be re-issued after every delivered message
func (b *Bridge) Listen() tea.Cmd {
	return func() tea.Msg {
		return <-b.msgs
	}
}
