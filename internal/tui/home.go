package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/umalmyha/authflow/internal/flow"
)

var (
	backKey = key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b", "back to login"),
	)
	homeQuitKey = key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	)
)

// HomeScreen is destination of successful login
type HomeScreen struct {
	navigator flow.Navigator
}

func NewHomeScreen(navigator flow.Navigator) *HomeScreen {
	return &HomeScreen{navigator: navigator}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Unmount() {}

func (s *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(k, backKey):
		s.navigator.Navigate(flow.Login)
	case key.Matches(k, homeQuitKey):
		return s, quit
	}
	return s, nil
}

func (s *HomeScreen) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Home"))
	b.WriteString("\n")
	b.WriteString("You are logged in.")
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("b back to login • q quit"))
	return b.String()
}
