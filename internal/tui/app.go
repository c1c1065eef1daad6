// Package tui renders login, sign up and home screens in terminal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/authflow/internal/flow"
)

const bannerTimeout = 4 * time.Second

var (
	quitKey = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
	dismissKey = key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("enter", "dismiss"),
	)
)

// Screen is single navigation destination. Unmount is called once screen leaves the stack
type Screen interface {
	Init() tea.Cmd
	Update(tea.Msg) (Screen, tea.Cmd)
	View() string
	Unmount()
}

// ScreenFactory builds new screen instance for destination
type ScreenFactory func(flow.Destination) (Screen, error)

type route struct {
	to     flow.Destination
	screen Screen
}

type clearBannerMsg struct {
	seq int
}

// App is root model holding navigation stack, alert modal and notification banner
type App struct {
	bridge  *Bridge
	screens ScreenFactory
	initial flow.Destination

	stack     []route
	alert     *alertMsg
	banner    string
	bannerSeq int
	err       error
}

func NewApp(bridge *Bridge, screens ScreenFactory, initial flow.Destination) *App {
	return &App{bridge: bridge, screens: screens, initial: initial}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.bridge.Listen(), a.navigate(a.initial))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			a.unmountAll()
			return a, tea.Quit
		}

		if a.alert != nil {
			if key.Matches(msg, dismissKey) {
				a.alert = nil
			}
			return a, nil
		}
		return a, a.updateTop(msg)

	case navigateMsg:
		return a, tea.Batch(a.bridge.Listen(), a.navigate(msg.to))

	case alertMsg:
		a.alert = &msg
		return a, a.bridge.Listen()

	case notificationMsg:
		a.bannerSeq++
		a.banner = fmt.Sprintf("%s: %s", msg.Title, msg.Body)
		seq := a.bannerSeq
		return a, tea.Batch(a.bridge.Listen(), tea.Tick(bannerTimeout, func(time.Time) tea.Msg {
			return clearBannerMsg{seq: seq}
		}))

	case clearBannerMsg:
		if msg.seq == a.bannerSeq {
			a.banner = ""
		}
		return a, nil

	case quitMsg:
		a.unmountAll()
		return a, tea.Quit
	}

	return a, a.broadcast(msg)
}

func (a *App) View() string {
	if a.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("failed to open screen - %v", a.err)) + "\n"
	}

	var b strings.Builder
	if a.banner != "" {
		b.WriteString(BannerStyle.Render(a.banner))
		b.WriteString("\n\n")
	}

	if top := a.top(); top != nil {
		b.WriteString(top.screen.View())
	}

	if a.alert != nil {
		b.WriteString("\n")
		b.WriteString(AlertStyle.Render(
			TitleStyle.Render(a.alert.title) + "\n" + a.alert.message + "\n" + HelpStyle.Render("enter to dismiss"),
		))
	}

	b.WriteString("\n")
	return b.String()
}

// Current is destination on top of the stack
func (a *App) Current() flow.Destination {
	if top := a.top(); top != nil {
		return top.to
	}
	return ""
}

// Depth is number of mounted screens
func (a *App) Depth() int {
	return len(a.stack)
}

// navigate pops back to destination already present in the stack, otherwise pushes new screen
func (a *App) navigate(to flow.Destination) tea.Cmd {
	for i := len(a.stack) - 1; i >= 0; i-- {
		if a.stack[i].to != to {
			continue
		}

		for _, r := range a.stack[i+1:] {
			r.screen.Unmount()
		}
		a.stack = a.stack[:i+1]
		logrus.WithField("destination", to).Debug("navigated back")
		return nil
	}

	screen, err := a.screens(to)
	if err != nil {
		logrus.Errorf("failed to build %s screen - %v", to, err)
		a.err = err
		return tea.Quit
	}

	a.stack = append(a.stack, route{to: to, screen: screen})
	logrus.WithField("destination", to).Debug("navigated forward")
	return screen.Init()
}

func (a *App) top() *route {
	if len(a.stack) == 0 {
		return nil
	}
	return &a.stack[len(a.stack)-1]
}

func (a *App) updateTop(msg tea.Msg) tea.Cmd {
	top := a.top()
	if top == nil {
		return nil
	}

	var cmd tea.Cmd
	top.screen, cmd = top.screen.Update(msg)
	return cmd
}

// broadcast delivers non key messages to every mounted screen, results of async work
// must reach the screen that started it even when it is no longer on top
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.stack))
	for i := range a.stack {
		var cmd tea.Cmd
		a.stack[i].screen, cmd = a.stack[i].screen.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *App) unmountAll() {
	for i := len(a.stack) - 1; i >= 0; i-- {
		a.stack[i].screen.Unmount()
	}
	a.stack = nil
}

type quitMsg struct{}

func quit() tea.Msg {
	return quitMsg{}
}

// Run starts program and blocks until user quits or ctx is done
func Run(ctx context.Context, app *App) error {
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui - %w", err)
	}
	return app.err
}
