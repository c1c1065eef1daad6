package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/authflow/internal/flow"
)

type fakeScreen struct {
	name      flow.Destination
	keys      int
	other     int
	unmounted bool
}

func (s *fakeScreen) Init() tea.Cmd { return nil }

func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		s.keys++
	} else {
		s.other++
	}
	return s, nil
}

func (s *fakeScreen) View() string { return string(s.name) + " screen" }

func (s *fakeScreen) Unmount() { s.unmounted = true }

type fakeScreens struct {
	built []*fakeScreen
}

func (f *fakeScreens) factory(to flow.Destination) (Screen, error) {
	if to == "broken" {
		return nil, errors.New("cannot build")
	}
	s := &fakeScreen{name: to}
	f.built = append(f.built, s)
	return s, nil
}

func newTestApp() (*App, *fakeScreens) {
	screens := &fakeScreens{}
	app := NewApp(NewBridge(), screens.factory, flow.Login)
	app.Init()
	return app, screens
}

func TestAppNavigation(t *testing.T) {
	app, screens := newTestApp()
	require.Equal(t, flow.Login, app.Current())

	t.Log("navigation to new destination pushes screen")
	{
		app.Update(navigateMsg{to: flow.SignUp})
		require.Equal(t, flow.SignUp, app.Current())
		require.Equal(t, 2, app.Depth())
		require.Contains(t, app.View(), "SignUp screen")
	}

	t.Log("navigation to mounted destination pops back to it and unmounts screens above")
	{
		app.Update(navigateMsg{to: flow.Login})
		require.Equal(t, flow.Login, app.Current())
		require.Equal(t, 1, app.Depth())
		require.True(t, screens.built[1].unmounted, "popped screen must be unmounted")
		require.False(t, screens.built[0].unmounted)
	}

	t.Log("going forward again builds fresh screen instance")
	{
		app.Update(navigateMsg{to: flow.SignUp})
		require.Len(t, screens.built, 3)
		require.False(t, screens.built[2].unmounted)
	}
}

func TestAppRouting(t *testing.T) {
	app, screens := newTestApp()
	app.Update(navigateMsg{to: flow.Home})

	login, home := screens.built[0], screens.built[1]

	t.Log("keys reach top screen only")
	{
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
		require.Equal(t, 1, home.keys)
		require.Equal(t, 0, login.keys)
	}

	t.Log("other messages reach every mounted screen")
	{
		app.Update(loginDoneMsg{})
		require.Equal(t, 1, home.other)
		require.Equal(t, 1, login.other)
	}
}

func TestAppAlert(t *testing.T) {
	app, screens := newTestApp()
	login := screens.built[0]

	app.Update(alertMsg{title: "Success", message: "Login successful!"})
	require.Contains(t, app.View(), "Login successful!")

	t.Log("keys do not reach screen while alert is shown")
	{
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
		require.Equal(t, 0, login.keys)
		require.Contains(t, app.View(), "Login successful!")
	}

	t.Log("enter dismisses alert")
	{
		app.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotContains(t, app.View(), "Login successful!")
		require.Equal(t, 0, login.keys, "dismissing key is consumed by alert")
	}
}

func TestAppNotificationBanner(t *testing.T) {
	app, _ := newTestApp()

	app.Update(notificationMsg{Title: "Password Reset", Body: "A reset link has been sent to your email."})
	require.Contains(t, app.View(), "Password Reset")

	t.Log("outdated clear does not hide newer banner")
	{
		app.Update(notificationMsg{Title: "Second", Body: "body"})
		app.Update(clearBannerMsg{seq: 1})
		require.Contains(t, app.View(), "Second")
	}

	app.Update(clearBannerMsg{seq: 2})
	require.NotContains(t, app.View(), "Second")
}

func TestAppQuit(t *testing.T) {
	app, screens := newTestApp()
	app.Update(navigateMsg{to: flow.Home})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	for _, s := range screens.built {
		require.True(t, s.unmounted, "every screen must be unmounted on quit")
	}
}

func TestAppBrokenScreen(t *testing.T) {
	app, _ := newTestApp()

	_, cmd := app.Update(navigateMsg{to: "broken"})
	require.NotNil(t, cmd)
	require.Contains(t, app.View(), "cannot build")
}
