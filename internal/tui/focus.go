package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	nextKey = key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next"),
	)
	prevKey = key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous"),
	)
	pressKey = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	)
	toggleKey = key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	)
)

// focusRing tracks focused item of a screen and keeps input fields focus in sync with it.
// Leaving an input is reported so form can mark it as touched
type focusRing struct {
	items  []string
	inputs map[string]*InputField
	idx    int
}

func newFocusRing(inputs map[string]*InputField, items ...string) *focusRing {
	return &focusRing{items: items, inputs: inputs}
}

func (r *focusRing) current() string {
	return r.items[r.idx]
}

func (r *focusRing) input() *InputField {
	return r.inputs[r.current()]
}

// move shifts focus by delta and returns name of the left input, if any
func (r *focusRing) move(delta int) (string, tea.Cmd) {
	left := ""
	if in := r.input(); in != nil {
		in.Blur()
		left = r.current()
	}

	r.idx = (r.idx + delta + len(r.items)) % len(r.items)

	if in := r.input(); in != nil {
		return left, in.Focus()
	}
	return left, nil
}

func (r *focusRing) focus(item string) (string, tea.Cmd) {
	for i, it := range r.items {
		if it == item {
			return r.move(i - r.idx)
		}
	}
	return "", nil
}

func (r *focusRing) init() tea.Cmd {
	if in := r.input(); in != nil {
		return in.Focus()
	}
	return nil
}
