package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var toggleObscuredKey = key.NewBinding(
	key.WithKeys("ctrl+r"),
	key.WithHelp("ctrl+r", "show/hide"),
)

// InputField is labeled text entry with inline error. Secret fields start obscured
type InputField struct {
	label    string
	input    textinput.Model
	secret   bool
	obscured bool
	err      string
}

func NewInputField(label, placeholder string, secret bool) *InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.CharLimit = 256

	f := &InputField{label: label, input: input, secret: secret}
	if secret {
		f.setObscured(true)
	}
	return f
}

func (f *InputField) Focus() tea.Cmd {
	return f.input.Focus()
}

func (f *InputField) Blur() {
	f.input.Blur()
}

func (f *InputField) Focused() bool {
	return f.input.Focused()
}

func (f *InputField) Value() string {
	return f.input.Value()
}

func (f *InputField) SetValue(v string) {
	f.input.SetValue(v)
}

// SetError sets error shown under the field, empty string hides it
func (f *InputField) SetError(err string) {
	f.err = err
}

func (f *InputField) Error() string {
	return f.err
}

func (f *InputField) Obscured() bool {
	return f.obscured
}

func (f *InputField) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && f.secret && f.input.Focused() && key.Matches(k, toggleObscuredKey) {
		f.setObscured(!f.obscured)
		return nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *InputField) View() string {
	var b strings.Builder

	label := LabelStyle.Render(f.label)
	if f.input.Focused() {
		label = FocusedStyle.Render(f.label)
	}
	b.WriteString(label)

	if f.secret {
		hint := "ctrl+r show"
		if !f.obscured {
			hint = "ctrl+r hide"
		}
		b.WriteString(" " + BlurredStyle.Render("("+hint+")"))
	}

	b.WriteString("\n")
	b.WriteString(f.input.View())

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("✗ " + f.err))
	}
	return b.String()
}

func (f *InputField) setObscured(obscured bool) {
	f.obscured = obscured
	if obscured {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
		return
	}
	f.input.EchoMode = textinput.EchoNormal
}
