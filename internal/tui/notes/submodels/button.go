package submodels

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PressedMsg is sent when a focused button is activated with enter.
type PressedMsg struct{}

type SubmitButton struct {
	label   string
	focused bool
}

func NewSubmitButton(label string) SubmitButton {
	return SubmitButton{label: label}
}

func (b *SubmitButton) Focus() {
	b.focused = true
}

func (b *SubmitButton) Blur() {
	b.focused = false
}

func (b SubmitButton) Focused() bool {
	return b.focused
}

func (b SubmitButton) Update(msg tea.Msg) (SubmitButton, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.focused && msg.Type == tea.KeyEnter {
			return b, func() tea.Msg { return PressedMsg{} }
		}
	}
	return b, nil
}

func (b SubmitButton) View() string {
	return "[ " + b.label + " ]"
}
