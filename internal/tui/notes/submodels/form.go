package submodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/note"
)

// SubmitMsg carries a complete draft out of the form.
type SubmitMsg struct {
	Draft note.Draft
}

const (
	titleField = iota
	bodyField
	buttonField
	fieldCount
)

const (
	accent   = lipgloss.Color("#0AF")
	darkGray = lipgloss.Color("#767676")
	warnRed  = lipgloss.Color("#F55")
)

var (
	formInputStyle = lipgloss.NewStyle().Foreground(accent)
	formTitleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Background(lipgloss.Color("transparent")).
			Padding(1, 0)

	continueStyle = lipgloss.NewStyle().Foreground(darkGray)
	hintStyle     = lipgloss.NewStyle().Foreground(warnRed)
)

// FormModel collects the title and body of a new note.
type FormModel struct {
	Title    textinput.Model
	Body     textarea.Model
	Focused  int
	btn      SubmitButton
	messages locale.Catalog
	hint     string
	width    int
}

func NewFormModel(messages locale.Catalog) FormModel {
	ti := textinput.New()
	ti.Placeholder = messages.FormTitleLabel
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = messages.FormBodyLabel
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(50)
	ta.SetHeight(8)

	m := FormModel{
		Title:    ti,
		Body:     ta,
		btn:      NewSubmitButton(messages.FormSubmit),
		messages: messages,
		width:    50,
	}
	m.applyFocus()
	return m
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetWidth resizes the inputs.
func (m *FormModel) SetWidth(w int) {
	if w < 20 {
		w = 20
	}
	m.width = w
	m.Title.Width = w
	m.Body.SetWidth(w)
}

// Reset clears every field and focuses the title.
func (m *FormModel) Reset() {
	m.Title.Reset()
	m.Body.Reset()
	m.hint = ""
	m.Focused = titleField
	m.applyFocus()
}

// Blur removes focus from every field.
func (m *FormModel) Blur() {
	m.Title.Blur()
	m.Body.Blur()
	m.btn.Blur()
}

// Focus restores focus to the current field.
func (m *FormModel) Focus() {
	m.applyFocus()
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyShiftTab, tea.KeyCtrlP:
			m.prevInput()
			return m, nil
		case tea.KeyTab, tea.KeyCtrlN:
			m.nextInput()
			return m, nil
		case tea.KeyEnter:
			if m.Focused == titleField {
				m.nextInput()
				return m, nil
			}
		}

	case PressedMsg:
		return m.handleSubmit()
	}

	var cmd tea.Cmd
	switch m.Focused {
	case titleField:
		m.Title, cmd = m.Title.Update(msg)
	case bodyField:
		m.Body, cmd = m.Body.Update(msg)
	case buttonField:
		m.btn, cmd = m.btn.Update(msg)
	}

	return m, cmd
}

func (m FormModel) View() string {
	var btnView string

	if m.btn.Focused() {
		btnView = formInputStyle.Render(m.btn.View())
	} else {
		btnView = continueStyle.Render(m.btn.View())
	}

	hint := ""
	if m.hint != "" {
		hint = "\n" + hintStyle.Render(m.hint)
	}

	return fmt.Sprintf(
		`%s
%s
%s

%s
%s

%s%s
`,
		formTitleStyle.Render(m.messages.FormTitle),
		formInputStyle.Width(m.width).Render(m.messages.FormTitleLabel),
		m.Title.View(),
		formInputStyle.Width(m.width).Render(m.messages.FormBodyLabel),
		m.Body.View(),
		btnView,
		hint,
	)
}

func (m *FormModel) nextInput() {
	m.Focused = (m.Focused + 1) % fieldCount
	m.applyFocus()
}

func (m *FormModel) prevInput() {
	m.Focused--
	if m.Focused < 0 {
		m.Focused = fieldCount - 1
	}
	m.applyFocus()
}

func (m *FormModel) applyFocus() {
	m.Blur()
	switch m.Focused {
	case titleField:
		m.Title.Focus()
	case bodyField:
		m.Body.Focus()
	default:
		m.btn.Focus()
	}
}

// handleSubmit emits the draft, or keeps the form open with a hint when a
// field is blank.
func (m FormModel) handleSubmit() (FormModel, tea.Cmd) {
	d := note.NewDraft(m.Title.Value(), m.Body.Value())
	if d.Empty() {
		m.hint = m.messages.FormIncomplete
		return m, nil
	}

	m.hint = ""
	return m, func() tea.Msg { return SubmitMsg{Draft: d} }
}
