package notes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/controller"
	"github.com/Paintersrp/notes/internal/note"
)

// deleteRequestMsg asks the model to confirm deleting a note.
type deleteRequestMsg struct {
	note note.Note
}

// intentMsg asks the model to dispatch an intent.
type intentMsg struct {
	intent controller.Intent
}

func newItemDelegate(keys *delegateKeyMap, scope controller.Scope) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetHeight(3)

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		i, ok := m.SelectedItem().(ListItem)
		if !ok {
			return nil
		}

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.delete):
				n := i.note
				return func() tea.Msg { return deleteRequestMsg{note: n} }

			case key.Matches(msg, keys.archive):
				if scope == controller.ScopeActive {
					return intentCmd(controller.ArchiveIntent{ID: i.note.ID})
				}

			case key.Matches(msg, keys.unarchive):
				if scope == controller.ScopeArchived {
					return intentCmd(controller.UnarchiveIntent{ID: i.note.ID})
				}
			}
		}

		return nil
	}

	var help []key.Binding
	switch scope {
	case controller.ScopeArchived:
		help = []key.Binding{keys.delete, keys.unarchive}
	default:
		help = []key.Binding{keys.delete, keys.archive}
	}

	d.ShortHelpFunc = func() []key.Binding {
		return help
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{help}
	}
	return d
}

func intentCmd(in controller.Intent) tea.Cmd {
	return func() tea.Msg { return intentMsg{intent: in} }
}

type delegateKeyMap struct {
	archive   key.Binding
	unarchive key.Binding
	delete    key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		archive: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "archive"),
		),
		unarchive: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "unarchive"),
		),
		delete: key.NewBinding(
			key.WithKeys("D", "delete"),
			key.WithHelp("D", "delete"),
		),
	}
}
