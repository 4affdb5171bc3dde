// Package notes is the terminal surface of the notes client.
package notes

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/notes/internal/cache"
	"github.com/Paintersrp/notes/internal/controller"
	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/state"
	"github.com/Paintersrp/notes/internal/tui/notes/submodels"
	"github.com/Paintersrp/notes/utils"
)

const previewCacheSize = 128

// eventMsg delivers a controller event to the program.
type eventMsg controller.Event

type previewKey struct {
	id    string
	width int
}

// Options configures the list model. When Watcher is set, confirm_delete
// and preview_style changes in the config file apply without a restart.
type Options struct {
	Messages      locale.Catalog
	ConfirmDelete bool
	PreviewStyle  string
	Watcher       *state.ConfigWatcher
}

type NoteListModel struct {
	ctx          context.Context
	ctrl         *controller.Controller
	list         list.Model
	spinner      spinner.Model
	formModel    submodels.FormModel
	cache        *cache.LRUCache[previewKey, string]
	keys         *listKeyMap
	delegateKeys *delegateKeyMap
	messages     locale.Catalog
	opts         Options
	events       *eventPump
	copyText     func(string) error
	preview      string
	pending      *note.Note
	errText      string
	width        int
	height       int
	loading      bool
	creating     bool
}

func NewNoteListModel(ctx context.Context, ctrl *controller.Controller, opts Options) *NoteListModel {
	dkeys := newDelegateKeyMap()
	lkeys := newListKeyMap()
	scope := ctrl.Scope()

	l := list.New(toListItems(ctrl.Notes(), opts.Messages), newItemDelegate(dkeys, scope), 0, 0)
	l.Title = scopeTitle(opts.Messages, scope)
	l.Styles.Title = titleStyle
	l.SetStatusBarItemName("note", "notes")

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			lkeys.create,
			lkeys.changeView,
		}
	}
	l.AdditionalFullHelpKeys = lkeys.fullHelp

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &NoteListModel{
		ctx:          ctx,
		ctrl:         ctrl,
		list:         l,
		spinner:      s,
		formModel:    submodels.NewFormModel(opts.Messages),
		cache:        cache.NewLRUCache[previewKey, string](previewCacheSize),
		keys:         lkeys,
		delegateKeys: dkeys,
		messages:     opts.Messages,
		opts:         opts,
		copyText:     clipboard.WriteAll,
		loading:      ctrl.Loading(),
	}
}

func scopeTitle(messages locale.Catalog, scope controller.Scope) string {
	if scope == controller.ScopeArchived {
		return messages.AppTitle + " · " + messages.ArchivedTitle
	}
	return messages.AppTitle
}

// Init loads the collection.
func (m NoteListModel) Init() tea.Cmd {
	return tea.Batch(
		m.dispatch(controller.ReloadIntent{}),
		m.spinner.Tick,
		m.events.wait(),
		m.opts.Watcher.Start(),
	)
}

func (m NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width/2-h, msg.Height-v)
		m.formModel.SetWidth(msg.Width/2 - h)
		m.handlePreview()
		return m, nil

	case eventMsg:
		return m, m.handleEvent(controller.Event(msg))

	case eventsMsg:
		for _, ev := range msg {
			cmds = append(cmds, m.handleEvent(ev))
		}
		cmds = append(cmds, m.events.wait())
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			return m, cmd
		}
		return m, nil

	case deleteRequestMsg:
		if !m.opts.ConfirmDelete {
			return m, m.dispatch(controller.DeleteIntent{ID: msg.note.ID})
		}
		n := msg.note
		m.pending = &n
		return m, nil

	case intentMsg:
		return m, m.dispatch(msg.intent)

	case state.ConfigChangedMsg:
		m.applySettings(msg.Settings)
		return m, m.opts.Watcher.Start()

	case state.ConfigWatcherErrMsg:
		status := m.list.NewStatusMessage(statusStyle(fmt.Sprintf("Config not reloaded: %v", msg.Err)))
		return m, tea.Batch(status, m.opts.Watcher.Start())

	case submodels.SubmitMsg:
		return m, m.dispatch(controller.SubmitIntent{Title: msg.Draft.Title, Body: msg.Draft.Body})

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch {
		case m.errText != "":
			return m.handleErrorUpdate(msg)
		case m.pending != nil:
			return m.handleConfirmUpdate(msg)
		case m.creating:
			return m.handleCreationUpdate(msg)
		case m.list.FilterState() == list.Filtering:
		default:
			if handled, cmd := m.handleDefaultUpdate(msg); handled {
				return m, cmd
			}
		}
	}

	if m.creating {
		var cmd tea.Cmd
		m.formModel, cmd = m.formModel.Update(msg)
		return m, cmd
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl
	cmds = append(cmds, cmd)

	m.handlePreview()
	return m, tea.Batch(cmds...)
}

func (m *NoteListModel) handleEvent(ev controller.Event) tea.Cmd {
	switch ev.Kind {
	case controller.NotesChanged:
		return m.setNotes(ev.Notes)

	case controller.LoadingChanged:
		wasLoading := m.loading
		m.loading = ev.Loading
		if m.loading && !wasLoading {
			return m.spinner.Tick
		}

	case controller.NoteCreated:
		m.formModel.Reset()
		m.formModel.Blur()
		m.creating = false
		return m.list.NewStatusMessage(statusStyle(ev.Note.Title))

	case controller.OperationFailed:
		m.errText = ev.Message()
	}

	return nil
}

func (m *NoteListModel) applySettings(s state.Resolved) {
	m.opts.ConfirmDelete = s.ConfirmDelete

	if s.PreviewStyle != "" && s.PreviewStyle != m.opts.PreviewStyle {
		m.opts.PreviewStyle = s.PreviewStyle
		m.cache.RemoveFunc(func(previewKey) bool { return true })
		m.handlePreview()
	}
}

func (m *NoteListModel) setNotes(notes []note.Note) tea.Cmd {
	present := make(map[string]bool, len(notes))
	for _, n := range notes {
		present[n.ID] = true
	}
	m.cache.RemoveFunc(func(k previewKey) bool { return !present[k.id] })

	if m.pending != nil && !present[m.pending.ID] {
		m.pending = nil
	}

	cmd := m.list.SetItems(toListItems(notes, m.messages))
	m.handlePreview()
	return cmd
}

func (m NoteListModel) handleErrorUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) || msg.Type == tea.KeyEnter {
		m.errText = ""
	}
	return m, nil
}

func (m NoteListModel) handleConfirmUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.confirm):
		id := m.pending.ID
		m.pending = nil
		return m, m.dispatch(controller.DeleteIntent{ID: id})
	case key.Matches(msg, m.keys.cancel):
		m.pending = nil
	}
	return m, nil
}

func (m NoteListModel) handleCreationUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) {
		m.toggleCreation()
		return m, nil
	}

	var cmd tea.Cmd
	m.formModel, cmd = m.formModel.Update(msg)
	return m, cmd
}

func (m *NoteListModel) handleDefaultUpdate(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.create):
		m.toggleCreation()
		return true, nil

	case key.Matches(msg, m.keys.reload):
		return true, m.dispatch(controller.ReloadIntent{})

	case key.Matches(msg, m.keys.changeView):
		return true, m.toggleScope()

	case key.Matches(msg, m.keys.copy):
		return true, m.copySelected()

	case key.Matches(msg, m.keys.toggleTitleBar):
		v := !m.list.ShowTitle()
		m.list.SetShowTitle(v)
		m.list.SetShowFilter(v)
		m.list.SetFilteringEnabled(v)
		return true, nil

	case key.Matches(msg, m.keys.toggleStatusBar):
		m.list.SetShowStatusBar(!m.list.ShowStatusBar())
		return true, nil

	case key.Matches(msg, m.keys.togglePagination):
		m.list.SetShowPagination(!m.list.ShowPagination())
		return true, nil

	case key.Matches(msg, m.keys.toggleHelpMenu):
		m.list.SetShowHelp(!m.list.ShowHelp())
		return true, nil
	}

	return false, nil
}

// dispatch runs an intent off the update loop. Results come back as
// controller events.
func (m *NoteListModel) dispatch(in controller.Intent) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		_ = ctrl.Dispatch(ctx, in)
		return nil
	}
}

func (m *NoteListModel) toggleScope() tea.Cmd {
	scope := controller.ScopeArchived
	if m.ctrl.Scope() == controller.ScopeArchived {
		scope = controller.ScopeActive
	}

	m.ctrl.SetScope(scope)
	m.list.Title = scopeTitle(m.messages, scope)
	m.list.SetDelegate(newItemDelegate(m.delegateKeys, scope))
	m.list.ResetFilter()
	m.list.ResetSelected()

	return tea.Batch(
		m.setNotes(m.ctrl.Notes()),
		m.dispatch(controller.ReloadIntent{}),
	)
}

func (m *NoteListModel) copySelected() tea.Cmd {
	i, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	if err := m.copyText(i.note.Body); err != nil {
		return m.list.NewStatusMessage(statusStyle(fmt.Sprintf("Error copying note: %v", err)))
	}
	return m.list.NewStatusMessage(statusStyle(m.messages.Copied))
}

func (m *NoteListModel) toggleCreation() {
	switch m.creating {
	case true:
		m.formModel.Blur()
		m.creating = false
	case false:
		m.formModel.Focus()
		m.creating = true
	}
}

func (m *NoteListModel) handlePreview() {
	i, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		m.preview = ""
		return
	}

	k := previewKey{id: i.note.ID, width: m.width / 2}
	if p, hit := m.cache.Get(k); hit {
		m.preview = p
		return
	}

	r, err := utils.RenderMarkdownPreview(utils.NoteDocument(i.note.Title, i.note.Body), k.width, m.opts.PreviewStyle)
	if err != nil {
		m.preview = i.note.Body
		return
	}

	m.cache.Put(k, r)
	m.preview = r
}

func (m NoteListModel) View() string {
	switch {
	case m.errText != "":
		return appStyle.Render(center(m.width, m.height, renderErrorModal(m.messages, m.errText)))
	case m.pending != nil:
		return appStyle.Render(center(m.width, m.height, renderConfirmModal(m.messages, m.pending.Title)))
	}

	left := m.listView()

	var right string
	if m.creating {
		right = m.formModel.View()
	} else {
		right = lipgloss.NewStyle().
			Height(m.list.Height()).
			MaxHeight(m.list.Height()).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.preview))
	}

	layout := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Width(m.width/2).Render(left),
		previewStyle.Render(right),
	)
	return appStyle.Render(layout)
}

func (m NoteListModel) listView() string {
	if m.loading {
		return fmt.Sprintf("%s\n\n%s %s", titleStyle.Render(m.list.Title), m.spinner.View(), m.messages.Loading)
	}
	if len(m.list.Items()) == 0 {
		return fmt.Sprintf("%s\n%s", titleStyle.Render(m.list.Title), emptyStyle.Render(m.messages.EmptyList))
	}
	return m.list.View()
}
