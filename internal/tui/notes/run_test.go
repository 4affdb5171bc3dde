package notes

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/controller"
	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/notestore"
)

func startProgram(t *testing.T, out io.Writer, seed ...note.Note) (*tea.Program, *controller.Controller, <-chan tea.Model) {
	t.Helper()

	store := notestore.New()
	store.Seed(seed...)
	srv := httptest.NewServer(store.Handler())
	t.Cleanup(srv.Close)

	ctrl := controller.New(api.NewClient(srv.URL))
	p, stop := newProgram(context.Background(), ctrl, Options{
		Messages:      locale.MustLookup(locale.English),
		ConfirmDelete: true,
		PreviewStyle:  "dracula",
	}, tea.WithInput(nil), tea.WithOutput(out))
	t.Cleanup(stop)

	final := make(chan tea.Model, 1)
	go func() {
		m, err := p.Run()
		if err != nil {
			t.Errorf("program failed: %v", err)
		}
		final <- m
	}()

	return p, ctrl, final
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// send fails the test when the program stops reading messages.
func send(t *testing.T, p *tea.Program, msg tea.Msg) {
	t.Helper()

	sent := make(chan struct{})
	go func() {
		p.Send(msg)
		close(sent)
	}()

	select {
	case <-sent:
	case <-time.After(3 * time.Second):
		t.Fatalf("program stopped processing messages at %v", msg)
	}
}

func waitFinal(t *testing.T, final <-chan tea.Model) NoteListModel {
	t.Helper()

	select {
	case m := <-final:
		model, ok := m.(NoteListModel)
		if !ok {
			t.Fatalf("unexpected model type %T", m)
		}
		return model
	case <-time.After(3 * time.Second):
		t.Fatalf("program did not quit")
		return NoteListModel{}
	}
}

func TestProgramTogglesScopeWithoutBlocking(t *testing.T) {
	seed := append(seedNotes(), note.Note{ID: "note-3", Title: "Old", Body: "Archived body", Archived: true})
	p, ctrl, final := startProgram(t, io.Discard, seed...)

	send(t, p, tea.WindowSizeMsg{Width: 120, Height: 40})
	send(t, p, runes("V"))
	send(t, p, runes("r"))
	send(t, p, runes("V"))
	send(t, p, runes("V"))
	p.Quit()

	m := waitFinal(t, final)
	if ctrl.Scope() != controller.ScopeArchived {
		t.Fatalf("expected archived scope, got %v", ctrl.Scope())
	}
	if !strings.Contains(m.list.Title, "Archive") {
		t.Fatalf("expected archived title, got %q", m.list.Title)
	}
}

func TestProgramRendersLoadedNotes(t *testing.T) {
	out := &syncBuffer{}
	p, _, final := startProgram(t, out, seedNotes()...)

	send(t, p, tea.WindowSizeMsg{Width: 120, Height: 40})

	deadline := time.Now().Add(3 * time.Second)
	for !strings.Contains(out.String(), "Groceries") {
		if time.Now().After(deadline) {
			t.Fatalf("loaded notes were never rendered")
		}
		time.Sleep(20 * time.Millisecond)
	}
	p.Quit()

	m := waitFinal(t, final)
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
}
