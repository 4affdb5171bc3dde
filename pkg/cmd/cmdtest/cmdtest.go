// Package cmdtest builds command state backed by an in-memory note store.
package cmdtest

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/notes/internal/api"
	"github.com/Paintersrp/notes/internal/controller"
	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/logging"
	"github.com/Paintersrp/notes/internal/note"
	"github.com/Paintersrp/notes/internal/notestore"
	"github.com/Paintersrp/notes/internal/state"
)

// NewState returns a loaded state whose controller talks to a fresh store
// seeded with notes.
func NewState(t *testing.T, notes ...note.Note) (*state.State, *notestore.Store) {
	t.Helper()

	store := notestore.New()
	store.Seed(notes...)

	srv := httptest.NewServer(store.Handler())
	t.Cleanup(srv.Close)

	messages := locale.MustLookup(locale.English)
	client := api.NewClient(srv.URL, api.WithMessages(messages))

	s := state.New()
	s.Messages = messages
	s.Client = client
	s.Controller = controller.New(client)
	s.Logger = logging.Discard()
	s.Settings = state.Resolved{
		BaseURL:       srv.URL,
		Locale:        locale.English,
		ConfirmDelete: true,
		PreviewStyle:  "dracula",
	}

	return s, store
}

// Execute runs cmd with args and returns what it printed.
func Execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
