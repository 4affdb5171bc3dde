// Package notestore is an in-memory note store speaking the same REST
// contract as the remote service. It backs `notes serve` and the tests.
package notestore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Paintersrp/notes/internal/note"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"

	msgNotFound = "Note is not found"
)

// Store keeps notes newest first. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	notes  []note.Note
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDs overrides the id generator.
func WithIDs(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:    func() time.Time { return time.Now().UTC() },
		newID:  newNoteID,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func newNoteID() string {
	return "notes-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Seed inserts notes as given, ahead of existing ones.
func (s *Store) Seed(notes ...note.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append(append([]note.Note(nil), notes...), s.notes...)
}

// Notes returns a copy of every stored note, archived or not.
func (s *Store) Notes() []note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]note.Note(nil), s.notes...)
}

// Handler returns the HTTP routes of the store.
func (s *Store) Handler() http.Handler {
	r := mux.NewRouter().UseEncodedPath()
	r.Use(s.logRequests, withCORS)

	r.HandleFunc("/notes", s.listNotes(false)).Methods(http.MethodGet)
	r.HandleFunc("/notes", s.createNote).Methods(http.MethodPost)
	r.HandleFunc("/notes/archived", s.listNotes(true)).Methods(http.MethodGet)
	r.HandleFunc("/notes/{id}", s.getNote).Methods(http.MethodGet)
	r.HandleFunc("/notes/{id}", s.deleteNote).Methods(http.MethodDelete)
	r.HandleFunc("/notes/{id}/archive", s.setArchived(true)).Methods(http.MethodPut)
	r.HandleFunc("/notes/{id}/unarchive", s.setArchived(false)).Methods(http.MethodPut)
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

// ListenAndServe serves the store on addr until ctx is cancelled.
func (s *Store) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Store) listNotes(archived bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		out := make([]note.Note, 0, len(s.notes))
		for _, n := range s.notes {
			if n.Archived == archived {
				out = append(out, n)
			}
		}
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, response{
			Status:  statusSuccess,
			Message: "Notes retrieved",
			Data:    out,
		})
	}
}

func (s *Store) getNote(w http.ResponseWriter, r *http.Request) {
	id := noteID(r)

	s.mu.Lock()
	idx := s.indexOf(id)
	var n note.Note
	if idx >= 0 {
		n = s.notes[idx]
	}
	s.mu.Unlock()

	if idx < 0 {
		writeJSON(w, http.StatusNotFound, response{Status: statusFail, Message: msgNotFound})
		return
	}

	writeJSON(w, http.StatusOK, response{Status: statusSuccess, Message: "Note retrieved", Data: n})
}

func (s *Store) createNote(w http.ResponseWriter, r *http.Request) {
	var d note.Draft
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&d); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Status: statusFail, Message: "invalid request body"})
		return
	}

	d = note.NewDraft(d.Title, d.Body)
	if d.Empty() {
		writeJSON(w, http.StatusBadRequest, response{Status: statusFail, Message: "title and body are required"})
		return
	}

	n := note.Note{
		ID:        s.newID(),
		Title:     d.Title,
		Body:      d.Body,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.notes = append([]note.Note{n}, s.notes...)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, response{Status: statusSuccess, Message: "Note created", Data: n})
}

func (s *Store) deleteNote(w http.ResponseWriter, r *http.Request) {
	id := noteID(r)

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx >= 0 {
		s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	}
	s.mu.Unlock()

	if idx < 0 {
		writeJSON(w, http.StatusNotFound, response{Status: statusFail, Message: msgNotFound})
		return
	}

	writeJSON(w, http.StatusOK, response{Status: statusSuccess, Message: "Note deleted"})
}

func (s *Store) setArchived(archived bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := noteID(r)

		s.mu.Lock()
		idx := s.indexOf(id)
		var n note.Note
		if idx >= 0 {
			s.notes[idx].Archived = archived
			n = s.notes[idx]
		}
		s.mu.Unlock()

		if idx < 0 {
			writeJSON(w, http.StatusNotFound, response{Status: statusFail, Message: msgNotFound})
			return
		}

		msg := "Note unarchived"
		if archived {
			msg = "Note archived"
		}
		writeJSON(w, http.StatusOK, response{Status: statusSuccess, Message: msg, Data: n})
	}
}

// indexOf must be called with s.mu held.
// noteID returns the unescaped {id} route variable. Routes match on the
// encoded path so ids may contain a slash.
func noteID(r *http.Request) string {
	raw := mux.Vars(r)["id"]
	id, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return id
}

func (s *Store) indexOf(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.ServeHTTP(w, r)
	})
}
