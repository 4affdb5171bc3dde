package notes

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/controller"
)

// Run starts the terminal UI and blocks until the user quits. Operations
// still in flight are cancelled on exit.
func Run(ctx context.Context, ctrl *controller.Controller, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p, stop := newProgram(ctx, ctrl, opts, tea.WithInput(os.Stdin), tea.WithAltScreen())
	defer stop()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

// newProgram builds the program with controller events routed through an
// event pump. stop unsubscribes and releases the pump.
func newProgram(
	ctx context.Context,
	ctrl *controller.Controller,
	opts Options,
	progOpts ...tea.ProgramOption,
) (*tea.Program, func()) {
	m := NewNoteListModel(ctx, ctrl, opts)
	m.events = newEventPump()
	unsubscribe := ctrl.Subscribe(m.events.push)

	progOpts = append(progOpts, tea.WithContext(ctx))
	p := tea.NewProgram(m, progOpts...)

	return p, func() {
		unsubscribe()
		m.events.close()
	}
}
