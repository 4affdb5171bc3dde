package notes

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notes/internal/controller"
)

// eventsMsg carries the controller events queued since the last wait.
type eventsMsg []controller.Event

// eventPump queues controller events for the program. push never blocks,
// so the controller may publish from inside Update; the program drains the
// queue through wait and re-arms it after every batch.
type eventPump struct {
	mu    sync.Mutex
	queue []controller.Event
	ready chan struct{}
	done  chan struct{}
	once  sync.Once
}

func newEventPump() *eventPump {
	return &eventPump{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// push is the controller listener.
func (p *eventPump) push(ev controller.Event) {
	p.mu.Lock()
	p.queue = append(p.queue, ev)
	p.mu.Unlock()

	select {
	case p.ready <- struct{}{}:
	default:
	}
}

// wait returns a command that blocks until events are queued or the pump is
// closed.
func (p *eventPump) wait() tea.Cmd {
	if p == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case <-p.done:
			return nil
		case <-p.ready:
		}

		p.mu.Lock()
		events := p.queue
		p.queue = nil
		p.mu.Unlock()

		return eventsMsg(events)
	}
}

func (p *eventPump) close() {
	if p == nil {
		return
	}
	p.once.Do(func() { close(p.done) })
}
