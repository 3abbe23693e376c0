package controller

import (
	"sync"

	"trainctl/internal/dialog"
	"trainctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramScheduler hops functions onto the bubbletea event loop. Post never
// blocks, so it is safe to call from Update itself. Functions run in the
// order they were posted.
type ProgramScheduler struct {
	mu     sync.Mutex
	queue  []func()
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewProgramScheduler returns a scheduler that queues until Start.
func NewProgramScheduler() *ProgramScheduler {
	return &ProgramScheduler{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start begins forwarding posted functions to send, usually tea.Program.Send.
func (s *ProgramScheduler) Start(send func(tea.Msg)) {
	go s.pump(send)
	s.wake()
}

// Post implements dialog.Scheduler.
func (s *ProgramScheduler) Post(fn func()) {
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()
	s.wake()
}

// Stop ends forwarding. Queued functions are dropped.
func (s *ProgramScheduler) Stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *ProgramScheduler) wake() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *ProgramScheduler) pump(send func(tea.Msg)) {
	for {
		select {
		case <-s.done:
			return
		case <-s.signal:
		}

		for {
			s.mu.Lock()
			if len(s.queue) == 0 {
				s.mu.Unlock()
				break
			}
			fn := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()

			select {
			case <-s.done:
				return
			default:
			}
			send(model.RunOnUIMsg{Fn: fn})
		}
	}
}

var _ dialog.Scheduler = (*ProgramScheduler)(nil)
