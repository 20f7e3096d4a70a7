package process

import (
	"context"
	"strings"
	"sync"
	"syscall"
	"time"
)

// DefaultShell runs configured commands.
const DefaultShell = "/bin/sh"

// Supervisor runs the editor's shell commands and tracks the ones still
// running so Shutdown can stop them.
type Supervisor struct {
	mu      sync.Mutex
	running map[string]*command
	closed  bool
	wg      sync.WaitGroup

	shell  string
	limit  int
	onExit func(Result)
}

// SupervisorOption configures a Supervisor instance.
type SupervisorOption func(*Supervisor)

// WithLimit caps how many commands may run at once. Zero means no cap.
func WithLimit(n int) SupervisorOption {
	return func(s *Supervisor) {
		s.limit = n
	}
}

// WithExitHandler sets a function called with the result of every command
// that ran. A panic in fn is recovered.
func WithExitHandler(fn func(Result)) SupervisorOption {
	return func(s *Supervisor) {
		s.onExit = fn
	}
}

// WithShell sets the shell used to interpret command lines.
func WithShell(shell string) SupervisorOption {
	return func(s *Supervisor) {
		if shell != "" {
			s.shell = shell
		}
	}
}

// NewSupervisor creates a command runner.
func NewSupervisor(opts ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		running: make(map[string]*command),
		shell:   DefaultShell,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes line through the shell and waits for it to finish.
// The command's standard streams are detached. A non-zero exit status
// is reported in the Result, not as an error; err is set only when the
// command could not be started.
func (s *Supervisor) Run(ctx context.Context, name, line string) (Result, error) {
	if strings.TrimSpace(line) == "" {
		return Result{Name: name, Command: line, ExitCode: -1}, ErrEmptyCommand
	}

	c, err := s.start(ctx, name, line)
	if err != nil {
		return Result{Name: name, Command: line, ExitCode: -1}, err
	}
	res := c.result()
	s.finish(res)
	return res, nil
}

func (s *Supervisor) start(ctx context.Context, name, line string) (*command, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	if s.limit > 0 && len(s.running) >= s.limit {
		return nil, ErrBusy
	}

	c := newCommand(ctx, s.shell, name, line)
	if err := c.start(); err != nil {
		return nil, err
	}
	s.running[c.res.ID] = c
	s.wg.Add(1)
	return c, nil
}

func (s *Supervisor) finish(res Result) {
	defer s.wg.Done()

	s.mu.Lock()
	delete(s.running, res.ID)
	s.mu.Unlock()

	if s.onExit != nil {
		func() {
			defer func() { _ = recover() }()
			s.onExit(res)
		}()
	}
}

// Shutdown refuses new commands, sends SIGTERM to the running ones and
// kills whatever is left after timeout. It returns once every Run call has
// finished. Must not be called from an exit handler.
func (s *Supervisor) Shutdown(timeout time.Duration) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cmds := make([]*command, 0, len(s.running))
	for _, c := range s.running {
		cmds = append(cmds, c)
	}
	s.mu.Unlock()

	for _, c := range cmds {
		_ = c.signal(syscall.SIGTERM)
	}

	deadline := time.After(timeout)
	for _, c := range cmds {
		select {
		case <-c.done:
		case <-deadline:
			for _, k := range cmds {
				_ = k.signal(syscall.SIGKILL)
			}
			<-c.done
		}
	}
	s.wg.Wait()
}
