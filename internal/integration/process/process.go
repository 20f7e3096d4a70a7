package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyCommand is returned by Run when the command line is blank.
	ErrEmptyCommand = errors.New("empty command")

	// ErrBusy is returned by Run when the concurrent command limit is reached.
	ErrBusy = errors.New("another command is still running")

	// ErrClosed is returned by Run after Shutdown.
	ErrClosed = errors.New("command runner is shut down")

	errNotRunning = errors.New("command is not running")
)

// Result describes a finished command.
type Result struct {
	// ID is the run's unique identifier.
	ID string
	// Name labels the run, such as "build" or "test".
	Name string
	// Command is the shell command line.
	Command string
	// ExitCode is the exit status, -1 if the command was killed by a signal.
	ExitCode int
	// Signaled is set when a signal ended the command.
	Signaled bool
	// Duration is how long the command ran.
	Duration time.Duration
}

// command is one shell command line started by a Supervisor. res holds the
// identity from creation on; the exit fields are written by wait and read
// only after done is closed.
type command struct {
	res     Result
	cmd     *exec.Cmd
	started time.Time
	done    chan struct{}
}

func newCommand(ctx context.Context, shell, name, line string) *command {
	return &command{
		res:  Result{ID: uuid.NewString(), Name: name, Command: line, ExitCode: -1},
		cmd:  exec.CommandContext(ctx, shell, "-c", line),
		done: make(chan struct{}),
	}
}

func (c *command) start() error {
	if err := c.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.res.Name, err)
	}
	c.started = time.Now()
	go c.wait()
	return nil
}

func (c *command) wait() {
	err := c.cmd.Wait()
	c.res.Duration = time.Since(c.started)
	c.res.ExitCode = 0

	if err != nil {
		c.res.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			c.res.ExitCode = exitErr.ExitCode()
			if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				c.res.Signaled = true
			}
		}
	}
	close(c.done)
}

// result blocks until the command exits.
func (c *command) result() Result {
	<-c.done
	return c.res
}

func (c *command) signal(sig os.Signal) error {
	select {
	case <-c.done:
		return errNotRunning
	default:
	}
	if c.cmd.Process == nil {
		return errNotRunning
	}
	return c.cmd.Process.Signal(sig)
}
