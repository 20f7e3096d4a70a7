// Package app wires the editing engine to the terminal. It owns the file
// being edited, runs the input loop and carries out the editor commands:
// save, quit with confirmation, and the configured build and test hooks.
package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/buffalo/internal/config"
	"github.com/dshills/buffalo/internal/engine"
	"github.com/dshills/buffalo/internal/integration/process"
	"github.com/dshills/buffalo/internal/renderer"
	"github.com/dshills/buffalo/internal/renderer/backend"
)

// shutdownTimeout bounds how long Close waits for a running command.
const shutdownTimeout = 2 * time.Second

// Options configures the application.
type Options struct {
	// Path is the file to edit. It is created if it does not exist.
	Path string

	// Config supplies the store kind and the build and test commands.
	Config config.Config

	// Logger receives diagnostics. Defaults to GetLogger().
	Logger *Logger

	// Shell runs the build and test commands. Defaults to /bin/sh.
	Shell string

	// ReadOnly opens an existing file for viewing only.
	ReadOnly bool
}

// Application is one editing session bound to a terminal backend.
type Application struct {
	backend    backend.Backend
	renderer   *renderer.Renderer
	doc        *Document
	supervisor *process.Supervisor
	logger     *Logger

	// mu guards the fields below. The config watcher swaps cfg from its
	// own goroutine.
	mu          sync.Mutex
	cfg         config.Config
	message     string
	confirmQuit bool

	ctx      context.Context
	cancel   context.CancelFunc
	running  atomic.Bool
	stopping atomic.Bool
}

// New opens the file named in opts and prepares a session on b.
// The backend is not initialized until Run.
func New(b backend.Backend, opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = GetLogger()
	}

	kind, err := opts.Config.StoreKind()
	if err != nil {
		return nil, NewOperationError("configure", "store", err)
	}

	open := OpenDocument
	if opts.ReadOnly {
		open = OpenDocumentReadOnly
	}
	doc, err := open(opts.Path, engine.WithStoreKind(kind))
	if err != nil {
		return nil, err
	}

	log := logger.WithComponent("app")

	// One command at a time: the footer has room for a single status.
	supervisor := process.NewSupervisor(
		process.WithShell(opts.Shell),
		process.WithLimit(1),
		process.WithExitHandler(func(res process.Result) { logExit(log, res) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		backend:    b,
		renderer:   renderer.New(b, doc.Name),
		doc:        doc,
		supervisor: supervisor,
		logger:     log,
		cfg:        opts.Config,
		ctx:        ctx,
		cancel:     cancel,
	}

	app.logger.Info("opened %s (%d lines, %s store)", doc.Path, doc.Engine.LineCount(), kind)
	return app, nil
}

// Run initializes the backend and processes input until the user quits,
// Shutdown is called or a save fails. A normal quit returns nil.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer app.backend.Shutdown()

	_, height := app.backend.Size()
	app.doc.Engine.Resize(renderer.EditorHeight(height))

	err := app.eventLoop()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

func (app *Application) eventLoop() error {
	for {
		app.Draw()

		ev := app.backend.PollEvent()
		if ev.Type == backend.EventInterrupt && app.stopping.Load() {
			return nil
		}
		if err := app.HandleEvent(ev); err != nil {
			return err
		}
	}
}

// Draw paints the current state of the session.
func (app *Application) Draw() {
	app.renderer.Render(app.doc.Engine.Snapshot(), app.Message())
}

// Shutdown stops the input loop and cancels any running command.
// Safe to call from any goroutine.
func (app *Application) Shutdown() {
	if app.stopping.Swap(true) {
		return
	}
	app.cancel()
	app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
}

// Close releases the document and waits for running commands to exit.
func (app *Application) Close() error {
	app.cancel()
	app.supervisor.Shutdown(shutdownTimeout)
	return app.doc.Close()
}

// ApplyConfig replaces the build and test commands and the log level.
// The level is shared with the logger passed to New. The store kind of an
// open document does not change.
func (app *Application) ApplyConfig(cfg config.Config) {
	app.mu.Lock()
	app.cfg = cfg
	app.mu.Unlock()

	if cfg.LogLevel != "" {
		app.logger.SetLevel(ParseLogLevel(cfg.LogLevel))
	}
	app.logger.Info("configuration reloaded from %s", cfg.Path)
	if app.running.Load() && !app.stopping.Load() {
		// Wake the loop so the next frame reflects the change.
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.doc
}

// Message returns the footer message.
func (app *Application) Message() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.message
}

func (app *Application) setMessage(msg string) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.message = msg
}

// IsRunning returns true if the input loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
