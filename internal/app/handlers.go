package app

import (
	"fmt"

	"github.com/dshills/buffalo/internal/engine"
	"github.com/dshills/buffalo/internal/integration/process"
	"github.com/dshills/buffalo/internal/renderer"
	"github.com/dshills/buffalo/internal/renderer/backend"
)

// Footer messages.
const (
	msgQuitPrompt  = "Quit without saving? (y/n)"
	msgBuildStatus = "Build finished with status %d"
	msgTestStatus  = "Tests finished with status %d"
	msgNoBuild     = "No configured build command found"
	msgNoTest      = "No configured test command found"
	msgBuildFailed = "Build could not start: %v"
	msgTestFailed  = "Tests could not start: %v"
	msgReadOnly    = "File is read-only"
)

// HandleEvent applies one backend event to the session.
// Returns ErrQuit when the user quits, or the save error when a save fails.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.handleResize(ev)
		return nil
	case backend.EventKey:
		return app.handleKey(ev)
	default:
		return nil
	}
}

func (app *Application) handleResize(ev backend.Event) {
	app.doc.Engine.Resize(renderer.EditorHeight(ev.Height))
}

func (app *Application) handleKey(ev backend.Event) error {
	if app.takeQuitPrompt() {
		if ev.Key == backend.KeyRune && ev.Rune == 'y' {
			return ErrQuit
		}
		app.setMessage("")
		return nil
	}

	eng := app.doc.Engine
	var err error

	switch ev.Key {
	case backend.KeyCtrlQ:
		return app.quit()
	case backend.KeyCtrlS:
		return app.save()
	case backend.KeyCtrlB:
		app.build()
	case backend.KeyCtrlT:
		app.test()
	case backend.KeyUp:
		eng.Move(engine.Up)
	case backend.KeyDown:
		eng.Move(engine.Down)
	case backend.KeyLeft:
		eng.Move(engine.Left)
	case backend.KeyRight:
		eng.Move(engine.Right)
	case backend.KeyEnter:
		err = eng.SplitLine()
	case backend.KeyBackspace, backend.KeyDelete:
		err = eng.DeleteCharBefore()
	case backend.KeyTab:
		err = eng.InsertChar('\t')
	case backend.KeyRune:
		if ch, ok := printable(ev.Rune); ok {
			err = eng.InsertChar(ch)
		}
	}

	if err != nil {
		app.logger.Warn("edit rejected: %v", err)
	}
	return nil
}

// printable reports whether r is a single-byte character that can be
// inserted into a line.
func printable(r rune) (byte, bool) {
	if r < ' ' || r > '~' {
		return 0, false
	}
	return byte(r), true
}

// takeQuitPrompt clears a pending quit confirmation and reports whether
// one was pending.
func (app *Application) takeQuitPrompt() bool {
	app.mu.Lock()
	defer app.mu.Unlock()
	pending := app.confirmQuit
	app.confirmQuit = false
	return pending
}

func (app *Application) quit() error {
	if !app.doc.IsModified() {
		return ErrQuit
	}
	app.mu.Lock()
	app.confirmQuit = true
	app.message = msgQuitPrompt
	app.mu.Unlock()
	return nil
}

func (app *Application) save() error {
	if app.doc.ReadOnly() {
		app.setMessage(msgReadOnly)
		return nil
	}
	if err := app.doc.Save(); err != nil {
		app.logger.Error("%v", err)
		return err
	}
	app.logger.Info("saved %s", app.doc.Path)
	return nil
}

func (app *Application) build() {
	app.runCommand("build", app.Config().Build, msgBuildStatus, msgNoBuild, msgBuildFailed)
}

func (app *Application) test() {
	app.runCommand("test", app.Config().Test, msgTestStatus, msgNoTest, msgTestFailed)
}

// runCommand runs command synchronously and reports its exit status in the
// footer. Input is not processed while the command runs.
func (app *Application) runCommand(name, command, statusFmt, missing, failedFmt string) {
	if command == "" {
		app.setMessage(missing)
		return
	}

	log := app.logger.WithField("command", name)
	log.Debug("running %q", command)

	res, err := app.supervisor.Run(app.ctx, name, command)
	if err != nil {
		log.Error("start: %v", err)
		app.setMessage(fmt.Sprintf(failedFmt, err))
		return
	}
	app.setMessage(fmt.Sprintf(statusFmt, res.ExitCode))
}

// logExit records a finished build or test command.
func logExit(log *Logger, res process.Result) {
	log = log.WithFields(map[string]any{"command": res.Name, "run": res.ID})
	if res.Signaled {
		log.Warn("killed after %s", res.Duration)
		return
	}
	log.Info("exit status %d after %s", res.ExitCode, res.Duration)
}
