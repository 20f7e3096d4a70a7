package process

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestCommand_Result(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		want     int
		signaled bool
	}{
		{"success", "true", 0, false},
		{"failure", "exit 3", 3, false},
		{"killed", "kill -9 $$", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCommand(context.Background(), DefaultShell, "build", tt.line)
			if err := c.start(); err != nil {
				t.Fatalf("start failed: %v", err)
			}

			res := c.result()
			if res.ExitCode != tt.want {
				t.Errorf("ExitCode = %d, want %d", res.ExitCode, tt.want)
			}
			if res.Signaled != tt.signaled {
				t.Errorf("Signaled = %v, want %v", res.Signaled, tt.signaled)
			}
			if res.Duration <= 0 {
				t.Errorf("Duration = %v, want > 0", res.Duration)
			}
		})
	}
}

func TestCommand_SignalRunning(t *testing.T) {
	c := newCommand(context.Background(), DefaultShell, "test", "sleep 10")
	if err := c.start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := c.signal(syscall.SIGKILL); err != nil {
		t.Fatalf("signal failed: %v", err)
	}

	select {
	case <-c.done:
	case <-time.After(5 * time.Second):
		t.Fatal("command did not exit after SIGKILL")
	}
	if !c.res.Signaled {
		t.Error("Signaled = false after SIGKILL")
	}
}

func TestCommand_SignalNotRunning(t *testing.T) {
	pending := newCommand(context.Background(), DefaultShell, "test", "true")
	if err := pending.signal(syscall.SIGTERM); err != errNotRunning {
		t.Errorf("signal before start = %v, want errNotRunning", err)
	}

	done := newCommand(context.Background(), DefaultShell, "test", "true")
	if err := done.start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	done.result()
	if err := done.signal(syscall.SIGTERM); err != errNotRunning {
		t.Errorf("signal after exit = %v, want errNotRunning", err)
	}
}
