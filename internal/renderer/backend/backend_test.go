package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := Cell{Rune: 'X', Attr: AttrReverse}
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendRowAndClear(t *testing.T) {
	b := NewNullBackend(5, 2)
	b.Init()

	for x, r := range "hello" {
		b.SetCell(x, 1, NewCell(r))
	}
	if got := b.Row(1); got != "hello" {
		t.Errorf("Row(1) = %q, want hello", got)
	}

	b.Clear()
	if got := b.Row(1); got != "     " {
		t.Errorf("Row(1) after Clear = %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 40)
	if w, h := b.Size(); w != 100 || h != 40 {
		t.Errorf("size after resize = (%d, %d)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("event = %+v, want resize 100x40", ev)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.PostEvent(RuneEvent('a'))
	b.PostEvent(KeyEvent(KeyCtrlS))

	if ev := b.PollEvent(); ev.Key != KeyRune || ev.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	if ev := b.PollEvent(); ev.Key != KeyCtrlS {
		t.Errorf("second event = %+v", ev)
	}
}

func TestModMask(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("ModMask.Has wrong for %v", m)
	}
}

// ============================================================================
// Terminal (tcell simulation screen)
// ============================================================================

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(term.Shutdown)
	return term, sim
}

func TestTerminalSetGetCell(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 5)

	term.SetCell(3, 2, Cell{Rune: 'Z', Attr: AttrReverse | AttrBold})
	term.Show()

	got := term.GetCell(3, 2)
	if got.Rune != 'Z' {
		t.Errorf("Rune = %q, want Z", got.Rune)
	}
	if !got.Attr.Has(AttrReverse) || !got.Attr.Has(AttrBold) {
		t.Errorf("Attr = %v, want reverse|bold", got.Attr)
	}

	if w, h := term.Size(); w != 20 || h != 5 {
		t.Errorf("Size() = (%d, %d), want (20, 5)", w, h)
	}
}

func TestTerminalPostEventRoundTrip(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 5)

	tests := []Event{
		RuneEvent('q'),
		KeyEvent(KeyEnter),
		KeyEvent(KeyBackspace),
		KeyEvent(KeyUp),
		KeyEvent(KeyCtrlQ),
		KeyEvent(KeyCtrlS),
	}

	for _, want := range tests {
		term.PostEvent(want)
		var got Event
		for {
			got = term.PollEvent()
			if got.Type == EventKey {
				break
			}
		}
		if got.Key != want.Key {
			t.Errorf("posted key %v, polled %v", want.Key, got.Key)
		}
		if want.Key == KeyRune && got.Rune != want.Rune {
			t.Errorf("posted rune %q, polled %q", want.Rune, got.Rune)
		}
	}
}

func TestConvertKeyControlForms(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want Key
	}{
		{"tcell ctrl key", tcell.KeyCtrlB, 0, tcell.ModCtrl, KeyCtrlB},
		{"ascii control", tcell.KeyDC1, 'q', tcell.ModCtrl, KeyCtrlQ},
		{"rune with ctrl", tcell.KeyRune, 't', tcell.ModCtrl, KeyCtrlT},
		{"plain rune", tcell.KeyRune, 't', tcell.ModNone, KeyRune},
		{"backspace", tcell.KeyBackspace, 0, tcell.ModNone, KeyBackspace},
		{"backspace2", tcell.KeyBackspace2, 0, tcell.ModNone, KeyBackspace},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, KeyEnter},
		{"delete", tcell.KeyDelete, 0, tcell.ModNone, KeyDelete},
		{"unknown", tcell.KeyF5, 0, tcell.ModNone, KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertKey(tt.key, tt.r, tt.mod); got != tt.want {
				t.Errorf("convertKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertAttrRoundTrip(t *testing.T) {
	for _, a := range []Attr{AttrNone, AttrBold, AttrReverse, AttrDim | AttrUnderline} {
		if got := convertTcellAttr(convertAttr(a)); got != a {
			t.Errorf("round trip of %v = %v", a, got)
		}
	}
}
