package store

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"
)

var allKinds = []Kind{KindArray, KindGap, KindRope}

func mustNew(t *testing.T, kind Kind, content string) Store {
	t.Helper()
	s, err := New(kind, []byte(content))
	if err != nil {
		t.Fatalf("New(%v) error: %v", kind, err)
	}
	return s
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"", KindArray, false},
		{"array", KindArray, false},
		{"gap", KindGap, false},
		{"rope", KindRope, false},
		{"btree", KindArray, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseKind(%q) error should wrap ErrUnknownKind, got %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, kind := range allKinds {
		parsed, err := ParseKind(kind.String())
		if err != nil || parsed != kind {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", kind.String(), parsed, err, kind)
		}
	}
}

func TestNewAndBytes(t *testing.T) {
	inputs := []string{"", "a", "hello", "exactly8", strings.Repeat("abcdefghij", 50)}

	for _, kind := range allKinds {
		for _, in := range inputs {
			s := mustNew(t, kind, in)
			if got := string(s.Bytes()); got != in {
				t.Errorf("%v: Bytes() = %q, want %q", kind, got, in)
			}
			if s.Len() != len(in) {
				t.Errorf("%v: Len() = %d, want %d", kind, s.Len(), len(in))
			}
		}
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		index    int
		ch       byte
		expected string
	}{
		{"into empty", "", 0, 'x', "x"},
		{"at start", "bc", 0, 'a', "abc"},
		{"in middle", "ac", 1, 'b', "abc"},
		{"at end", "ab", 2, 'c', "abc"},
		{"into long", "abcdefghijklmnop", 9, '*', "abcdefghi*jklmnop"},
	}

	for _, kind := range allKinds {
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.name, func(t *testing.T) {
				s := mustNew(t, kind, tt.initial)
				if err := s.Insert(tt.index, tt.ch); err != nil {
					t.Fatalf("Insert error: %v", err)
				}
				if got := string(s.Bytes()); got != tt.expected {
					t.Errorf("got %q, want %q", got, tt.expected)
				}
			})
		}
	}
}

func TestInsertBytes(t *testing.T) {
	for _, kind := range allKinds {
		s := mustNew(t, kind, "hello world")
		if err := s.InsertBytes(5, []byte(", big")); err != nil {
			t.Fatalf("%v: InsertBytes error: %v", kind, err)
		}
		if got := string(s.Bytes()); got != "hello, big world" {
			t.Errorf("%v: got %q", kind, got)
		}
		if err := s.InsertBytes(0, nil); err != nil {
			t.Errorf("%v: InsertBytes(nil) error: %v", kind, err)
		}
		if s.Len() != len("hello, big world") {
			t.Errorf("%v: Len() = %d", kind, s.Len())
		}
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		index    int
		expected string
	}{
		{"at zero is no-op", "abc", 0, "abc"},
		{"first char", "abc", 1, "bc"},
		{"middle", "abc", 2, "ac"},
		{"last", "abc", 3, "ab"},
		{"single char", "a", 1, ""},
		{"long", "abcdefghijklmnop", 10, "abcdefghiklmnop"},
	}

	for _, kind := range allKinds {
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.name, func(t *testing.T) {
				s := mustNew(t, kind, tt.initial)
				if err := s.Delete(tt.index); err != nil {
					t.Fatalf("Delete error: %v", err)
				}
				if got := string(s.Bytes()); got != tt.expected {
					t.Errorf("got %q, want %q", got, tt.expected)
				}
			})
		}
	}
}

func TestOutOfRange(t *testing.T) {
	for _, kind := range allKinds {
		s := mustNew(t, kind, "abc")

		checks := map[string]error{
			"insert -1":   s.Insert(-1, 'x'),
			"insert 4":    s.Insert(4, 'x'),
			"insertBytes": s.InsertBytes(5, []byte("x")),
			"delete 4":    s.Delete(4),
			"delete -1":   s.Delete(-1),
			"seek 4":      s.Seek(4),
		}
		for name, err := range checks {
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("%v: %s: expected ErrOutOfRange, got %v", kind, name, err)
			}
		}

		if _, err := s.ByteAt(3); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%v: ByteAt(3): expected ErrOutOfRange, got %v", kind, err)
		}
		if _, err := s.Split(4); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%v: Split(4): expected ErrOutOfRange, got %v", kind, err)
		}
		if got := string(s.Bytes()); got != "abc" {
			t.Errorf("%v: failed operations modified content: %q", kind, got)
		}
	}
}

func TestByteAtAndSeek(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	for _, kind := range allKinds {
		s := mustNew(t, kind, text)
		for i := 0; i < len(text); i++ {
			if err := s.Seek(i); err != nil {
				t.Fatalf("%v: Seek(%d) error: %v", kind, i, err)
			}
			b, err := s.ByteAt(i)
			if err != nil {
				t.Fatalf("%v: ByteAt(%d) error: %v", kind, i, err)
			}
			if b != text[i] {
				t.Errorf("%v: ByteAt(%d) = %q, want %q", kind, i, b, text[i])
			}
		}
		if err := s.Seek(len(text)); err != nil {
			t.Errorf("%v: Seek(Len()) error: %v", kind, err)
		}
		if got := string(s.Bytes()); got != text {
			t.Errorf("%v: seeking changed content: %q", kind, got)
		}
	}
}

func TestSplitAndAppend(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxyz"
	for _, kind := range allKinds {
		for i := 0; i <= len(text); i++ {
			s := mustNew(t, kind, text)
			tail, err := s.Split(i)
			if err != nil {
				t.Fatalf("%v: Split(%d) error: %v", kind, i, err)
			}
			if got := string(s.Bytes()); got != text[:i] {
				t.Errorf("%v: Split(%d) head = %q, want %q", kind, i, got, text[:i])
			}
			if got := string(tail.Bytes()); got != text[i:] {
				t.Errorf("%v: Split(%d) tail = %q, want %q", kind, i, got, text[i:])
			}

			if err := s.Append(tail); err != nil {
				t.Fatalf("%v: Append error: %v", kind, err)
			}
			if got := string(s.Bytes()); got != text {
				t.Errorf("%v: Append after Split(%d) = %q", kind, i, got)
			}
			if got := string(tail.Bytes()); got != text[i:] {
				t.Errorf("%v: Append modified its argument: %q", kind, got)
			}
		}
	}
}

func TestAppendAcrossKinds(t *testing.T) {
	for _, a := range allKinds {
		for _, b := range allKinds {
			s := mustNew(t, a, "left-")
			o := mustNew(t, b, "right")
			if err := s.Append(o); err != nil {
				t.Fatalf("%v<-%v: Append error: %v", a, b, err)
			}
			if got := string(s.Bytes()); got != "left-right" {
				t.Errorf("%v<-%v: got %q", a, b, got)
			}
		}
	}
}

// TestRandomOperations compares every store kind against a plain slice model.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, kind := range allKinds {
		s := mustNew(t, kind, "")
		var model []byte

		for step := 0; step < 3000; step++ {
			switch op := rng.Intn(10); {
			case op < 5:
				i := rng.Intn(len(model) + 1)
				ch := byte('a' + rng.Intn(26))
				if err := s.Insert(i, ch); err != nil {
					t.Fatalf("%v step %d: Insert error: %v", kind, step, err)
				}
				model = append(model[:i], append([]byte{ch}, model[i:]...)...)
			case op < 8:
				i := rng.Intn(len(model) + 1)
				if err := s.Delete(i); err != nil {
					t.Fatalf("%v step %d: Delete error: %v", kind, step, err)
				}
				if i > 0 {
					model = append(model[:i-1], model[i:]...)
				}
			case op < 9:
				i := rng.Intn(len(model) + 1)
				chunk := []byte(strings.Repeat(string(rune('A'+rng.Intn(26))), rng.Intn(20)))
				if err := s.InsertBytes(i, chunk); err != nil {
					t.Fatalf("%v step %d: InsertBytes error: %v", kind, step, err)
				}
				model = append(model[:i], append(append([]byte{}, chunk...), model[i:]...)...)
			default:
				i := rng.Intn(len(model) + 1)
				tail, err := s.Split(i)
				if err != nil {
					t.Fatalf("%v step %d: Split error: %v", kind, step, err)
				}
				if err := s.Append(tail); err != nil {
					t.Fatalf("%v step %d: Append error: %v", kind, step, err)
				}
			}

			if s.Len() != len(model) {
				t.Fatalf("%v step %d: Len() = %d, want %d", kind, step, s.Len(), len(model))
			}
		}
		if !bytes.Equal(s.Bytes(), model) {
			t.Errorf("%v: content diverged from model", kind)
		}
	}
}

func TestInsertDeleteInverseProperty(t *testing.T) {
	for _, kind := range allKinds {
		kind := kind
		f := func(content []byte, pos uint16, ch byte) bool {
			s, err := New(kind, content)
			if err != nil {
				return false
			}
			i := int(pos) % (len(content) + 1)
			if err := s.Insert(i, ch); err != nil {
				return false
			}
			if err := s.Delete(i + 1); err != nil {
				return false
			}
			return bytes.Equal(s.Bytes(), content)
		}
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("%v: %v", kind, err)
		}
	}
}
