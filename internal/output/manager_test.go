package output

import (
	"errors"
	"testing"

	"headercheck/internal/header"
)

type recordingSink struct {
	writes   []any
	writeErr error
	closed   bool
	closeErr error
}

func (s *recordingSink) Write(v any) error {
	s.writes = append(s.writes, v)
	return s.writeErr
}

func (s *recordingSink) Close() error {
	s.closed = true
	return s.closeErr
}

func TestManager_FansOutToAllSinks(t *testing.T) {
	m := NewManager()
	a, b := &recordingSink{}, &recordingSink{}
	if err := m.AddSink(a); err != nil {
		t.Fatalf("AddSink failed: %v", err)
	}
	if err := m.AddSink(b); err != nil {
		t.Fatalf("AddSink failed: %v", err)
	}

	res := header.NewResult("a.py", header.OutcomeCorrect, "header present and exact")
	if err := m.Write(res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if len(a.writes) != 1 || len(b.writes) != 1 {
		t.Fatalf("expected 1 write per sink, got %d and %d", len(a.writes), len(b.writes))
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !a.closed || !b.closed {
		t.Fatal("expected all sinks closed")
	}
}

func TestManager_RejectsNilSink(t *testing.T) {
	m := NewManager()
	if err := m.AddSink(nil); err == nil {
		t.Fatal("expected error adding nil sink")
	}
}

func TestManager_WriteErrorDoesNotStopOtherSinks(t *testing.T) {
	m := NewManager()
	bad := &recordingSink{writeErr: errors.New("disk full")}
	good := &recordingSink{}
	_ = m.AddSink(bad)
	_ = m.AddSink(good)

	err := m.Write(header.NewResult("a.py", header.OutcomeMissing, "no copyright header found"))
	if err == nil {
		t.Fatal("expected an aggregated write error")
	}
	if len(good.writes) != 1 {
		t.Fatal("good sink should still have received the write")
	}
}
