package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMuted_DefaultsFalse(t *testing.T) {
	s := openTestStore(t)
	muted, err := s.Muted()
	if err != nil {
		t.Fatalf("Muted: %v", err)
	}
	if muted {
		t.Error("fresh store should not be muted")
	}
}

func TestSetMuted_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.SetMuted(true); err != nil {
		t.Fatalf("SetMuted(true): %v", err)
	}
	muted, err := s.Muted()
	if err != nil {
		t.Fatalf("Muted: %v", err)
	}
	if !muted {
		t.Error("expected muted after SetMuted(true)")
	}

	if err := s.SetMuted(false); err != nil {
		t.Fatalf("SetMuted(false): %v", err)
	}
	muted, err = s.Muted()
	if err != nil {
		t.Fatalf("Muted: %v", err)
	}
	if muted {
		t.Error("expected unmuted after SetMuted(false)")
	}
}

func TestSetMuted_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SetMuted(true); err != nil {
		t.Fatalf("SetMuted: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	muted, err := s2.Muted()
	if err != nil {
		t.Fatalf("Muted: %v", err)
	}
	if !muted {
		t.Error("mute flag lost across reopen")
	}
}
