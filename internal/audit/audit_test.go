package audit

import (
	"path/filepath"
	"testing"
)

func TestRecordAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	log, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer log.Close()

	if err := log.Record("encrypt", "req-1", "ok"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := log.Record("decrypt", "req-2", "auth_failed"); err != nil {
		t.Fatalf("record: %v", err)
	}

	records, err := log.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Operation != "decrypt" || records[0].Outcome != "auth_failed" {
		t.Fatalf("unexpected most-recent record: %+v", records[0])
	}
}

func TestRecentLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	log, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer log.Close()

	for i := 0; i < 5; i++ {
		if err := log.Record("split", "batch", "ok"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	records, err := log.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}
