package store

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/shuldan/ioc/pkg/config"
)

func TestStore_ConnectAndQuery(t *testing.T) {
	s := New("sqlite3", ":memory:")
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	db, err := s.DB()
	if err != nil {
		t.Fatalf("DB failed: %v", err)
	}

	if _, err := db.Exec("CREATE TABLE items (id TEXT PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}

	id := NewUUID()
	if _, err := db.Exec("INSERT INTO items (id, name) VALUES (?, ?)", id.String(), "bolt"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	var name string
	if err := db.QueryRow("SELECT name FROM items WHERE id = ?", id.String()).Scan(&name); err != nil {
		t.Fatalf("QueryRow failed: %v", err)
	}
	if name != "bolt" {
		t.Errorf("Expected bolt, got %q", name)
	}
}

func TestStore_ConnectIsIdempotent(t *testing.T) {
	s := New("sqlite3", ":memory:")
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Connect(); err != nil {
		t.Errorf("Second Connect failed: %v", err)
	}
}

func TestStore_DBBeforeConnect(t *testing.T) {
	s := New("sqlite3", ":memory:")

	if _, err := s.DB(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected, got %v", err)
	}
	if err := s.Ping(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected from Ping, got %v", err)
	}
}

func TestStore_FromConfig(t *testing.T) {
	cfg := config.NewMapConfig(map[string]any{
		"database": map[string]any{
			"driver": "sqlite3",
			"dsn":    ":memory:",
		},
	})

	s := FromConfig(cfg)
	if err := s.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestUUID(t *testing.T) {
	id := NewUUID()
	if !id.IsValid() {
		t.Error("Expected a fresh UUID to be valid")
	}

	parsed, err := ParseUUID(id.String())
	if err != nil {
		t.Fatalf("ParseUUID failed: %v", err)
	}
	if parsed.String() != id.String() {
		t.Errorf("Expected round trip, got %s", parsed.String())
	}

	if _, err := ParseUUID("not-a-uuid"); err == nil {
		t.Error("Expected parse failure")
	}

	var zero UUID
	if zero.IsValid() {
		t.Error("Expected the zero UUID to be invalid")
	}
}
