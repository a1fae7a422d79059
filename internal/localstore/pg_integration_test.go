package localstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"inventory-dashboard/internal/localstore"
)

func setupTestKV(t *testing.T) (*pgxpool.Pool, *localstore.PG) {
	t.Helper()
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid touching the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS local_store (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		TRUNCATE local_store;
	`)
	if err != nil {
		t.Fatalf("Failed to prepare local_store table: %v", err)
	}

	return pool, localstore.NewPG(pool)
}

func TestPG_RoundTrip(t *testing.T) {
	pool, kv := setupTestKV(t)
	defer pool.Close()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent without error", ok, err)
	}

	if err := kv.Put(ctx, "theme:u1", []byte("dark")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := kv.Get(ctx, "theme:u1")
	if err != nil || !ok || string(got) != "dark" {
		t.Fatalf("Get = (%q, %v, %v), want dark", got, ok, err)
	}

	// Upsert replaces the value for an existing key.
	if err := kv.Put(ctx, "theme:u1", []byte("light")); err != nil {
		t.Fatalf("Put upsert: %v", err)
	}
	got, _, _ = kv.Get(ctx, "theme:u1")
	if string(got) != "light" {
		t.Fatalf("after upsert = %q, want light", got)
	}

	if err := kv.Delete(ctx, "theme:u1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "theme:u1"); ok {
		t.Fatalf("key still present after delete")
	}
}

func TestPG_StoresOpaqueJSONSnapshots(t *testing.T) {
	pool, kv := setupTestKV(t)
	defer pool.Close()
	ctx := context.Background()

	snapshot := []byte(`[{"id":1,"title":"Low Stock Alert","read":false}]`)
	if err := kv.Put(ctx, localstore.KeyNotifications, snapshot); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := kv.Get(ctx, localstore.KeyNotifications)
	if err != nil || !ok || string(got) != string(snapshot) {
		t.Fatalf("snapshot round-trip = (%q, %v, %v)", got, ok, err)
	}
}
