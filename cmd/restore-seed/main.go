// restore-seed is a one-shot tool to reset the persisted dashboard state.
// Run it when the notification or account snapshots in the local store have
// been corrupted or need to go back to the demo dataset.
//
// Usage: go run ./cmd/restore-seed
package main

import (
	"context"
	"encoding/json"
	"log"

	"inventory-dashboard/internal/core"
	"inventory-dashboard/internal/db"
	"inventory-dashboard/internal/localstore"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	kv := localstore.NewPG(pool)

	log.Println("Restoring notification seed...")
	raw, err := json.Marshal(core.SeedNotifications())
	if err != nil {
		log.Fatalf("Failed to encode notification seed: %v", err)
	}
	if err := kv.Put(ctx, localstore.KeyNotifications, raw); err != nil {
		log.Fatalf("Failed to write notification seed: %v", err)
	}

	log.Println("Clearing stored accounts...")
	if err := kv.Delete(ctx, localstore.KeyUsers); err != nil {
		log.Fatalf("Failed to clear accounts: %v", err)
	}

	log.Println("Seed data restored.")
}
