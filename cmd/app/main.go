package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"inventory-dashboard/internal/adapters/cli"
	"inventory-dashboard/internal/adapters/repl"
	"inventory-dashboard/internal/app"
	"inventory-dashboard/internal/db"
	"inventory-dashboard/internal/localstore"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.OptionalPool(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	var kv localstore.KV
	if pool != nil {
		defer pool.Close()
		kv = localstore.NewPG(pool)
	} else {
		kv = localstore.NewMemory()
	}

	svc := app.NewAppService(app.NewSeededStores(ctx, kv))

	// With arguments: one-shot command. Without: interactive console.
	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}
	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}
