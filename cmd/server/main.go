package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "inventory-dashboard/internal/adapters/web"
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
		log.Fatalf("database: %v", err)
	}

	var kv localstore.KV
	if pool != nil {
		defer pool.Close()
		kv = localstore.NewPG(pool)
		log.Println("local store: postgres")
	} else {
		kv = localstore.NewMemory()
		log.Println("local store: in-memory (DATABASE_URL not set)")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-do-not-use-in-production"
		log.Println("Warning: JWT_SECRET is not set, using insecure default")
	}

	stores := app.NewSeededStores(ctx, kv)
	svc := app.NewAppService(stores)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
