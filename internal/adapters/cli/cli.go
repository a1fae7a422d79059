package cli

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"

	"inventory-dashboard/internal/app"
	"inventory-dashboard/internal/core"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
// Output is JSON on stdout so the commands compose with jq in scripts.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	switch args[0] {
	case "orders", "o":
		params := core.ListParams{Sort: core.SortState{Key: "date", Direction: core.SortDesc}}
		if len(args) > 1 {
			params.Category = args[1]
		}
		result, err := svc.ListOrders(ctx, params)
		if err != nil {
			log.Fatalf("Failed to list orders: %v", err)
		}
		enc.Encode(result)

	case "products", "p":
		params := core.ListParams{Sort: core.SortState{Key: "name"}}
		if len(args) > 1 {
			params.Category = args[1]
		}
		result, err := svc.ListProducts(ctx, params)
		if err != nil {
			log.Fatalf("Failed to list products: %v", err)
		}
		enc.Encode(result)

	case "stock", "s":
		result, err := svc.ListStock(ctx, core.ListParams{})
		if err != nil {
			log.Fatalf("Failed to list stock: %v", err)
		}
		enc.Encode(result)

	case "low":
		result, err := svc.LowStock(ctx)
		if err != nil {
			log.Fatalf("Failed to list low stock: %v", err)
		}
		enc.Encode(result)

	case "restock":
		if len(args) < 3 {
			log.Fatal("Usage: app restock <item-id> <quantity>")
		}
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			log.Fatalf("Invalid quantity: %s", args[2])
		}
		result, err := svc.RestockItem(ctx, args[1], qty)
		if err != nil {
			log.Fatalf("Restock failed: %v", err)
		}
		enc.Encode(result)

	case "search":
		if len(args) < 2 {
			log.Fatal("Usage: app search \"<query>\" [scope]")
		}
		scope := core.ScopeAll
		if len(args) > 2 {
			scope = core.ParseSearchScope(args[2])
		}
		result, err := svc.Search(ctx, args[1], scope)
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}
		enc.Encode(result)

	case "dashboard", "dash":
		result, err := svc.Dashboard(ctx)
		if err != nil {
			log.Fatalf("Failed to build dashboard: %v", err)
		}
		enc.Encode(result)

	case "create-order":
		var req app.CreateOrderRequest
		if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		result, err := svc.CreateOrder(ctx, req)
		if err != nil {
			log.Fatalf("Create failed: %v", err)
		}
		enc.Encode(result)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: orders, products, stock, low, restock, search, dashboard, create-order", args[0])
	}
}
