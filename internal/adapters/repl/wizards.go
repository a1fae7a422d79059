package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"inventory-dashboard/internal/app"
	"inventory-dashboard/internal/core"

	"github.com/shopspring/decimal"
)

// handleNewOrder runs an interactive order creation session.
func handleNewOrder(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) {
	prompt := func(label string) string {
		fmt.Print(label)
		raw, _ := reader.ReadString('\n')
		return strings.TrimSpace(raw)
	}

	name := prompt("Customer name: ")
	if name == "" {
		fmt.Println("Order creation cancelled.")
		return
	}
	email := prompt("Customer email: ")
	address := prompt("Shipping address (optional): ")

	fmt.Println("Enter order items. Type 'done' when finished, 'cancel' to abort.")
	fmt.Println("Format per line: <quantity> <unit-price> <item name...>")
	fmt.Println("  Example: 2 500000 Wireless Mouse")

	var items []app.OrderItemInput
	lineNum := 1
	for {
		raw := prompt(fmt.Sprintf("  Item %d: ", lineNum))
		if strings.EqualFold(raw, "cancel") {
			fmt.Println("Order creation cancelled.")
			return
		}
		if strings.EqualFold(raw, "done") {
			break
		}
		if raw == "" {
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) < 3 {
			fmt.Println("  Invalid format. Use: <quantity> <unit-price> <item name...>")
			continue
		}
		qty, err := strconv.Atoi(parts[0])
		if err != nil || qty < 1 {
			fmt.Println("  Invalid quantity.")
			continue
		}
		price, err := decimal.NewFromString(parts[1])
		if err != nil || price.IsNegative() {
			fmt.Println("  Invalid price.")
			continue
		}
		items = append(items, app.OrderItemInput{
			Name:     strings.Join(parts[2:], " "),
			Quantity: qty,
			Price:    price,
		})
		lineNum++
	}

	if len(items) == 0 {
		fmt.Println("No items entered. Order not created.")
		return
	}

	shipping := decimal.Zero
	if raw := prompt("Shipping cost [0]: "); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil || v.IsNegative() {
			fmt.Println("Invalid shipping cost. Order not created.")
			return
		}
		shipping = v
	}

	result, err := svc.CreateOrder(ctx, app.CreateOrderRequest{
		Customer:        core.Customer{Name: name, Email: email},
		ShippingAddress: address,
		Items:           items,
		Shipping:        shipping,
	})
	if err != nil {
		fmt.Printf("Error creating order: %v\n", err)
		return
	}

	fmt.Printf("\nOrder created: %s\n", result.Order.OrderNumber)
	printOrderDetail(result.Order)
	fmt.Printf("Use '/status %s processing' to start fulfillment.\n", result.Order.ID)
}
