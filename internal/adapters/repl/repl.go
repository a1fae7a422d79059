package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"inventory-dashboard/internal/app"
	"inventory-dashboard/internal/core"
)

// replUser is the account id theme and session state is keyed under when
// running the local console, which has no login step.
const replUser = "console"

// Run starts the interactive console loop.
// Slash commands dispatch deterministically; any other input runs a global
// search across orders, products, and customers.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("Inventory Dashboard Console")
	fmt.Println("Type a search term, or use /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "orders":
			// Usage: /orders [status] [page]
			params := core.ListParams{Sort: core.SortState{Key: "date", Direction: core.SortDesc}}
			if len(args) > 0 {
				params.Category = args[0]
			}
			if len(args) > 1 {
				params.Page, _ = strconv.Atoi(args[1])
			}
			result, err := svc.ListOrders(ctx, params)
			if err != nil {
				return err
			}
			printOrders(result)

		case "order":
			if len(args) < 1 {
				fmt.Println("Usage: /order <id>")
				return nil
			}
			result, err := svc.GetOrder(ctx, args[0])
			if err != nil {
				return err
			}
			printOrderDetail(result.Order)

		case "products":
			// Usage: /products [category] [page]
			params := core.ListParams{Sort: core.SortState{Key: "name", Direction: core.SortAsc}}
			if len(args) > 0 {
				params.Category = args[0]
			}
			if len(args) > 1 {
				params.Page, _ = strconv.Atoi(args[1])
			}
			result, err := svc.ListProducts(ctx, params)
			if err != nil {
				return err
			}
			printProducts(result)

		case "stock":
			result, err := svc.ListStock(ctx, core.ListParams{})
			if err != nil {
				return err
			}
			printStock(result)

		case "low":
			result, err := svc.LowStock(ctx)
			if err != nil {
				return err
			}
			printLowStock(result)

		case "restock":
			if len(args) < 2 {
				fmt.Println("Usage: /restock <item-id> <quantity>")
				return nil
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil || qty < 1 {
				fmt.Printf("Invalid quantity: %s\n", args[1])
				return nil
			}
			result, err := svc.RestockItem(ctx, args[0], qty)
			if err != nil {
				return err
			}
			fmt.Printf("%s restocked to %d (%s).\n",
				result.Item.Name, result.Item.Quantity, result.Item.Status.Label())

		case "new-order":
			handleNewOrder(ctx, reader, svc)

		case "status":
			if len(args) < 2 {
				fmt.Println("Usage: /status <order-id> <new-status>")
				return nil
			}
			status, err := core.ParseOrderStatus(args[1])
			if err != nil {
				return err
			}
			result, err := svc.UpdateOrderStatus(ctx, args[0], status)
			if err != nil {
				return err
			}
			fmt.Printf("Order %s is now %s.\n", result.Order.OrderNumber, result.Order.Status.Label())

		case "reports":
			result, err := svc.ListReports(ctx, core.ListParams{})
			if err != nil {
				return err
			}
			printReports(result)

		case "notifications", "notifs":
			result, err := svc.Notifications(ctx)
			if err != nil {
				return err
			}
			printNotifications(result)

		case "read":
			if len(args) < 1 {
				fmt.Println("Usage: /read <notification-id>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Invalid notification id: %s\n", args[0])
				return nil
			}
			result, err := svc.MarkNotificationRead(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Marked read. %d unread remaining.\n", result.UnreadCount)

		case "read-all":
			result, err := svc.MarkAllNotificationsRead(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("All read. %d unread remaining.\n", result.UnreadCount)

		case "dashboard", "dash":
			result, err := svc.Dashboard(ctx)
			if err != nil {
				return err
			}
			printDashboard(result)

		case "search":
			if len(args) < 1 {
				fmt.Println("Usage: /search <query> [scope]")
				return nil
			}
			scope := core.ScopeAll
			query := strings.Join(args, " ")
			if len(args) > 1 {
				if s := core.ParseSearchScope(args[len(args)-1]); s != core.ScopeAll {
					scope = s
					query = strings.Join(args[:len(args)-1], " ")
				}
			}
			result, err := svc.Search(ctx, query, scope)
			if err != nil {
				return err
			}
			printSearch(result)

		case "theme":
			if len(args) > 0 {
				if err := svc.SetTheme(ctx, replUser, strings.ToLower(args[0])); err != nil {
					return err
				}
			}
			theme, err := svc.Theme(ctx, replUser)
			if err != nil {
				return err
			}
			fmt.Printf("Theme: %s\n", theme)

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			if err != nil {
				fmt.Println()
				break
			}
			continue
		}

		// Slash prefix → deterministic command dispatcher.
		if strings.HasPrefix(input, "/") {
			if dispErr := dispatchSlash(input); dispErr != nil {
				if dispErr == errExit {
					fmt.Println("Goodbye!")
					break
				}
				fmt.Printf("Error: %v\n", dispErr)
			}
			continue
		}

		// Anything else is a global search.
		result, searchErr := svc.Search(ctx, input, core.ScopeAll)
		if searchErr != nil {
			fmt.Printf("Error: %v\n", searchErr)
			continue
		}
		printSearch(result)
	}
}

func printHelp() {
	fmt.Println(`Commands:
  /orders [status] [page]     list orders, optionally filtered by status
  /order <id>                 show one order with items and timeline
  /status <id> <status>       move an order to a new status
  /new-order                  interactive order creation
  /products [category] [page] list the catalog
  /stock                      list stock levels
  /low                        list items at or below reorder point
  /restock <id> <qty>         receive stock for an item
  /reports                    list generated reports
  /notifications              list notifications
  /read <id>                  mark one notification read
  /read-all                   mark everything read
  /dashboard                  KPI and activity summary
  /search <query> [scope]     search orders, products, customers
  /theme [light|dark]         show or set the console theme
  /exit                       quit

Any input without a leading slash runs a global search.`)
}
