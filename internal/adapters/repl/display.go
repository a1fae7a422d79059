package repl

import (
	"fmt"
	"strings"

	"inventory-dashboard/internal/app"
	"inventory-dashboard/internal/core"
)

func pageFooter(page, totalPages, totalItems int) string {
	if totalPages <= 1 {
		return fmt.Sprintf("  %d item(s)", totalItems)
	}
	return fmt.Sprintf("  Page %d of %d — %s items", page, totalPages,
		core.FormatNumberWithComma(int64(totalItems)))
}

func printOrders(result *app.OrderPageResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("  ORDERS")
	fmt.Println(strings.Repeat("=", 80))
	if len(result.Items) == 0 {
		fmt.Println("  No orders found.")
		fmt.Println(strings.Repeat("=", 80))
		return
	}
	fmt.Printf("  %-6s %-10s %-22s %-12s %16s  %s\n", "ID", "ORDER NO", "CUSTOMER", "STATUS", "TOTAL", "DATE")
	fmt.Println(strings.Repeat("-", 80))
	for _, o := range result.Items {
		fmt.Printf("  %-6s %-10s %-22s %-12s %16s  %s\n",
			o.ID, o.OrderNumber, o.Customer.Name, o.Status.Label(),
			core.FormatCurrency(o.Total, ""), core.FormatDateShort(o.OrderDate))
	}
	fmt.Println(strings.Repeat("-", 80))
	fmt.Println(pageFooter(result.Page.Page, result.TotalPages, result.TotalItems))
	fmt.Println(strings.Repeat("=", 80))
}

func printOrderDetail(o core.Order) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  ORDER %s (%s)\n", o.OrderNumber, o.Status.Label())
	fmt.Printf("  Customer : %s <%s>\n", o.Customer.Name, o.Customer.Email)
	if o.ShippingAddress != "" {
		fmt.Printf("  Ship to  : %s\n", o.ShippingAddress)
	}
	fmt.Printf("  Date     : %s\n", core.FormatDate(o.OrderDate))
	fmt.Println(strings.Repeat("-", 72))
	for _, it := range o.Items {
		fmt.Printf("  %-32s x%-4d %16s  %16s\n",
			it.Name, it.Quantity, core.FormatCurrency(it.Price, ""), core.FormatCurrency(it.LineTotal(), ""))
	}
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  %-38s %16s\n", "Subtotal", core.FormatCurrency(o.Subtotal, ""))
	fmt.Printf("  %-38s %16s\n", "Shipping", core.FormatCurrency(o.Shipping, ""))
	fmt.Printf("  %-38s %16s\n", "Tax", core.FormatCurrency(o.Tax, ""))
	fmt.Printf("  %-38s %16s\n", "TOTAL", core.FormatCurrency(o.Total, ""))
	if len(o.Timeline) > 0 {
		fmt.Println(strings.Repeat("-", 72))
		fmt.Println("  Timeline:")
		for _, step := range o.Timeline {
			mark := " "
			if step.Completed {
				mark = "x"
			}
			fmt.Printf("    [%s] %-12s %s\n", mark, step.Status.Label(), core.FormatDate(step.Date))
		}
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printProducts(result *app.ProductPageResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 76))
	fmt.Println("  PRODUCTS")
	fmt.Println(strings.Repeat("=", 76))
	if len(result.Items) == 0 {
		fmt.Println("  No products found.")
		fmt.Println(strings.Repeat("=", 76))
		return
	}
	fmt.Printf("  %-6s %-26s %-10s %-12s %16s %6s\n", "ID", "NAME", "SKU", "CATEGORY", "PRICE", "STOCK")
	fmt.Println(strings.Repeat("-", 76))
	for _, p := range result.Items {
		fmt.Printf("  %-6s %-26s %-10s %-12s %16s %6d\n",
			p.ID, p.Name, p.SKU, p.Category, core.FormatCurrency(p.Price, ""), p.Stock)
	}
	fmt.Println(strings.Repeat("-", 76))
	fmt.Println(pageFooter(result.Page.Page, result.TotalPages, result.TotalItems))
	fmt.Println(strings.Repeat("=", 76))
}

func printStock(result *app.StockPageResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 76))
	fmt.Println("  STOCK LEVELS")
	fmt.Println(strings.Repeat("=", 76))
	if len(result.Items) == 0 {
		fmt.Println("  No stock records.")
		fmt.Println(strings.Repeat("=", 76))
		return
	}
	fmt.Printf("  %-6s %-26s %-10s %8s %8s  %-10s %s\n", "ID", "NAME", "SKU", "QTY", "REORDER", "STATUS", "UPDATED")
	fmt.Println(strings.Repeat("-", 76))
	for _, s := range result.Items {
		fmt.Printf("  %-6s %-26s %-10s %8d %8d  %-10s %s\n",
			s.ID, s.Name, s.SKU, s.Quantity, s.ReorderPoint, s.Status.Label(), core.RelativeTime(s.LastUpdated))
	}
	fmt.Println(strings.Repeat("-", 76))
	fmt.Println(pageFooter(result.Page.Page, result.TotalPages, result.TotalItems))
	fmt.Println(strings.Repeat("=", 76))
}

func printLowStock(result *app.StockAlertsResult) {
	if len(result.Items) == 0 {
		fmt.Println("No items at or below reorder point.")
		return
	}
	fmt.Println()
	fmt.Printf("  %d item(s) need attention:\n", len(result.Items))
	for _, s := range result.Items {
		fmt.Printf("  - %-26s %d on hand, reorder at %d (%s)\n",
			s.Name, s.Quantity, s.ReorderPoint, s.Status.Label())
	}
}

func printReports(result *app.ReportPageResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  REPORTS")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Items) == 0 {
		fmt.Println("  No reports generated.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-6s %-30s %-10s %-12s %s\n", "ID", "NAME", "TYPE", "STATUS", "DATE")
	fmt.Println(strings.Repeat("-", 72))
	for _, r := range result.Items {
		fmt.Printf("  %-6s %-30s %-10s %-12s %s\n",
			r.ID, r.Name, r.Type, r.Status, core.FormatDateShort(r.Date))
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printNotifications(result *app.NotificationsResult) {
	fmt.Println()
	fmt.Printf("  NOTIFICATIONS — %d unread\n", result.UnreadCount)
	fmt.Println(strings.Repeat("-", 72))
	if len(result.Notifications) == 0 {
		fmt.Println("  No notifications.")
		return
	}
	for _, n := range result.Notifications {
		mark := "*"
		if n.Read {
			mark = " "
		}
		fmt.Printf("  [%s] #%-3d %-8s %-28s %s\n", mark, n.ID, n.Priority, n.Title, core.RelativeTime(n.Timestamp))
		fmt.Printf("            %s\n", n.Description)
	}
}

func printSearch(result *app.SearchResult) {
	if result.Query == "" {
		fmt.Println("Search cleared.")
		return
	}
	if len(result.Results.All) == 0 {
		fmt.Printf("No results for %q.\n", result.Query)
		return
	}
	fmt.Printf("\n  Results for %q:\n", result.Query)
	section := func(name string, hits []core.SearchHit) {
		if len(hits) == 0 {
			return
		}
		fmt.Printf("  %s:\n", name)
		for _, h := range hits {
			line := "    - " + h.Title
			if h.Status != "" {
				line += " (" + h.Status + ")"
			}
			if h.Email != "" {
				line += " <" + h.Email + ">"
			}
			fmt.Println(line)
		}
	}
	section("Orders", result.Results.Orders)
	section("Products", result.Results.Products)
	section("Customers", result.Results.Customers)
}

func printDashboard(result *app.DashboardResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  DASHBOARD")
	fmt.Println(strings.Repeat("=", 72))
	for _, k := range result.KPIs {
		fmt.Printf("  %-24s %s\n", k.Name, k.Value)
	}
	fmt.Printf("  %-24s %d\n", "Open Orders", result.OpenOrders)
	fmt.Printf("  %-24s %d\n", "Unread Notifications", result.UnreadCount)
	if len(result.LowStock) > 0 {
		fmt.Println(strings.Repeat("-", 72))
		fmt.Printf("  Low stock (%d):\n", len(result.LowStock))
		for _, s := range result.LowStock {
			fmt.Printf("    - %s: %d on hand (%s)\n", s.Name, s.Quantity, s.Status.Label())
		}
	}
	if len(result.RecentActivity) > 0 {
		fmt.Println(strings.Repeat("-", 72))
		fmt.Println("  Recent activity:")
		for _, a := range result.RecentActivity {
			fmt.Printf("    %-12s %-44s %s\n", a.Type, a.Content, core.RelativeTime(a.Timestamp))
		}
	}
	fmt.Println(strings.Repeat("=", 72))
}
