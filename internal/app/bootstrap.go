package app

import (
	"context"

	"inventory-dashboard/internal/core"
	"inventory-dashboard/internal/localstore"
)

// NewSeededStores builds the full store set over kv, seeding every
// collection with the demo dataset. Collections persisted in the local
// store (notifications, users, themes) restore their snapshots; the rest
// start from seed on every boot.
func NewSeededStores(ctx context.Context, kv localstore.KV) Stores {
	return Stores{
		Orders:   core.NewOrderStore(core.SeedOrders()),
		Products: core.NewProductStore(core.SeedProducts()),
		Stock:    core.NewStockStore(core.SeedStockItems()),
		Reports: core.NewReportStore(
			core.SeedReports(),
			core.SeedSalesSeries(),
			core.SeedStockSeries(),
			core.SeedEngagement(),
			core.SeedKPIs(),
		),
		Activity:      core.NewActivityLog(core.SeedActivity(), 0),
		Notifications: core.NewNotificationStore(ctx, kv, core.SeedNotifications()),
		Users:         core.NewUserStore(ctx, kv),
		Themes:        core.NewThemeStore(kv),
	}
}
