// Package market implements the market bounded context: snapshot ingestion
// from the governance runtime.
package market

import (
	"context"

	arbApp "github.com/quantagov/quantum-arb/business/arbitrage/app"
	"github.com/quantagov/quantum-arb/business/market/domain"
	marketDI "github.com/quantagov/quantum-arb/business/market/di"
	"github.com/quantagov/quantum-arb/business/market/infra/feed"
	"github.com/quantagov/quantum-arb/internal/config"
	"github.com/quantagov/quantum-arb/internal/di"
	"github.com/quantagov/quantum-arb/internal/logger"
	"github.com/quantagov/quantum-arb/internal/monolith"
)

// Module implements the market bounded context.
type Module struct{}

// RegisterServices registers all market services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, marketDI.SnapshotSource, func(sr di.ServiceRegistry) arbApp.SnapshotSource {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		if cfg.Feed.Mode == config.FeedModeWebSocket {
			source, err := feed.NewWSSource(feed.WSConfig{
				URL:            cfg.Feed.WebSocketURL,
				InitialBackoff: cfg.Feed.InitialBackoff,
				MaxBackoff:     cfg.Feed.MaxBackoff,
				MaxReconnects:  cfg.Feed.MaxReconnects,
			}, log)
			if err != nil {
				panic("failed to create ws snapshot source: " + err.Error())
			}
			return source
		}

		markets := make([]feed.FixtureMarket, len(cfg.Markets))
		for i, mc := range cfg.Markets {
			conds := make([]domain.PoolState, len(mc.Conditionals))
			for j, p := range mc.Conditionals {
				conds[j] = domain.PoolState{
					AssetReserve:  p.AssetReserve,
					StableReserve: p.StableReserve,
					FeeBps:        p.FeeBps,
				}
			}
			markets[i] = feed.FixtureMarket{
				ID: mc.ID,
				Spot: domain.PoolState{
					AssetReserve:  mc.Spot.AssetReserve,
					StableReserve: mc.Spot.StableReserve,
					FeeBps:        mc.Spot.FeeBps,
				},
				Conditionals: conds,
			}
		}
		return feed.NewFixtureSource(markets, cfg.Feed.ReplayInterval, log)
	})

	return nil
}

// Startup initializes the market module. The source itself connects lazily
// when the detector subscribes.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	mono.Logger().Info(ctx, "market module started", "feed_mode", mono.Config().Feed.Mode)
	return nil
}
