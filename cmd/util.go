package cmd

import (
	"cambio/api"
	"cambio/internal"
	"cambio/internal/app"
	"cambio/internal/domain"
	"cambio/internal/logger"
	"cambio/internal/repository"
	"cambio/internal/service"
	"cambio/internal/store"
	"fmt"

	"cambio/pkg/binance"
	"cambio/pkg/coingecko"
	"cambio/pkg/datosgov"
	"cambio/pkg/p2parmy"
)

func InitializeDependencies() (*api.ApiHandler, *internal.Config, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New()
	fileStore := store.NewFileStore(config.StateDir, log)

	alertRepository := repository.NewAlertRepository(fileStore)
	historyRepository := repository.NewHistoryRepository(fileStore)
	quoteCacheRepository := repository.NewQuoteCacheRepository(fileStore)

	quoteService := service.NewQuoteService(
		binance.NewClient(config.BinanceP2PURL),
		p2parmy.NewClient(config.P2PArmyURL),
	)
	marketDataService := service.NewMarketDataService(
		coingecko.NewClient(config.CoinGeckoURL),
		domain.TrackedAssets,
	)

	dashboard := app.NewDashboardApp(
		datosgov.NewClient(config.ReferenceRateURL),
		marketDataService,
		quoteService,
		alertRepository,
		historyRepository,
		quoteCacheRepository,
		config.PollInterval(),
	)

	return &api.ApiHandler{
		App:               dashboard,
		AlertRepository:   alertRepository,
		HistoryRepository: historyRepository,
	}, config, nil
}
