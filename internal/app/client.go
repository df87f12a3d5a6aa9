package app

import (
	"github.com/Gunvolt24/inventory_search/config"
	cachemem "github.com/Gunvolt24/inventory_search/internal/cache/memory"
	"github.com/Gunvolt24/inventory_search/internal/client"
	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/orchestrator"
	"github.com/Gunvolt24/inventory_search/internal/ports"
	"github.com/Gunvolt24/inventory_search/pkg/validate"
)

// SearchClientSet — собранный клиентский слой поиска:
// HTTP-клиент, два кэша и оркестратор поверх них.
type SearchClientSet struct {
	Orchestrator *orchestrator.Orchestrator
	HTTPClient   *client.HTTPClient
}

// BuildSearchClient — композиционный корень клиентской стороны.
// Кэши (ёмкость/TTL), базовый URL, таймаут и окно дебаунса берутся из конфигурации.
func BuildSearchClient(
	cfg *config.Config,
	logg ports.Logger,
	notifier ports.Notifier,
	onResult func(*domain.SearchResult),
) *SearchClientSet {
	searchCache := cachemem.NewCache[string, *client.Pending[domain.SearchResult]](
		"client-search", cfg.Cache.Capacity, cfg.Cache.TTL)
	peakCache := cachemem.NewCache[string, *client.Pending[domain.PeakAvailability]](
		"client-peak", cfg.Cache.Capacity, cfg.Cache.TTL)

	httpClient := client.NewHTTPClient(cfg.Client.BaseURL, cfg.Client.Timeout)

	orch := orchestrator.NewOrchestrator(
		httpClient,
		notifier,
		validate.NewQueryValidator(),
		logg,
		searchCache,
		peakCache,
		orchestrator.Config{Debounce: cfg.Client.Debounce},
		onResult,
	)

	return &SearchClientSet{Orchestrator: orch, HTTPClient: httpClient}
}
