package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Gunvolt24/inventory_search/config"
	"github.com/Gunvolt24/inventory_search/internal/app"
	"github.com/Gunvolt24/inventory_search/internal/domain"
	"github.com/Gunvolt24/inventory_search/internal/orchestrator"
	"github.com/Gunvolt24/inventory_search/pkg/logger"
	"github.com/Gunvolt24/inventory_search/pkg/metrics"
	"github.com/joho/godotenv"
)

// consoleNotifier — уведомления оркестратора в stderr.
type consoleNotifier struct{}

func (consoleNotifier) Info(_ context.Context, msg string)    { fmt.Fprintln(os.Stderr, "info: "+msg) }
func (consoleNotifier) Warning(_ context.Context, msg string) { fmt.Fprintln(os.Stderr, "warn: "+msg) }
func (consoleNotifier) Error(_ context.Context, msg string)   { fmt.Fprintln(os.Stderr, "error: "+msg) }
func (consoleNotifier) Success(_ context.Context, msg string) { fmt.Fprintln(os.Stderr, "ok: "+msg) }

// CLI-клиент поиска: один запрос через оркестратор (кэши, дебаунс,
// отмена — из конфигурации) к серверу на SEARCH_CLIENT_BASE_URL.
func main() {
	_ = godotenv.Load(".env.local")

	criteria := flag.String("q", "", "search criteria")
	by := flag.String("by", string(domain.ByPartNumber), "search field: partNumber|description|supplierSku")
	branches := flag.String("branches", "", "comma-separated branch filter")
	onlyAvailable := flag.Bool("only-available", false, "only items with availableQty > 0")
	peak := flag.String("peak", "", "print peak availability for the part number and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		panic(err)
	}
	defer func() { _ = cleanup() }()

	metrics.MustRegister()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results := make(chan *domain.SearchResult, 1)
	set := app.BuildSearchClient(&cfg, logg, consoleNotifier{}, func(res *domain.SearchResult) {
		results <- res
	})
	defer set.Orchestrator.Stop()

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	if *peak != "" {
		pk, err := set.Orchestrator.LookupPeak(ctx, *peak)
		if err != nil {
			fmt.Fprintf(os.Stderr, "peak lookup: %v\n", err)
			os.Exit(1)
		}
		_ = out.Encode(pk)
		return
	}

	form := orchestrator.Form{
		Criteria:      *criteria,
		By:            domain.SearchBy(*by),
		OnlyAvailable: *onlyAvailable,
	}
	for _, b := range strings.Split(*branches, ",") {
		if b = strings.TrimSpace(b); b != "" {
			form.Branches = append(form.Branches, b)
		}
	}

	set.Orchestrator.UpdateForm(form)
	set.Orchestrator.Submit()

	// Ошибка поколения приходит только уведомлением — ограничиваем ожидание.
	deadline := cfg.Client.Debounce + cfg.Client.Timeout + time.Second
	select {
	case res := <-results:
		_ = out.Encode(res)
	case <-ctx.Done():
	case <-time.After(deadline):
		fmt.Fprintln(os.Stderr, "search did not complete")
		os.Exit(1)
	}
}
