package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/solucion-eventos/quotation-api/internal/api"
	"github.com/solucion-eventos/quotation-api/internal/core/service"
	"github.com/solucion-eventos/quotation-api/internal/infrastructure/catalog"
	"github.com/solucion-eventos/quotation-api/internal/infrastructure/config"
	"github.com/solucion-eventos/quotation-api/internal/infrastructure/pdf"
	"github.com/solucion-eventos/quotation-api/internal/infrastructure/session"
	"github.com/solucion-eventos/quotation-api/internal/infrastructure/whatsapp"
	"github.com/solucion-eventos/quotation-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting quotation api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Dependencies ---
	company := cfg.CompanyMetadata()
	catalogRepo := catalog.NewRepository()

	store := session.NewStore(log)
	store.StartSweeper(ctx)

	quoteService := service.NewQuoteService(
		catalogRepo,
		store,
		service.NewClientValidator(cfg.Quote.RequireCI),
		pdf.NewRenderer(pdf.NewQRGenerator(), log),
		whatsapp.NewLinkBuilder(),
		company,
		service.QuoteSettings{
			SessionTTL:        cfg.Quote.SessionTTL,
			ValidityDays:      cfg.Quote.ValidityDays,
			DepositPercent:    cfg.Quote.DepositPercent,
			CancellationHours: cfg.Quote.CancellationHours,
		},
		log,
	)

	e := api.NewRouter(quoteService, catalogRepo, company, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
