package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "loan-offer/http"
	"loan-offer/repository"
	"loan-offer/service"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the offer HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cache, closeCache, err := openCache(ctx, cfg.Cache, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Error("error closing cache", zap.String("op", "cli.serve"), zap.Error(err))
		}
	}()

	sanctions := repository.NewSanctionRepository(cache)
	offerService := service.NewOfferService(sanctions, log)
	tenureService := service.NewTenureService(offerService, log)
	sanctionService := service.NewSanctionService(sanctions, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Offers:    httpLayer.NewOfferHandler(offerService, log),
		Tenures:   httpLayer.NewTenureHandler(tenureService, log),
		Sanctions: httpLayer.NewSanctionHandler(sanctionService, log),
	}, rateLimiter, log, httpLayer.RouterOptions{TrustProxy: cfg.Server.TrustProxy})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("offer API listening",
			zap.String("op", "cli.serve"),
			zap.String("address", cfg.Server.Address),
			zap.String("cache", cfg.Cache.Backend),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		log.Info("shutting down server", zap.String("op", "cli.serve"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("error during server shutdown", zap.String("op", "cli.serve"), zap.Error(err))
		return err
	}

	log.Info("server exited", zap.String("op", "cli.serve"))
	return nil
}
