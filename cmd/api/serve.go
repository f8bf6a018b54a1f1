package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"dairy-records/internal/adapters/auth/tokenissuer"
	pg "dairy-records/internal/adapters/storage/postgres"
	"dairy-records/internal/router"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP (API, UI, /metrics, swagger)",
	Long: `Levanta el servidor HTTP.

Con DB_DSN vacío usa storage in-memory; si no, aplica las migraciones pendientes
y usa Postgres. Con AUTH_BASE_URL vacío acepta el header X-Debug-User-ID (solo dev).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	opts := router.Options{
		DB:             db,
		Logger:         log,
		CurrencySymbol: cfg.CurrencySymbol,
	}
	if cfg.AuthBaseURL != "" {
		client, err := tokenissuer.NewClient(tokenissuer.Config{
			BaseURL: cfg.AuthBaseURL,
			APIKey:  cfg.AuthAPIKey,
			Timeout: cfg.AuthTimeout,
		})
		if err != nil {
			return err
		}
		opts.AuthVerifier = tokenissuer.NewVerifier(client)
	} else {
		log.Warn("AUTH_BASE_URL not set, accepting X-Debug-User-ID header")
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.Bool("postgres", db != nil))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// openDB devuelve nil sin DB_DSN (modo in-memory).
func openDB(ctx context.Context) (*sql.DB, error) {
	if cfg.DBDSN == "" {
		return nil, nil
	}
	if err := pg.Migrate(ctx, cfg.DBDSN, log); err != nil {
		return nil, err
	}
	return pg.Open(cfg.DBDSN)
}
