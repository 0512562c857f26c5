package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hocs-app/hocs/internal/alerting"
	"github.com/hocs-app/hocs/internal/api"
	"github.com/hocs-app/hocs/internal/auth"
	"github.com/hocs-app/hocs/internal/config"
	"github.com/hocs-app/hocs/internal/cron"
	"github.com/hocs-app/hocs/internal/migrate"
	"github.com/hocs-app/hocs/internal/notification"
	"github.com/hocs-app/hocs/internal/opportunity"
	"github.com/hocs-app/hocs/internal/programs"
	"github.com/hocs-app/hocs/internal/property"
	"github.com/hocs-app/hocs/internal/storage"
	"github.com/hocs-app/hocs/internal/utility"
)

func main() {
	cfg := config.FromEnv()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional auto-migration: run `goose up` on startup when enabled.
	if cfg.AutoMigrate && cfg.DBDriver != "" && cfg.DBDriver != "memory" {
		if err := migrate.Up(ctx, cfg.DBDriver, cfg.DBDSN); err != nil {
			log.Printf("auto-migration failed: %v", err)
		}
	}

	st, err := storage.Open(ctx, storage.Config{
		Driver:      cfg.DBDriver,
		DSN:         cfg.DBDSN,
		AutoMigrate: cfg.AutoMigrate,
	})
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer st.Close()

	authSvc, err := auth.NewService(st)
	if err != nil {
		log.Fatalf("init auth: %v", err)
	}

	dir := utility.NewDirectory()
	resolver := utility.NewResolver(dir)

	deps := api.Deps{
		Storage:    st,
		Resolver:   resolver,
		Catalog:    programs.NewCatalog(),
		Generator:  property.NewGenerator(resolver),
		Engine:     opportunity.NewEngine(),
		Notifier:   notification.NewService(st),
		Auth:       authSvc,
		Alerts:     alerting.NewService(alerting.DefaultAlertConfig()),
		SessionTTL: cfg.SessionTTL,
	}

	// Session expiry sweeper runs alongside the HTTP server.
	go func() {
		if err := cron.RunSweeper(ctx, st, deps.Alerts); err != nil && ctx.Err() == nil {
			log.Printf("sweeper stopped: %v", err)
		}
	}()

	mux := api.NewMux(deps)

	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	log.Printf("HOCS listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
