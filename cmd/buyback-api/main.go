// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"buyback/internal/config"
	httptransport "buyback/internal/http"
	"buyback/internal/infra"
	buybackmaps "buyback/internal/maps"
	"buyback/internal/modules/catalog"
	"buyback/internal/modules/order"
	"buyback/internal/modules/quote"
	"buyback/internal/modules/rider"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	schemas, err := quote.LoadSchemas(cfg.Schema.Dir)
	if err != nil {
		log.Fatalf("load schemas: %v", err)
	}

	catalogStore := catalog.NewStore(dbPool)
	catalogSvc := catalog.NewService(catalogStore)

	quoteStore := quote.NewStore(dbPool, redisClient)
	quoteSvc := quote.NewService(quoteStore, catalogSvc, schemas)

	riderStore := rider.NewStore(dbPool)
	riderSvc := rider.NewService(riderStore)

	var geocoder order.Geocoder
	if cfg.Maps.APIKey != "" {
		g, err := buybackmaps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = g
	}

	orderStore := order.NewStore(dbPool)
	gate := order.NewGateStore(redisClient)
	orderSvc := order.NewService(orderStore, gate, riderSvc, quoteSvc, geocoder)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Quote: quoteSvc,
		Order: orderSvc,
		Rider: riderSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
