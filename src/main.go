package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/expiry-tracker/src/eventconsumers"
	"github.com/jiaming2012/expiry-tracker/src/eventpubsub"
	"github.com/jiaming2012/expiry-tracker/src/eventservices"
	"github.com/jiaming2012/expiry-tracker/src/handler"
	"github.com/jiaming2012/expiry-tracker/src/logger"
	"github.com/jiaming2012/expiry-tracker/src/telemetry"
	"github.com/jiaming2012/expiry-tracker/src/utils"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	if err := utils.InitEnvironmentVariables(utils.GetEnvOrDefault("PROJECTS_DIR", "."), utils.GetEnvOrDefault("GO_ENV", "development")); err != nil {
		log.Panic(err)
	}

	logger.SetupFromEnv()

	// Set up OpenTelemetry.
	otelShutdown, err := telemetry.Setup(ctx, telemetry.DefaultServiceName)
	if err != nil {
		log.Fatalf("failed to setup otel sdk: %v", err)
	}

	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			log.Errorf("failed to shutdown otel sdk: %v", err)
		}
	}()

	// Load config
	configFile := utils.GetEnvOrDefault("EXPIRIES_CONFIG", eventservices.DefaultConfigFile)
	config, err := eventservices.LoadExpiryConfig(configFile)
	if err != nil {
		log.Fatalf("failed to load expiries config: %v", err)
	}

	loc, err := config.Location()
	if err != nil {
		log.Fatalf("failed to load timezone: %v", err)
	}

	feed, err := eventservices.GetFeed(ctx, config, utils.NewHttpClient(utils.DefaultHttpTimeout))
	if err != nil {
		log.Fatalf("failed to set up feed: %v", err)
	}

	port, err := utils.GetEnv("PORT")
	if err != nil {
		log.Fatalf("$PORT not set: %v", err)
	}

	// Setup result pipeline
	bus := eventpubsub.New()
	store := eventconsumers.NewExpiryStateStore(config.Feed)
	if err := store.Subscribe(bus); err != nil {
		log.Fatalf("failed to subscribe expiry state store: %v", err)
	}

	worker := eventconsumers.NewExpiryRefreshWorker(ctx, &wg, config.Feed, feed, config.Whitelist(), loc, config.GetRefreshInterval(), bus)

	router := mux.NewRouter()
	handler.SetupHandler(router, store, worker, nil)

	// Setup web server
	srv := &http.Server{
		Handler:           router,
		Addr:              fmt.Sprintf(":%s", port),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Start web server
	go func() {
		log.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	worker.Start()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	log.WithFields(log.Fields{
		"feed":     config.Feed,
		"symbols":  config.Whitelist().Strings(),
		"interval": config.GetRefreshInterval(),
	}).Info("Main: init complete")

	// Block here until program is shut down
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shutdown server: %v", err)
	}

	// Stop the refresh worker
	cancel()

	// Wait for in-flight runs to finish
	wg.Wait()

	log.Info("Main: gracefully stopped!")
}
