package main

import (
	"context"
	"fmt"
	"mfilmrate/pkg/discovery"
	"mfilmrate/pkg/discovery/consul"
	"mfilmrate/pkg/limiter"
	"mfilmrate/pkg/logging"
	"mfilmrate/pkg/metrics"
	"mfilmrate/pkg/tracing"
	"mfilmrate/review/configs"
	"mfilmrate/review/internal/controller/review"
	eventgateway "mfilmrate/review/internal/gateway/event/http"
	filmgateway "mfilmrate/review/internal/gateway/film/http"
	usergateway "mfilmrate/review/internal/gateway/user/http"
	httphandler "mfilmrate/review/internal/handler/http"
	"mfilmrate/review/internal/repository/mysql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const serviceName = "review"

func main() {
	logConfig := zap.NewProductionConfig()
	log, err := logConfig.Build()
	if err != nil {
		panic(err)
	}
	log = log.With(zap.String(logging.FieldService, serviceName))

	f, err := os.Open("defaults.yaml")
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn("failed to close file", zap.Error(err))
		}
	}()
	var cfg configs.ServiceConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic(err)
	}

	log.Info("Starting the service", zap.Int(logging.FieldPort, cfg.API.Port))

	ctx, cancel := context.WithCancel(context.Background())

	tp, err := tracing.NewJaegerProvider(cfg.Jaeger.URL, serviceName)
	if err != nil {
		log.Fatal("Failed to initialize jaeger provider", zap.Error(err))
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Fatal("Failed to shutdown jaeger provider", zap.Error(err))
		}
	}()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address, log)
	if err != nil {
		panic(err)
	}
	instanceID := discovery.GenerateInstanceID(serviceName)
	if err := registry.Register(ctx, instanceID, serviceName, fmt.Sprintf("review:%d", cfg.API.Port)); err != nil {
		panic(err)
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(1 * time.Second):
				if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
					log.Warn("Failed to report healthy state", zap.Error(err))
				}
			}
		}
	}()
	defer func() {
		if err := registry.Deregister(ctx, instanceID, serviceName); err != nil {
			log.Warn("Failed to deregister service", zap.Error(err))
		}
	}()

	repo, err := mysql.New(cfg.DatabaseConfig.Mysql, log)
	if err != nil {
		panic(err)
	}

	users := usergateway.New(registry, log)
	films := filmgateway.New(registry, log)
	events := eventgateway.New(registry, log)
	svc := review.New(repo, users, films, events, log)

	scope, closer := metrics.NewMetricsReporter(log, serviceName, cfg.Prometheus.MetricsPort)
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close Prometheus reporter scope", zap.Error(err))
		}
	}()

	h := httphandler.New(svc, log, scope)
	mux := http.NewServeMux()
	h.Register(mux)

	l := limiter.New(log, 100, 50)
	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.API.Port),
		Handler: l.Middleware(mux),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := <-sigChan
		cancel()
		log.Info("Got signal, attempting graceful shutdown", zap.Stringer(logging.FieldSignal, s))
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Warn("Failed to shut down the HTTP server", zap.Error(err))
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
	wg.Wait()
}
