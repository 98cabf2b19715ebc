package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/ironroutine/internal/config"
	"github.com/2beens/ironroutine/internal/middleware"
	"github.com/2beens/ironroutine/internal/misc"
	"github.com/2beens/ironroutine/internal/progression"
	"github.com/2beens/ironroutine/internal/readiness"
	"github.com/2beens/ironroutine/internal/reminders"
	"github.com/2beens/ironroutine/internal/routine"
	"github.com/2beens/ironroutine/internal/store"
	"github.com/2beens/ironroutine/internal/telemetry/metrics"
	"github.com/2beens/ironroutine/internal/telemetry/tracing"
	"github.com/2beens/ironroutine/internal/weekly"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	location *time.Location

	redisClient *redis.Client
	tracker     *routine.Tracker
	engine      *progression.Engine
	weeklyRepo  *weekly.Repo
	checker     *readiness.Checker
	reminders   *reminders.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	location, err := time.LoadLocation(params.Config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone [%s]: %w", params.Config.Timezone, err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("ironroutine", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "ironroutine-backend", rdb)
	if err != nil {
		return nil, err
	}

	redisStore := store.NewRedisStore(rdb)
	engine := progression.NewEngine(redisStore)

	return &Server{
		versionInfo:    params.VersionInfo,
		config:         params.Config,
		location:       location,
		redisClient:    rdb,
		tracker:        routine.NewTracker(redisStore),
		engine:         engine,
		weeklyRepo:     weekly.NewRepo(redisStore),
		checker:        readiness.NewChecker(redisStore),
		reminders:      reminders.NewService(redisStore),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.versionInfo)
	miscHandler.SetupRoutes(r)

	routineHandler := routine.NewHandler(s.tracker, s.engine, s.metricsManager, s.location)
	r.HandleFunc("/routine/today", routineHandler.HandleToday).Methods("GET", "OPTIONS").Name("routine-today")

	progressionHandler := progression.NewHandler(s.engine, s.metricsManager)
	r.HandleFunc("/progression", progressionHandler.HandleList).Methods("GET", "OPTIONS").Name("list-progressions")

	weeklyHandler := weekly.NewHandler(s.weeklyRepo, s.location)
	r.HandleFunc("/metrics/weekly", weeklyHandler.HandleList).Methods("GET", "OPTIONS").Name("list-weekly-metrics")

	readinessHandler := readiness.NewHandler(s.checker, s.location)
	r.HandleFunc("/readiness", readinessHandler.HandleStatus).Methods("GET", "OPTIONS").Name("readiness-status")

	remindersHandler := reminders.NewHandler(s.reminders)
	r.HandleFunc("/settings/reminders", remindersHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-reminders")

	// state-changing endpoints share a rate limit
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	mutations := r.Methods("POST", "PUT", "OPTIONS").Subrouter()
	mutations.HandleFunc("/routine/toggle/{exerciseId}", routineHandler.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-exercise")
	mutations.HandleFunc("/routine/log", routineHandler.HandleLog).Methods("POST", "OPTIONS").Name("log-workout")
	mutations.HandleFunc("/progression/rate", progressionHandler.HandleRate).Methods("POST", "OPTIONS").Name("rate-exercise")
	mutations.HandleFunc("/metrics/weekly", weeklyHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-weekly-metrics")
	mutations.HandleFunc("/readiness", readinessHandler.HandleSubmit).Methods("POST", "OPTIONS").Name("submit-readiness")
	mutations.HandleFunc("/settings/reminders", remindersHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-reminders")
	mutations.Use(middleware.RateLimit(
		reqRateLimiter,
		"mutations",
		s.config.MutationsRateLimitAllowedPerMin,
		s.metricsManager,
	))

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(
		s.config.PrometheusMetricsHost,
		strconv.Itoa(s.config.PrometheusMetricsPort),
	)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}
