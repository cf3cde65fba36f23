package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	advanceStatusHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/advance_status"
	deleteAppointmentHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/delete_appointment"
	dismissCheckinHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/dismiss_checkin"
	dragAppointmentHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/drag_appointment"
	getAgendaHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_agenda"
	getAgendaVersionHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_agenda_version"
	getAppointmentHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_appointment"
	getAppointmentCheckinsHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_appointment_checkins"
	getCheckinRecordHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_checkin_record"
	getCheckinsHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_checkins"
	getFiltersHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_filters"
	getProfessionalsHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_professionals"
	getStoresHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/get_stores"
	healthHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/health"
	moveAppointmentHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/move_appointment"
	openCheckinHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/open_checkin"
	resetFiltersHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/reset_filters"
	saveAppointmentHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/save_appointment"
	submitCheckinHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/submit_checkin"
	updateFiltersHandler "github.com/m04kA/SMC-GroomingAgenda/internal/api/handlers/update_filters"
	"github.com/m04kA/SMC-GroomingAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingAgenda/internal/checkin"
	"github.com/m04kA/SMC-GroomingAgenda/internal/config"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	filtersCache "github.com/m04kA/SMC-GroomingAgenda/internal/infra/cache/filters"
	checkinRepo "github.com/m04kA/SMC-GroomingAgenda/internal/infra/storage/checkin"
	filtersRepo "github.com/m04kA/SMC-GroomingAgenda/internal/infra/storage/filters"
	backendClient "github.com/m04kA/SMC-GroomingAgenda/internal/integrations/backend"
	filtersService "github.com/m04kA/SMC-GroomingAgenda/internal/service/filters"
	"github.com/m04kA/SMC-GroomingAgenda/internal/session"
	advanceStatusUC "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/advance_status"
	buildAgendaUC "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/build_agenda"
	deleteAppointmentUC "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/delete_appointment"
	loadAgendaUC "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/load_agenda"
	moveAppointmentUC "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/move_appointment"
	openCheckinUC "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/open_checkin"
	saveAppointmentUC "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/save_appointment"
	submitCheckinUC "github.com/m04kA/SMC-GroomingAgenda/internal/usecase/submit_checkin"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/logger"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-GroomingAgenda...")
	log.Info("Configuration loaded from config.toml (timezone=%s, poll=%s, filter_store=%s)",
		cfg.Agenda.Timezone, cfg.Agenda.PollInterval(), cfg.Agenda.FilterStore)

	rootCtx, stopRoot := context.WithCancel(context.Background())
	defer stopRoot()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (фильтры и check-in)
	var dbExec dbmetrics.DBExecutor
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			dbExec = dbmetrics.WrapWithDefault(db, metricsCollector, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		} else {
			dbExec = db
		}
	}

	// Хранилище фильтров
	var filterRepository filtersService.Repository
	switch cfg.Agenda.FilterStore {
	case config.FilterStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s: %v (selections fall back to defaults until it is)", cfg.Redis.Addr, err)
		}
		cancel()
		filterRepository = filtersCache.NewRepository(rdb, time.Duration(cfg.Redis.TTLHours)*time.Hour)
		log.Info("Filter selections stored in Redis (addr=%s)", cfg.Redis.Addr)
	case config.FilterStorePostgres:
		filterRepository = filtersRepo.NewRepository(dbExec)
		log.Info("Filter selections stored in Postgres")
	default:
		filterRepository = filtersService.NewMemoryRepository()
		log.Info("Filter selections kept in memory")
	}
	filterSvc := filtersService.NewService(filterRepository, log)

	// Хранилище check-in
	var checkinRepository submitCheckinUC.CheckinRepository
	if dbExec != nil {
		checkinRepository = checkinRepo.NewRepository(dbExec)
	} else {
		checkinRepository = checkinRepo.NewMemoryRepository()
		log.Warn("Database disabled: check-in records are kept in memory")
	}

	// Инициализируем интеграционный клиент
	gateway := backendClient.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	loc := cfg.Agenda.Location()
	fallback := domain.DayHours{Open: cfg.Agenda.DefaultOpen, Close: cfg.Agenda.DefaultClose}

	// Check-in: ожидающие формы и воркер
	pending := checkin.NewPending(time.Duration(cfg.Checkin.PendingTTLMins) * time.Minute)
	hydrator := openCheckinUC.NewHydrator(gateway, log)
	dispatcher := checkin.NewDispatcher(hydrator, pending, checkin.Options{
		QueueSize:  cfg.Checkin.QueueSize,
		RetryLimit: cfg.Checkin.RetryLimit,
		RetryDelay: cfg.Checkin.RetryDelay(),
	}, log, metricsCollector)
	go dispatcher.Run(rootCtx)

	// Инициализируем use cases
	loadAgendaUseCase := loadAgendaUC.NewUseCase(gateway, loc, log, metricsCollector)
	buildAgendaUseCase := buildAgendaUC.NewUseCase(loc, fallback, log)
	moveAppointmentUseCase := moveAppointmentUC.NewUseCase(gateway, loadAgendaUseCase, loc, fallback, log, metricsCollector)
	advanceStatusUseCase := advanceStatusUC.NewUseCase(gateway, loadAgendaUseCase, dispatcher, log, metricsCollector)
	saveAppointmentUseCase := saveAppointmentUC.NewUseCase(gateway, loadAgendaUseCase, loc, log)
	deleteAppointmentUseCase := deleteAppointmentUC.NewUseCase(gateway, loadAgendaUseCase, log)
	openCheckinUseCase := openCheckinUC.NewUseCase(dispatcher, log)
	submitCheckinUseCase := submitCheckinUC.NewUseCase(checkinRepository, pending, log)

	// Сессии агенды
	registry := session.NewRegistry(rootCtx, loadAgendaUseCase, filterSvc, session.Options{
		PollInterval: cfg.Agenda.PollInterval(),
		IdleTTL:      cfg.Agenda.SessionTTL(),
	}, log, metricsCollector)
	go registry.Run(rootCtx)

	// Инициализируем handlers
	getStores := getStoresHandler.NewHandler(loadAgendaUseCase, log)
	getProfessionals := getProfessionalsHandler.NewHandler(loadAgendaUseCase, buildAgendaUseCase, log)
	getAgenda := getAgendaHandler.NewHandler(loadAgendaUseCase, buildAgendaUseCase, loc, log)
	getAgendaVersion := getAgendaVersionHandler.NewHandler(log)
	saveAppointment := saveAppointmentHandler.NewHandler(saveAppointmentUseCase, loadAgendaUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(saveAppointmentUseCase, loc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(deleteAppointmentUseCase, log)
	dragAppointment := dragAppointmentHandler.NewHandler(moveAppointmentUseCase, log)
	moveAppointment := moveAppointmentHandler.NewHandler(moveAppointmentUseCase, log)
	advanceStatus := advanceStatusHandler.NewHandler(advanceStatusUseCase, log)
	getFilters := getFiltersHandler.NewHandler(log)
	updateFilters := updateFiltersHandler.NewHandler(filterSvc, log)
	resetFilters := resetFiltersHandler.NewHandler(filterSvc, log)
	getCheckins := getCheckinsHandler.NewHandler(pending, log)
	openCheckin := openCheckinHandler.NewHandler(openCheckinUseCase, log)
	dismissCheckin := dismissCheckinHandler.NewHandler(pending, log)
	submitCheckin := submitCheckinHandler.NewHandler(submitCheckinUseCase, log)
	getCheckinRecord := getCheckinRecordHandler.NewHandler(submitCheckinUseCase, log)
	getAppointmentCheckins := getAppointmentCheckinsHandler.NewHandler(submitCheckinUseCase, log)
	health := healthHandler.NewHandler(registry)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.JWTSecret))
	api.Use(middleware.Session(registry))

	// --- Агенда ---
	api.HandleFunc("/stores", getStores.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId}/professionals", getProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId}/agenda", getAgenda.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId}/agenda/version", getAgendaVersion.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", saveAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", saveAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{appointmentId}/drag", dragAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}/move", moveAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}/status/advance", advanceStatus.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}/checkins", getAppointmentCheckins.Handle).Methods(http.MethodGet)

	// --- Фильтры ---
	api.HandleFunc("/filters", getFilters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/filters", updateFilters.Handle).Methods(http.MethodPut)
	api.HandleFunc("/filters", resetFilters.Handle).Methods(http.MethodDelete)

	// --- Check-in ---
	api.HandleFunc("/checkins", getCheckins.Handle).Methods(http.MethodGet)
	api.HandleFunc("/checkins", openCheckin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/checkins/{checkinId}", dismissCheckin.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/checkins/{checkinId}/submit", submitCheckin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/checkin-records/{recordId}", getCheckinRecord.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сессии, поллеры и воркер check-in
	stopRoot()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
