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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/create_appointment"
	createPaymentHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/create_payment"
	getAppointmentHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/get_availability"
	getScheduleHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/get_schedule"
	getServiceHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/get_service"
	listAppointmentPaymentsHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/list_appointment_payments"
	listAppointmentsHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/list_services"
	rescheduleAppointmentHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/reschedule_appointment"
	transitionAppointmentHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/transition_appointment"
	updateScheduleDayHandler "github.com/m04kA/SPA-AppointmentService/internal/api/handlers/update_schedule_day"
	"github.com/m04kA/SPA-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SPA-AppointmentService/internal/config"
	"github.com/m04kA/SPA-AppointmentService/internal/domain"
	"github.com/m04kA/SPA-AppointmentService/internal/infra/cache"
	appointmentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/payment"
	scheduleRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SPA-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SPA-AppointmentService/internal/scheduling"
	appointmentsService "github.com/m04kA/SPA-AppointmentService/internal/service/appointments"
	catalogService "github.com/m04kA/SPA-AppointmentService/internal/service/catalog"
	paymentsService "github.com/m04kA/SPA-AppointmentService/internal/service/payments"
	scheduleService "github.com/m04kA/SPA-AppointmentService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/SPA-AppointmentService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/m04kA/SPA-AppointmentService/internal/usecase/get_availability"
	rescheduleAppointmentUC "github.com/m04kA/SPA-AppointmentService/internal/usecase/reschedule_appointment"
	transitionAppointmentUC "github.com/m04kA/SPA-AppointmentService/internal/usecase/transition_appointment"
	"github.com/m04kA/SPA-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SPA-AppointmentService/pkg/logger"
	"github.com/m04kA/SPA-AppointmentService/pkg/metrics"
	"github.com/m04kA/SPA-AppointmentService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SPA-AppointmentService...")

	loc, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to resolve business timezone: %v", err)
	}
	log.Info("Business timezone: %s, currency: %s", cfg.Business.Timezone, cfg.Business.Currency)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories run on the metric-wrapped executor when metrics are
	// enabled, on the bare pool otherwise.
	var (
		executor dbmetrics.DBExecutor
		beginner dbmetrics.TxBeginner
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor = wrappedDB
		beginner = wrappedDB
		log.Info("Database metrics collection started")
	} else {
		executor = db
		beginner = dbmetrics.SQLDB{DB: db}
	}

	appointmentRepository := appointmentRepo.NewRepository(executor)
	scheduleRepository := scheduleRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)
	paymentRepository := paymentRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)
	txManager := txmanager.NewTransactionManager(beginner)

	// Availability cache. Falls back to a noop when disabled.
	var availabilityCache cache.AvailabilityCache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedis(context.Background(), cfg.Cache.RedisAddr, "", 0)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
		availabilityCache = redisCache
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Cache.RedisAddr, cfg.Cache.TTLSeconds)
	} else {
		availabilityCache = cache.NewNoop()
		log.Info("Availability cache disabled")
	}

	// Shared scheduling core: the same calendar and conflict checker feed
	// both the availability read path and the validation write path.
	calendar := scheduling.NewCalendar(scheduleRepository, loc)
	conflictChecker := scheduling.NewConflictChecker(appointmentRepository)
	slotValidator := scheduling.NewValidator(calendar, conflictChecker, scheduling.RealClock{})

	// Services
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txManager, availabilityCache, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		calendar,
		availabilityCache,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		userRepository,
		slotValidator,
		txManager,
		availabilityCache,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		slotValidator,
		txManager,
		availabilityCache,
		log,
	)
	transitionAppointmentUseCase := transitionAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		paymentRepository,
		txManager,
		availabilityCache,
		cfg.Business.Currency,
		log,
	)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(transitionAppointmentUseCase, log)
	createPayment := createPaymentHandler.NewHandler(paymentsSvc, log)
	listAppointmentPayments := listAppointmentPaymentsHandler.NewHandler(paymentsSvc, log)
	updateScheduleDay := updateScheduleDayHandler.NewHandler(scheduleSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: availability, catalog and opening hours need no
	// authentication.
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Protected routes require the caller identity headers.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPost)

	// Lifecycle transitions and the cash journal are desk operations.
	desk := protected.PathPrefix("").Subrouter()
	desk.Use(middleware.RequireRoles(log, domain.RoleAdmin, domain.RoleReceptionist))

	desk.HandleFunc("/appointments/{id}/validate", transitionAppointment.HandleValidate).Methods(http.MethodPost)
	desk.HandleFunc("/appointments/{id}/confirm", transitionAppointment.HandleConfirm).Methods(http.MethodPost)
	desk.HandleFunc("/appointments/{id}/cancel", transitionAppointment.HandleCancel).Methods(http.MethodPost)
	desk.HandleFunc("/appointments/{id}/no-show", transitionAppointment.HandleNoShow).Methods(http.MethodPost)
	desk.HandleFunc("/appointments/{id}/done", transitionAppointment.HandleDone).Methods(http.MethodPost)
	desk.HandleFunc("/appointments/{id}/payments", listAppointmentPayments.Handle).Methods(http.MethodGet)
	desk.HandleFunc("/payments", createPayment.Handle).Methods(http.MethodPost)

	// Schedule template management is admin-only.
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRoles(log, domain.RoleAdmin))

	admin.HandleFunc("/schedule/{weekday}", updateScheduleDay.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
