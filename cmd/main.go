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

	cancelBookingHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/get_schedule"
	getSettingsHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/get_settings"
	getSummaryHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/get_summary"
	listBookingsHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/list_bookings"
	listDentistsHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/list_dentists"
	listServicesHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/list_services"
	searchPatientsHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/search_patients"
	updateBookingHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/update_booking"
	updateSettingsHandler "github.com/smiledental/DCS-SchedulingService/internal/api/handlers/update_settings"
	"github.com/smiledental/DCS-SchedulingService/internal/api/middleware"
	"github.com/smiledental/DCS-SchedulingService/internal/config"
	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	bookingRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/booking"
	clinicServiceRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/clinicservice"
	dentistRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/dentist"
	patientRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/patient"
	settingsRepo "github.com/smiledental/DCS-SchedulingService/internal/infra/storage/settings"
	bookingsService "github.com/smiledental/DCS-SchedulingService/internal/service/bookings"
	directoryService "github.com/smiledental/DCS-SchedulingService/internal/service/directory"
	patientsService "github.com/smiledental/DCS-SchedulingService/internal/service/patients"
	settingsService "github.com/smiledental/DCS-SchedulingService/internal/service/settings"
	createBookingUC "github.com/smiledental/DCS-SchedulingService/internal/usecase/create_booking"
	getScheduleUC "github.com/smiledental/DCS-SchedulingService/internal/usecase/get_schedule"
	getSummaryUC "github.com/smiledental/DCS-SchedulingService/internal/usecase/get_summary"
	listBookingsUC "github.com/smiledental/DCS-SchedulingService/internal/usecase/list_bookings"
	updateBookingUC "github.com/smiledental/DCS-SchedulingService/internal/usecase/update_booking"
	"github.com/smiledental/DCS-SchedulingService/pkg/dbmetrics"
	"github.com/smiledental/DCS-SchedulingService/pkg/logger"
	"github.com/smiledental/DCS-SchedulingService/pkg/metrics"
	"github.com/smiledental/DCS-SchedulingService/pkg/simpletxmanager"
	"github.com/smiledental/DCS-SchedulingService/pkg/timeslot"
	"github.com/smiledental/DCS-SchedulingService/pkg/txmanager"
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

	log.Info("Starting DCS-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	grid, err := buildGrid(cfg)
	if err != nil {
		log.Fatal("Invalid booking grid configuration: %v", err)
	}
	log.Info("Slot grid: %s-%s step %dm", grid.Open.Display(), grid.Close.Display(), grid.StepMinutes)

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	var (
		bookingRepository  *bookingRepo.Repository
		dentistRepository  *dentistRepo.Repository
		serviceRepository  *clinicServiceRepo.Repository
		patientRepository  *patientRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		dentistRepository = dentistRepo.NewRepository(wrappedDB)
		serviceRepository = clinicServiceRepo.NewRepository(wrappedDB)
		patientRepository = patientRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		dentistRepository = dentistRepo.NewRepository(db)
		serviceRepository = clinicServiceRepo.NewRepository(db)
		patientRepository = patientRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	directorySvc := directoryService.NewService(dentistRepository, serviceRepository, log)
	patientsSvc := patientsService.NewService(patientRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		dentistRepository,
		serviceRepository,
		patientRepository,
		settingsRepository,
		txMgr,
		grid,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		dentistRepository,
		serviceRepository,
		settingsRepository,
		txMgr,
		grid,
		log,
	)
	getScheduleUseCase := getScheduleUC.NewUseCase(
		bookingRepository,
		dentistRepository,
		settingsRepository,
		grid,
		log,
	)
	listBookingsUseCase := listBookingsUC.NewUseCase(bookingRepository, log)
	getSummaryUseCase := getSummaryUC.NewUseCase(bookingRepository, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(listBookingsUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getSummary := getSummaryHandler.NewHandler(getSummaryUseCase, log)
	searchPatients := searchPatientsHandler.NewHandler(patientsSvc, log)
	listDentists := listDentistsHandler.NewHandler(directorySvc, log)
	listServices := listServicesHandler.NewHandler(directorySvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Every clinic route requires the staff id header.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(log))

	// Bookings
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Schedule views
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/summary", getSummary.Handle).Methods(http.MethodGet)

	// Directory
	api.HandleFunc("/patients", searchPatients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dentists", listDentists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Capacity settings
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
		log.Info("Metrics collection stopped")
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

// buildGrid resolves the slot grid from config, falling back to the
// clinic defaults for any unset field.
func buildGrid(cfg *config.Config) (timeslot.Grid, error) {
	defaults := domain.DefaultGrid()

	open := defaults.Open
	if cfg.Booking.GridOpen != "" {
		parsed, err := timeslot.ParseDisplay(cfg.Booking.GridOpen)
		if err != nil {
			return timeslot.Grid{}, fmt.Errorf("grid_open: %w", err)
		}
		open = parsed
	}

	closeAt := defaults.Close
	if cfg.Booking.GridClose != "" {
		parsed, err := timeslot.ParseDisplay(cfg.Booking.GridClose)
		if err != nil {
			return timeslot.Grid{}, fmt.Errorf("grid_close: %w", err)
		}
		closeAt = parsed
	}

	step := defaults.StepMinutes
	if cfg.Booking.GridStepMin != 0 {
		step = cfg.Booking.GridStepMin
	}

	return timeslot.NewGrid(open, closeAt, step)
}
