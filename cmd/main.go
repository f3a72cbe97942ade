package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	cancelappointmenthandler "github.com/salonix/appointment-service/internal/api/handlers/cancel_appointment"
	createappointmenthandler "github.com/salonix/appointment-service/internal/api/handlers/create_appointment"
	getappointmenthandler "github.com/salonix/appointment-service/internal/api/handlers/get_appointment"
	getavailabilityhandler "github.com/salonix/appointment-service/internal/api/handlers/get_availability"
	getstaffappointmentshandler "github.com/salonix/appointment-service/internal/api/handlers/get_staff_appointments"
	updatestatushandler "github.com/salonix/appointment-service/internal/api/handlers/update_status"
	"github.com/salonix/appointment-service/internal/api/middleware"
	"github.com/salonix/appointment-service/internal/config"
	appointmentstorage "github.com/salonix/appointment-service/internal/infra/storage/appointment"
	catalogstorage "github.com/salonix/appointment-service/internal/infra/storage/catalog"
	clientstorage "github.com/salonix/appointment-service/internal/infra/storage/client"
	"github.com/salonix/appointment-service/internal/integrations/mailer"
	"github.com/salonix/appointment-service/internal/service/appointments"
	createappointment "github.com/salonix/appointment-service/internal/usecase/create_appointment"
	getavailability "github.com/salonix/appointment-service/internal/usecase/get_availability"
	"github.com/salonix/appointment-service/pkg/logger"
	"github.com/salonix/appointment-service/pkg/metrics"
	"github.com/salonix/appointment-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logg.Close()

	hours, err := cfg.Business.Hours()
	if err != nil {
		logg.Fatal("parse business hours: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logg.Fatal("open database: %v", err)
	}
	defer db.Close()

	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		logg.Fatal("ping database: %v", err)
	}

	appointmentRepo := appointmentstorage.NewRepository(db)
	catalogRepo := catalogstorage.NewRepository(db)
	clientRepo := clientstorage.NewRepository(db)

	txManager := txmanager.New(db, cfg.Transaction.Timeout())

	mailClient := mailer.NewClient(
		cfg.Mailer.BaseURL,
		cfg.Mailer.APIKey,
		cfg.Mailer.FromEmail,
		cfg.Mailer.FromName,
		time.Duration(cfg.Mailer.TimeoutSeconds)*time.Second,
		logg,
	)

	createUC := createappointment.NewUseCase(
		catalogRepo,
		clientRepo,
		appointmentRepo,
		txManager,
		mailClient,
		hours,
		logg,
		createappointment.RealTimeProvider{},
		cfg.Mailer.CancelURLBase,
	)
	availabilityUC := getavailability.NewUseCase(
		catalogRepo,
		appointmentRepo,
		hours,
		logg,
		getavailability.RealTimeProvider{},
	)
	appointmentsService := appointments.NewService(
		appointmentRepo,
		txManager,
		mailClient,
		hours,
		logg,
		appointments.RealTimeProvider{},
	)

	createHandler := createappointmenthandler.NewHandler(createUC, logg)
	availabilityHandler := getavailabilityhandler.NewHandler(availabilityUC, logg)
	getHandler := getappointmenthandler.NewHandler(appointmentsService, logg)
	cancelHandler := cancelappointmenthandler.NewHandler(appointmentsService, logg)
	statusHandler := updatestatushandler.NewHandler(appointmentsService, logg)
	staffDayHandler := getstaffappointmentshandler.NewHandler(appointmentsService, logg)

	router := mux.NewRouter()

	stopPoolStats := make(chan struct{})
	if cfg.Metrics.Enabled {
		collector := metrics.New(cfg.Metrics.ServiceName)
		collector.StartPoolStatsCollector(db, 15*time.Second, stopPoolStats)
		router.Use(middleware.Metrics(collector))
		router.Handle(cfg.Metrics.Path, collector.Handler()).Methods(http.MethodGet)
	}
	defer close(stopPoolStats)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public client-facing routes. Cancellation authenticates with the
	// token issued at booking time.
	api.HandleFunc("/availability", availabilityHandler.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createHandler.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/cancel", cancelHandler.Handle).Methods(http.MethodPost)

	// Staff-facing routes behind the gateway's identity header.
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments/{appointmentId}", getHandler.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/confirm", statusHandler.Confirm).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", statusHandler.Complete).Methods(http.MethodPatch)
	protected.HandleFunc("/staff/{staffId}/appointments", staffDayHandler.Handle).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logg.Info("http server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down")

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("graceful shutdown: %v", err)
	}
}
