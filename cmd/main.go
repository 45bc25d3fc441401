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

	cancelBookingHandler "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers/get_availability"
	getBookingHandler "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers/get_booking"
	getNextSlotHandler "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers/get_next_slot"
	getUserBookingsHandler "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers/get_user_bookings"
	getZoneSummaryHandler "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers/get_zone_summary"
	getZonesHandler "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/handlers/get_zones"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/api/middleware"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/config"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/domain"
	calendarRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/calendar"
	customerRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/customer"
	reservationRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/reservation"
	stationRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/station"
	tariffRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/tariff"
	zoneRepo "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/infra/storage/zone"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/internal/pricing"
	bookingsService "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/service/bookings"
	zonesService "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/service/zones"
	createBookingUC "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/create_booking"
	getAvailabilityUC "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/get_availability"
	nextAvailableSlotUC "github.com/ruopp93-dot/kraken-telegram-miniapp/internal/usecase/next_available_slot"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/dbmetrics"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/logger"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/metrics"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/simpletxmanager"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/txmanager"
	"github.com/ruopp93-dot/kraken-telegram-miniapp/pkg/types"
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

	log.Info("Starting kraken booking service...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс клуба: все расчеты слотов и выходного тарифа идут в нем
	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Schedule.Timezone, err)
	}

	openTime, err := types.NewTimeStringFromString(cfg.Schedule.OpenTime)
	if err != nil {
		log.Fatal("Invalid open_time %s: %v", cfg.Schedule.OpenTime, err)
	}
	lastSlotStart, err := types.NewTimeStringFromString(cfg.Schedule.LastSlotStart)
	if err != nil {
		log.Fatal("Invalid last_slot_start %s: %v", cfg.Schedule.LastSlotStart, err)
	}

	grid := domain.SlotGrid{
		OpenTime:      openTime,
		LastSlotStart: lastSlotStart,
		StepMinutes:   cfg.Schedule.SlotStepMinutes,
	}
	weekend := pricing.WeekendWindow{
		FridayStartHour: cfg.Schedule.WeekendFridayStartHour,
		SundayEndHour:   cfg.Schedule.WeekendSundayEndHour,
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		stationRepository     *stationRepo.Repository
		zoneRepository        *zoneRepo.Repository
		tariffRepository      *tariffRepo.Repository
		customerRepository    *customerRepo.Repository
		calendarRepository    *calendarRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		stationRepository = stationRepo.NewRepository(wrappedDB)
		zoneRepository = zoneRepo.NewRepository(wrappedDB)
		tariffRepository = tariffRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		stationRepository = stationRepo.NewRepository(db)
		zoneRepository = zoneRepo.NewRepository(db)
		tariffRepository = tariffRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		reservationRepository,
		customerRepository,
		stationRepository,
		log,
	)
	zoneSvc := zonesService.NewService(
		zoneRepository,
		tariffRepository,
		stationRepository,
		reservationRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		stationRepository,
		zoneRepository,
		tariffRepository,
		customerRepository,
		txMgr,
		createBookingUC.Settings{
			MinDurationMinutes: cfg.Booking.MinDurationMinutes,
			MaxDurationMinutes: cfg.Booking.MaxDurationMinutes,
			Grid:               grid,
			Weekend:            weekend,
			JoystickPrice:      cfg.Booking.JoystickPriceMinorUnits,
			Location:           location,
		},
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		stationRepository,
		zoneRepository,
		calendarRepository,
		getAvailabilityUC.Settings{
			Grid:     grid,
			Location: location,
		},
		log,
	)

	nextAvailableSlotUseCase := nextAvailableSlotUC.NewUseCase(
		reservationRepository,
		stationRepository,
		nextAvailableSlotUC.Settings{
			MinDurationMinutes:     cfg.Booking.MinDurationMinutes,
			MaxDurationMinutes:     cfg.Booking.MaxDurationMinutes,
			DefaultDurationMinutes: cfg.Booking.NextSlotDefaultMinutes,
			HorizonDays:            cfg.Booking.NextSlotHorizonDays,
			Grid:                   grid,
			Location:               location,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getNextSlot := getNextSlotHandler.NewHandler(nextAvailableSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getZones := getZonesHandler.NewHandler(zoneSvc, log)
	getZoneSummary := getZoneSummaryHandler.NewHandler(zoneSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступности станций на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот станции
	api.HandleFunc("/stations/{stationId}/next-slot", getNextSlot.Handle).Methods(http.MethodGet)

	// Зоны клуба с тарифами
	api.HandleFunc("/zones", getZones.Handle).Methods(http.MethodGet)

	// Сводка занятости по зонам
	api.HandleFunc("/zones/summary", getZoneSummary.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
