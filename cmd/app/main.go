package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/vacationrepo"
	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	cache := openCache(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateAutoAssignDeliveryCommandHandler(),
		app.CreateSyncDriverVacationStatusCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	// Report status drift at startup instead of waiting for the midnight run.
	jobManager.SyncVacationsNow()

	startWebServer(&app, cache, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	redisDB, _ := strconv.Atoi(goDotEnvVariable("REDIS_DB"))

	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		RedisDB:       redisDB,
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&deliveryrepo.DeliveryDTO{},
		&vacationrepo.VacationDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

// openCache connects to Redis. The cache is optional: when Redis is not
// configured or unreachable the service runs without it.
func openCache(configs cmd.Config, logger *slog.Logger) *rediscache.Cache {
	if configs.RedisAddr == "" {
		logger.Warn("Redis not configured, running without response cache")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})

	return rediscache.NewCache(client, "logistics:")
}

func startWebServer(app *cmd.CompositionRoot, cache *rediscache.Cache, logger *slog.Logger, port string) {
	server := httpin.NewServer(httpin.ServerHandlers{
		CreateDelivery:   app.CreateCreateDeliveryCommandHandler(),
		UpdateDelivery:   app.CreateUpdateDeliveryCommandHandler(),
		DeleteDelivery:   app.CreateDeleteDeliveryCommandHandler(),
		AssignDelivery:   app.CreateAssignDeliveryCommandHandler(),
		AutoAssign:       app.CreateAutoAssignDeliveryCommandHandler(),
		StartDelivery:    app.CreateStartDeliveryCommandHandler(),
		CompleteDelivery: app.CreateCompleteDeliveryCommandHandler(),
		CancelAssignment: app.CreateCancelAssignmentCommandHandler(),
		CreateDriver:     app.CreateCreateDriverCommandHandler(),
		UpdateDriver:     app.CreateUpdateDriverCommandHandler(),
		DeleteDriver:     app.CreateDeleteDriverCommandHandler(),
		RequestVacation:  app.CreateRequestVacationCommandHandler(),
		ApproveVacation:  app.CreateApproveVacationCommandHandler(),
		RejectVacation:   app.CreateRejectVacationCommandHandler(),
		DeleteVacation:   app.CreateDeleteVacationCommandHandler(),
		SyncVacations:    app.CreateSyncDriverVacationStatusCommandHandler(),

		PendingDeliveries: app.CreateGetPendingDeliveriesQueryHandler(),
		ActiveDeliveries:  app.CreateGetActiveDeliveriesQueryHandler(),
		AllDeliveries:     app.CreateGetAllDeliveriesQueryHandler(),
		GetDelivery:       app.CreateGetDeliveryQueryHandler(),
		AllDrivers:        app.CreateGetAllDriversQueryHandler(),
		ActiveDrivers:     app.CreateGetActiveDriversQueryHandler(),
		GetDriver:         app.CreateGetDriverQueryHandler(),
		AvailableDrivers:  app.CreateGetAvailableDriversQueryHandler(),
		Vacations:         app.CreateGetVacationsQueryHandler(),
		MonthlyRevenue:    app.CreateMonthlyRevenueQueryHandler(),
		RecommendDriver:   app.CreateRecommendDriverQueryHandler(),
	}, cache, logger)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
