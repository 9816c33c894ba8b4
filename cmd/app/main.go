package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"entregaloya/cmd"
	httpadapter "entregaloya/internal/adapters/in/http"
	"entregaloya/internal/adapters/out/objectstore"
	"entregaloya/internal/adapters/out/postgres/businessrepo"
	"entregaloya/internal/adapters/out/postgres/orderrepo"
	"entregaloya/internal/adapters/out/postgres/productrepo"
	"entregaloya/internal/adapters/out/postgres/sessionrepo"
	"entregaloya/internal/adapters/out/postgres/userrepo"
	"entregaloya/internal/adapters/out/queue"
	"entregaloya/internal/core/ports"
	"entregaloya/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	store, err := objectstore.NewMinioStore(
		configs.MinioEndpoint,
		configs.MinioAccessKey,
		configs.MinioSecretKey,
		configs.MinioBucket,
		configs.MinioPublicURL,
		parseBool(configs.MinioUseSSL),
	)
	if err != nil {
		log.Fatalf("Error connecting to object store: %v", err)
	}

	var publisher ports.OrderEventPublisher
	if configs.KafkaBrokers != "" {
		kafkaPublisher := queue.NewKafkaOrderEventPublisher(
			strings.Split(configs.KafkaBrokers, ","),
			configs.KafkaTopic,
		)
		defer func() { _ = kafkaPublisher.Close() }()
		publisher = kafkaPublisher
	} else {
		publisher = queue.NewNoopOrderEventPublisher()
	}

	app := cmd.NewCompositionRoot(
		gormDB,
		store,
		publisher,
		parseSessionTTL(configs.SessionTTL),
		logger,
	)

	jobManager := jobs.NewJobManager(app.CreatePurgeSessionsCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		SessionTTL:     goDotEnvVariable("SESSION_TTL"),
		AllowedOrigins: goDotEnvVariable("ALLOWED_ORIGINS"),
		MinioEndpoint:  goDotEnvVariable("MINIO_ENDPOINT"),
		MinioAccessKey: goDotEnvVariable("MINIO_ACCESS_KEY"),
		MinioSecretKey: goDotEnvVariable("MINIO_SECRET_KEY"),
		MinioBucket:    goDotEnvVariable("MINIO_BUCKET"),
		MinioPublicURL: goDotEnvVariable("MINIO_PUBLIC_URL"),
		MinioUseSSL:    goDotEnvVariable("MINIO_USE_SSL"),
		KafkaBrokers:   goDotEnvVariable("KAFKA_BROKERS"),
		KafkaTopic:     goDotEnvVariable("KAFKA_ORDER_TOPIC"),
	}
	return config
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
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&businessrepo.CategoryDTO{},
		&businessrepo.BusinessDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&sessionrepo.SessionDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func parseSessionTTL(raw string) time.Duration {
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		return 24 * time.Hour
	}
	return ttl
}

func parseBool(raw string) bool {
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(configs.AllowedOrigins, ","),
		AllowCredentials: true,
	}))

	server := httpadapter.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateLoginCommandHandler(),
		app.CreateLogoutCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateEditOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetCategoriesQueryHandler(),
		app.CreateGetBusinessesQueryHandler(),
		app.CreateGetBusinessQueryHandler(),
		app.CreateGetBusinessProductsQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetBusinessOrdersQueryHandler(),
	)

	sessionMiddleware := httpadapter.NewSessionMiddleware(app.CreateGetSessionActorQueryHandler())
	server.RegisterRoutes(e, sessionMiddleware)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
