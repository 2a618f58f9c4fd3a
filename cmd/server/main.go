package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"edufund.backend/internal/config"
	"edufund.backend/internal/infrastructure/identity"
	"edufund.backend/internal/infrastructure/models"
	"edufund.backend/internal/infrastructure/repositories"
	"edufund.backend/internal/infrastructure/storage"
	"edufund.backend/internal/interfaces/http/handlers"
	"edufund.backend/internal/interfaces/http/middleware"
	"edufund.backend/internal/usecases"
	"edufund.backend/pkg/logger"
	"edufund.backend/pkg/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional; without it every request hits the identity provider.
	var identityCache usecases.IdentityCache
	if cfg.Redis.URL != "" {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		identityCache = redis.NewIdentityCache(cfg.Redis.IdentityTTL)
		logger.Info(context.Background(), "Redis identity cache enabled")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.DonorTier{},
		&models.DonorProfile{},
		&models.Campaign{},
	); err != nil {
		logger.Warn(context.Background(), "AutoMigrate failed", zap.Error(err))
	}

	// External services
	verifier := identity.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	objectStore := storage.NewSupabaseStorage(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.ServiceKey, cfg.Supabase.AvatarBucket)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	studentRepo := repositories.NewStudentProfileRepository(db)
	donorRepo := repositories.NewDonorProfileRepository(db)
	tierRepo := repositories.NewDonorTierRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(verifier, identityCache, userRepo, studentRepo, donorRepo, uow)
	profileUsecase := usecases.NewProfileUsecase(studentRepo, donorRepo, uow)
	campaignUsecase := usecases.NewCampaignUsecase(campaignRepo, studentRepo, profileUsecase, uow)
	tierUsecase := usecases.NewTierUsecase(tierRepo, profileUsecase)
	avatarUsecase := usecases.NewAvatarUsecase(objectStore, profileUsecase)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	campaignHandler := handlers.NewCampaignHandler(campaignUsecase)
	studentHandler := handlers.NewStudentHandler(campaignUsecase)
	donorHandler := handlers.NewDonorHandler(tierUsecase)
	avatarHandler := handlers.NewAvatarHandler(avatarUsecase)

	authMiddleware := middleware.AuthMiddleware(authUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		campaignHandler: campaignHandler,
		studentHandler:  studentHandler,
		donorHandler:    donorHandler,
		avatarHandler:   avatarHandler,
		authMiddleware:  authMiddleware,
	})

	log.Printf("server starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
