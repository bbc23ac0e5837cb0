package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api"
	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/handler"
	apimiddleware "github.com/Korea-Traffic-Solution/backend/internal/adapter/api/middleware"
	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/router"
	"github.com/Korea-Traffic-Solution/backend/internal/adapter/repository"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/database"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/firebase"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/metrics"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/ratelimit"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/storage"
	"github.com/Korea-Traffic-Solution/backend/internal/usecase"
	"github.com/Korea-Traffic-Solution/backend/pkg/config"
	"github.com/Korea-Traffic-Solution/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var opt option.ClientOption
	if cfg.FirebaseServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON))
	} else {
		serviceAccountPath := cfg.FirebaseServiceAccountPath
		if serviceAccountPath == "" {
			serviceAccountPath = "./firebase-adminsdk.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		logger.Info("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     cfg.FirebaseProject,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	conclusionRepo := repository.NewFirestoreDocumentRepository(firestoreClient, cfg.ConclusionCollection)
	managerRepo := repository.NewFirestoreDocumentRepository(firestoreClient, cfg.ManagerCollection)
	snapshotRepo := repository.NewFirestoreDocumentRepository(firestoreClient, cfg.SnapshotCollection)
	reportRepo := repository.NewGormReportRepository(db)
	adminRepo := repository.NewGormAdminRepository(db)

	m := metrics.New()
	guard := usecase.NewAuthorizationGuard(managerRepo, m)

	authUseCase := usecase.NewAuthUseCase(
		adminRepo,
		managerRepo,
		firebase.NewFirebaseAuthClient(authClient),
		cfg.JWTSecret,
		time.Duration(cfg.JWTExpiry)*time.Second,
	)
	reportUseCase := usecase.NewReportUseCase(reportRepo, conclusionRepo, snapshotRepo, guard, storageClient, cfg.SignedURLTTL, m)
	approvalUseCase := usecase.NewApprovalUseCase(reportRepo, snapshotRepo, guard, m)
	statisticsUseCase := usecase.NewStatisticsUseCase(reportRepo, conclusionRepo, guard, m)
	exportUseCase := usecase.NewExportUseCase(reportRepo)
	noticeUseCase := usecase.NewNoticeUseCase(cfg.NoticeURL, nil)

	handler.Setup(authUseCase, reportUseCase, approvalUseCase, statisticsUseCase, exportUseCase, noticeUseCase)
	handler.SetupHealthHandler(func() error { return database.Ping(db) })

	limiter := ratelimit.NewRateLimiter(map[string]ratelimit.Limit{
		"login": ratelimit.Login,
	})
	stopCleanup := make(chan struct{})
	limiter.StartCleanupRoutine(stopCleanup)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)

	router.Setup(e, authMiddleware, limiter)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	close(stopCleanup)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Database close error: %v", err)
		}
	}
}
